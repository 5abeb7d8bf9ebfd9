package repository

import (
	"context"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"gorm.io/gorm"
)

// ColonyRepository defines the interface for colony data access
type ColonyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Colony, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Colony, error)
	FindActive(ctx context.Context) ([]models.Colony, error)
	Create(ctx context.Context, colony *models.Colony) error
	Update(ctx context.Context, colony *models.Colony) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Colony, int64, error)
}

type colonyRepository struct {
	db *gorm.DB
}

// NewColonyRepository creates a new colony repository
func NewColonyRepository(db *gorm.DB) ColonyRepository {
	return &colonyRepository{db: db}
}

func (r *colonyRepository) FindByID(ctx context.Context, id uint) (*models.Colony, error) {
	var colony models.Colony
	err := r.db.WithContext(ctx).First(&colony, id).Error
	if err != nil {
		return nil, err
	}
	return &colony, nil
}

// FindByIDWithDetails loads the colony with everything the derivation engine
// needs: allocations, plots and the payment list in persisted creation order.
func (r *colonyRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Colony, error) {
	var colony models.Colony
	err := r.db.WithContext(ctx).
		Preload("Roads").
		Preload("Parks").
		Preload("Plots").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			// Ledger order: the persisted creation timestamp, never client order.
			return db.Order("created_at ASC, id ASC")
		}).
		First(&colony, id).Error
	if err != nil {
		return nil, err
	}
	return &colony, nil
}

func (r *colonyRepository) FindActive(ctx context.Context) ([]models.Colony, error) {
	var colonies []models.Colony
	err := r.db.WithContext(ctx).
		Preload("Roads").
		Preload("Parks").
		Preload("Plots").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("status = ?", models.ColonyStatusActive).
		Find(&colonies).Error
	return colonies, err
}

func (r *colonyRepository) Create(ctx context.Context, colony *models.Colony) error {
	return r.db.WithContext(ctx).Create(colony).Error
}

func (r *colonyRepository) Update(ctx context.Context, colony *models.Colony) error {
	return r.db.WithContext(ctx).Save(colony).Error
}

func (r *colonyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Colony{}, id).Error
}

func (r *colonyRepository) List(ctx context.Context, query *ListQuery) ([]models.Colony, int64, error) {
	var colonies []models.Colony
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Colony{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR address ILIKE ?", search, search)
	}

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	db.Count(&total)

	if query.SortBy != "" {
		order := query.SortBy
		if query.SortDir == "desc" {
			order += " DESC"
		}
		db = db.Order(order)
	} else {
		db = db.Order("created_at DESC")
	}

	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Roads").Preload("Parks").Preload("Plots").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Find(&colonies).Error
	return colonies, total, err
}

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Property, error)
	FindByColony(ctx context.Context, colonyID uint) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Property, int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Preload("Colony").
		Preload("Roads").
		Preload("Parks").
		Preload("Plots").
		First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindByColony(ctx context.Context, colonyID uint) ([]models.Property, error) {
	var properties []models.Property
	err := r.db.WithContext(ctx).
		Preload("Roads").
		Preload("Parks").
		Preload("Plots").
		Where("colony_id = ?", colonyID).
		Order("name ASC").
		Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Property{}, id).Error
}

func (r *propertyRepository) List(ctx context.Context, query *ListQuery) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Property{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR address ILIKE ?", search, search)
	}

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	if query.Filters["colony_id"] != "" {
		db = db.Where("colony_id = ?", query.Filters["colony_id"])
	}

	db.Count(&total)

	db = db.Order("created_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Colony").Preload("Roads").Preload("Parks").Preload("Plots").
		Find(&properties).Error
	return properties, total, err
}
