package repository

import (
	"context"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"gorm.io/gorm"
)

// PlotRepository defines the interface for plot data access
type PlotRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Plot, error)
	FindByColony(ctx context.Context, colonyID uint) ([]models.Plot, error)
	FindByProperty(ctx context.Context, propertyID uint) ([]models.Plot, error)
	Create(ctx context.Context, plot *models.Plot) error
	Update(ctx context.Context, plot *models.Plot) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Plot, int64, error)
}

type plotRepository struct {
	db *gorm.DB
}

// NewPlotRepository creates a new plot repository
func NewPlotRepository(db *gorm.DB) PlotRepository {
	return &plotRepository{db: db}
}

func (r *plotRepository) FindByID(ctx context.Context, id uint) (*models.Plot, error) {
	var plot models.Plot
	err := r.db.WithContext(ctx).
		Preload("Colony").
		Preload("Property").
		First(&plot, id).Error
	if err != nil {
		return nil, err
	}
	return &plot, nil
}

func (r *plotRepository) FindByColony(ctx context.Context, colonyID uint) ([]models.Plot, error) {
	var plots []models.Plot
	err := r.db.WithContext(ctx).
		Where("colony_id = ?", colonyID).
		Order("plot_no ASC").
		Find(&plots).Error
	return plots, err
}

func (r *plotRepository) FindByProperty(ctx context.Context, propertyID uint) ([]models.Plot, error) {
	var plots []models.Plot
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("plot_no ASC").
		Find(&plots).Error
	return plots, err
}

func (r *plotRepository) Create(ctx context.Context, plot *models.Plot) error {
	return r.db.WithContext(ctx).Create(plot).Error
}

func (r *plotRepository) Update(ctx context.Context, plot *models.Plot) error {
	return r.db.WithContext(ctx).Save(plot).Error
}

func (r *plotRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Plot{}, id).Error
}

func (r *plotRepository) List(ctx context.Context, query *ListQuery) ([]models.Plot, int64, error) {
	var plots []models.Plot
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Plot{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("plot_no ILIKE ? OR registration_number ILIKE ?", search, search)
	}

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	if query.Filters["colony_id"] != "" {
		db = db.Where("colony_id = ?", query.Filters["colony_id"])
	}

	if query.Filters["property_id"] != "" {
		db = db.Where("property_id = ?", query.Filters["property_id"])
	}

	db.Count(&total)

	db = db.Order("plot_no ASC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Colony").Preload("Property").Find(&plots).Error
	return plots, total, err
}
