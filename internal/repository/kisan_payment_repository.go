package repository

import (
	"context"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"gorm.io/gorm"
)

// KisanPaymentRepository defines the interface for kisan payment data access.
// FindByColony is the ledger read: it always orders by the persisted creation
// timestamp (ties broken by id) because that order IS the running-balance
// order. Callers must never re-sort or rely on insertion order.
type KisanPaymentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.KisanPayment, error)
	FindByColony(ctx context.Context, colonyID uint) ([]models.KisanPayment, error)
	Create(ctx context.Context, payment *models.KisanPayment) error
	Update(ctx context.Context, payment *models.KisanPayment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.KisanPayment, int64, error)
}

type kisanPaymentRepository struct {
	db *gorm.DB
}

// NewKisanPaymentRepository creates a new kisan payment repository
func NewKisanPaymentRepository(db *gorm.DB) KisanPaymentRepository {
	return &kisanPaymentRepository{db: db}
}

func (r *kisanPaymentRepository) FindByID(ctx context.Context, id uint) (*models.KisanPayment, error) {
	var payment models.KisanPayment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *kisanPaymentRepository) FindByColony(ctx context.Context, colonyID uint) ([]models.KisanPayment, error) {
	var payments []models.KisanPayment
	err := r.db.WithContext(ctx).
		Where("colony_id = ?", colonyID).
		Order("created_at ASC, id ASC").
		Find(&payments).Error
	return payments, err
}

func (r *kisanPaymentRepository) Create(ctx context.Context, payment *models.KisanPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *kisanPaymentRepository) Update(ctx context.Context, payment *models.KisanPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *kisanPaymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.KisanPayment{}, id).Error
}

func (r *kisanPaymentRepository) List(ctx context.Context, query *ListQuery) ([]models.KisanPayment, int64, error) {
	var payments []models.KisanPayment
	var total int64

	db := r.db.WithContext(ctx).Model(&models.KisanPayment{})

	if query.Filters["colony_id"] != "" {
		db = db.Where("colony_id = ?", query.Filters["colony_id"])
	}

	if query.Filters["reg_plot_no"] != "" {
		db = db.Where("reg_plot_no = ?", query.Filters["reg_plot_no"])
	}

	db.Count(&total)

	db = db.Order("created_at ASC, id ASC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Find(&payments).Error
	return payments, total, err
}
