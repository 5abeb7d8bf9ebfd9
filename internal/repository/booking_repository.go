package repository

import (
	"context"
	"time"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"gorm.io/gorm"
)

// BookingRepository defines the interface for booking data access
type BookingRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Booking, error)
	FindByAgent(ctx context.Context, agentID uint) ([]models.Booking, error)
	FindWithCommissionDetails(ctx context.Context, query *ListQuery) ([]models.Booking, error)
	FindStaleBooked(ctx context.Context, olderThan time.Time) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Booking, int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Plot").
		Preload("Plot.Colony").
		Preload("Agent").
		Preload("Commission").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByAgent(ctx context.Context, agentID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Plot").
		Preload("Plot.Colony").
		Preload("Agent").
		Preload("Commission").
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// FindWithCommissionDetails loads bookings with everything the commission
// deriver needs: agent, plot and the attached lifecycle record.
func (r *bookingRepository) FindWithCommissionDetails(ctx context.Context, query *ListQuery) ([]models.Booking, error) {
	var bookings []models.Booking

	db := r.db.WithContext(ctx).
		Preload("Plot").
		Preload("Plot.Colony").
		Preload("Agent").
		Preload("Commission").
		Where("status != ?", models.BookingStatusCancelled)

	if query.Filters["agent_id"] != "" {
		db = db.Where("agent_id = ?", query.Filters["agent_id"])
	}

	err := db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindStaleBooked(ctx context.Context, olderThan time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Plot").
		Where("status = ? AND created_at < ?", models.BookingStatusBooked, olderThan).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *bookingRepository) List(ctx context.Context, query *ListQuery) ([]models.Booking, int64, error) {
	var bookings []models.Booking
	var total int64

	db := r.db.WithContext(ctx).Model(&models.Booking{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("customer_name ILIKE ? OR customer_phone ILIKE ?", search, search)
	}

	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}

	if query.Filters["agent_id"] != "" {
		db = db.Where("agent_id = ?", query.Filters["agent_id"])
	}

	if query.Filters["plot_id"] != "" {
		db = db.Where("plot_id = ?", query.Filters["plot_id"])
	}

	db.Count(&total)

	db = db.Order("created_at DESC")
	if query.PerPage > 0 {
		db = db.Offset((query.Page - 1) * query.PerPage).Limit(query.PerPage)
	}

	err := db.Preload("Plot").Preload("Plot.Colony").Preload("Agent").Preload("Commission").
		Find(&bookings).Error
	return bookings, total, err
}

// CommissionRepository defines the interface for commission lifecycle records.
// Only the status and its audit timestamps live here; amounts are derived.
type CommissionRepository interface {
	FindByBookingID(ctx context.Context, bookingID uint) (*models.CommissionRecord, error)
	FindOrCreateByBookingID(ctx context.Context, bookingID uint) (*models.CommissionRecord, error)
	Update(ctx context.Context, record *models.CommissionRecord) error
}

type commissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) CommissionRepository {
	return &commissionRepository{db: db}
}

func (r *commissionRepository) FindByBookingID(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
	var record models.CommissionRecord
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *commissionRepository) FindOrCreateByBookingID(ctx context.Context, bookingID uint) (*models.CommissionRecord, error) {
	var record models.CommissionRecord
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record = models.CommissionRecord{BookingID: bookingID}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *commissionRepository) Update(ctx context.Context, record *models.CommissionRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}
