package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User         UserRepository
	Colony       ColonyRepository
	Property     PropertyRepository
	Plot         PlotRepository
	KisanPayment KisanPaymentRepository
	Booking      BookingRepository
	Commission   CommissionRepository
	Notification NotificationRepository
	RefreshToken RefreshTokenRepository
	AuditLog     AuditLogRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Colony:       NewColonyRepository(db),
		Property:     NewPropertyRepository(db),
		Plot:         NewPlotRepository(db),
		KisanPayment: NewKisanPaymentRepository(db),
		Booking:      NewBookingRepository(db),
		Commission:   NewCommissionRepository(db),
		Notification: NewNotificationRepository(db),
		RefreshToken: NewRefreshTokenRepository(db),
		AuditLog:     NewAuditLogRepository(db),
	}
}
