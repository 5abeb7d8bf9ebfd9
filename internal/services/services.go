package services

import (
	"github.com/bhumicrm/bhumi-api/internal/config"
	"github.com/bhumicrm/bhumi-api/internal/jobs"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth         *AuthService
	User         *UserService
	Colony       *ColonyService
	Property     *PropertyService
	Plot         *PlotService
	KisanPayment *KisanPaymentService
	Booking      *BookingService
	Commission   *CommissionService
	Calculator   *CalculatorService
	Notification *NotificationService
	Report       *ReportService
	Export       *ExportService
	Archive      *ArchiveService
	Audit        *AuditService
	Email        *EmailService
	Job          *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, store *storage.LocalStorage, cfg *config.Config) *Services {
	notificationSvc := NewNotificationService(repos.Notification, repos.User)
	emailSvc := NewEmailService(cfg, worker)
	auditSvc := NewAuditService(repos.AuditLog)
	jobSvc := NewJobService(worker)

	reportSvc := NewReportService(repos.Booking, repos.Colony, repos.KisanPayment, cfg.TDSRatePct)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.RefreshToken, cfg),
		User:         NewUserService(repos.User, emailSvc, auditSvc),
		Colony:       NewColonyService(repos.Colony, repos.Plot, notificationSvc, auditSvc),
		Property:     NewPropertyService(repos.Property, repos.Colony),
		Plot:         NewPlotService(repos.Plot, repos.Colony),
		KisanPayment: NewKisanPaymentService(repos.KisanPayment, repos.Colony, notificationSvc, auditSvc),
		Booking:      NewBookingService(repos.Booking, repos.Plot, repos.Commission, repos.User, notificationSvc, emailSvc, auditSvc),
		Commission:   NewCommissionService(repos.Booking, repos.Commission, notificationSvc, emailSvc, auditSvc, cfg.TDSRatePct),
		Calculator:   NewCalculatorService(repos.Colony),
		Notification: notificationSvc,
		Report:       reportSvc,
		Export:       NewExportService(),
		Archive:      NewArchiveService(reportSvc, store),
		Audit:        auditSvc,
		Email:        emailSvc,
		Job:          jobSvc,
	}
}
