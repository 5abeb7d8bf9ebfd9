package handlers

import (
	"github.com/bhumicrm/bhumi-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	User         *UserHandler
	Colony       *ColonyHandler
	Property     *PropertyHandler
	Plot         *PlotHandler
	KisanPayment *KisanPaymentHandler
	Booking      *BookingHandler
	Commission   *CommissionHandler
	Calculator   *CalculatorHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Audit        *AuditHandler
	Job          *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(),
		Auth:         NewAuthHandler(svcs.Auth),
		User:         NewUserHandler(svcs.User, svcs.Booking),
		Colony:       NewColonyHandler(svcs.Colony),
		Property:     NewPropertyHandler(svcs.Property),
		Plot:         NewPlotHandler(svcs.Plot),
		KisanPayment: NewKisanPaymentHandler(svcs.KisanPayment),
		Booking:      NewBookingHandler(svcs.Booking),
		Commission:   NewCommissionHandler(svcs.Commission),
		Calculator:   NewCalculatorHandler(svcs.Calculator),
		Notification: NewNotificationHandler(svcs.Notification),
		Report:       NewReportHandler(svcs.Report, svcs.Export, svcs.Colony, svcs.Commission),
		Audit:        NewAuditHandler(svcs.Audit),
		Job:          NewJobHandler(svcs.Job),
	}
}
