package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/statemachine"
)

type BookingService struct {
	repo            repository.BookingRepository
	plotRepo        repository.PlotRepository
	commissionRepo  repository.CommissionRepository
	userRepo        repository.UserRepository
	notificationSvc *NotificationService
	emailSvc        *EmailService
	auditSvc        *AuditService
}

func NewBookingService(
	repo repository.BookingRepository,
	plotRepo repository.PlotRepository,
	commissionRepo repository.CommissionRepository,
	userRepo repository.UserRepository,
	notificationSvc *NotificationService,
	emailSvc *EmailService,
	auditSvc *AuditService,
) *BookingService {
	return &BookingService{
		repo:            repo,
		plotRepo:        plotRepo,
		commissionRepo:  commissionRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		auditSvc:        auditSvc,
	}
}

func (s *BookingService) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return s.repo.FindByIDWithDetails(ctx, id)
}

func (s *BookingService) FindByAgent(ctx context.Context, agentID uint) ([]models.Booking, error) {
	return s.repo.FindByAgent(ctx, agentID)
}

func (s *BookingService) List(ctx context.Context, query *repository.ListQuery) ([]models.Booking, int64, error) {
	return s.repo.List(ctx, query)
}

// Create books a plot for a customer. The plot moves available→booked, and
// when the booking carries an agent a pending commission lifecycle record is
// opened alongside it. Commission amounts are never written anywhere.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) error {
	plot, err := s.plotRepo.FindByID(ctx, booking.PlotID)
	if err != nil {
		return fmt.Errorf("plot %d not found: %w", booking.PlotID, err)
	}

	if !plot.MayBook() {
		return fmt.Errorf("%w: plot %s is %s", ErrPlotUnavailable, plot.PlotNo, plot.Status)
	}

	if booking.AgentID != nil {
		agent, err := s.userRepo.FindByID(ctx, *booking.AgentID)
		if err != nil {
			return fmt.Errorf("agent %d not found: %w", *booking.AgentID, err)
		}
		if !agent.IsAgent() && !agent.IsAdmin() {
			return fmt.Errorf("%w: user %s cannot earn commission", ErrUnauthorized, agent.Email)
		}
	}

	if booking.Status == "" {
		booking.Status = models.BookingStatusBooked
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	plotFSM := statemachine.NewPlotFSM(plot)
	if err := plotFSM.Book(ctx); err != nil {
		return err
	}
	if err := s.plotRepo.Update(ctx, plot); err != nil {
		return fmt.Errorf("failed to update plot status: %w", err)
	}

	if booking.AgentID != nil {
		if _, err := s.commissionRepo.FindOrCreateByBookingID(ctx, booking.ID); err != nil {
			return fmt.Errorf("failed to open commission record: %w", err)
		}
	}

	return nil
}

// Confirm marks the sale final: booking→confirmed, plot booked→sold.
func (s *BookingService) Confirm(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingStatusBooked {
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidState, booking.Status)
	}

	plotFSM := statemachine.NewPlotFSM(&booking.Plot)
	if err := plotFSM.Sell(ctx); err != nil {
		return nil, err
	}
	if err := s.plotRepo.Update(ctx, &booking.Plot); err != nil {
		return nil, fmt.Errorf("failed to update plot status: %w", err)
	}

	booking.Status = models.BookingStatusConfirmed
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}

	if booking.AgentID != nil {
		title := "Booking confirmed"
		message := fmt.Sprintf("Sale of plot %s to %s is confirmed", booking.Plot.PlotNo, booking.CustomerName)
		s.notificationSvc.NotifyUser(ctx, *booking.AgentID, title, message, models.NotificationTypeBookingConfirmed)

		if booking.Agent != nil && s.emailSvc != nil {
			s.emailSvc.SendBookingConfirmed(ctx, booking.Agent, booking)
		}
	}

	return booking, nil
}

// Cancel voids a booking record. The plot is NOT returned to the salable
// pool: a booked plot consumes parcel area permanently, so the plot keeps
// its booked status and the remaining-land figures stay unchanged.
func (s *BookingService) Cancel(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingStatusBooked {
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidState, booking.Status)
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, booking *models.Booking) error {
	existing, err := s.repo.FindByID(ctx, booking.ID)
	if err != nil {
		return err
	}

	// Plot, agent and status are managed by the lifecycle operations.
	booking.PlotID = existing.PlotID
	booking.AgentID = existing.AgentID
	booking.Status = existing.Status
	if booking.CustomerName == "" {
		booking.CustomerName = existing.CustomerName
	}
	if booking.CustomerPhone == nil {
		booking.CustomerPhone = existing.CustomerPhone
	}
	if booking.TotalAmount == 0 {
		booking.TotalAmount = existing.TotalAmount
	}
	if booking.RatePct == nil {
		booking.RatePct = existing.RatePct
	}
	if booking.Note == nil {
		booking.Note = existing.Note
	}

	return s.repo.Update(ctx, booking)
}

// FlagStale notifies admins about bookings idle past the cutoff so they can
// chase the sale or cancel the record by hand. It never touches the plot:
// booked area stays consumed no matter how long the booking sits unconfirmed.
// Runs from the background worker; returns the number of bookings flagged.
func (s *BookingService) FlagStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	stale, err := s.repo.FindStaleBooked(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to load stale bookings: %w", err)
	}

	flagged := 0
	for i := range stale {
		booking := &stale[i]

		title := "Stale booking"
		message := fmt.Sprintf("Booking of plot %s for %s has gone %d days without confirmation", booking.Plot.PlotNo, booking.CustomerName, int(olderThan.Hours()/24))
		if err := s.notificationSvc.NotifyAdmins(ctx, title, message, models.NotificationTypeBookingStale); err != nil {
			continue
		}
		flagged++
	}

	return flagged, nil
}
