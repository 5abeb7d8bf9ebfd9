package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/bhumicrm/bhumi-api/internal/config"
	"github.com/bhumicrm/bhumi-api/internal/jobs"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/pkg/logger"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

const appURL = "https://app.bhumicrm.in"

type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
	worker       *jobs.Worker
}

func NewEmailService(cfg *config.Config, worker *jobs.Worker) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
		worker:       worker,
	}
}

func (s *EmailService) SendAccountCreated(ctx context.Context, user *models.User) error {
	data := struct {
		Name   string
		AppURL string
	}{
		Name:   user.FullName,
		AppURL: appURL,
	}

	body, err := s.renderTemplate("account_created.html", data)
	if err != nil {
		return err
	}

	return s.send(user.Email, "Welcome to Bhumi CRM", body)
}

func (s *EmailService) SendCommissionApproved(ctx context.Context, agent *models.User, commission *models.CommissionResponse) error {
	data := struct {
		Name             string
		PlotNo           string
		SaleAmount       string
		RatePct          string
		CommissionAmount string
		TDSAmount        string
		FinalAmount      string
		AppURL           string
	}{
		Name:             agent.FullName,
		PlotNo:           commission.PlotNo,
		SaleAmount:       fmt.Sprintf("₹%.2f", commission.SaleAmount),
		RatePct:          fmt.Sprintf("%.2f", commission.RatePct),
		CommissionAmount: fmt.Sprintf("₹%.2f", commission.CommissionAmount),
		TDSAmount:        fmt.Sprintf("₹%.2f", commission.TDSAmount),
		FinalAmount:      fmt.Sprintf("₹%.2f", commission.FinalAmount),
		AppURL:           appURL,
	}

	body, err := s.renderTemplate("commission_approved.html", data)
	if err != nil {
		return err
	}

	return s.send(agent.Email, "Commission Approved", body)
}

func (s *EmailService) SendCommissionPaid(ctx context.Context, agent *models.User, commission *models.CommissionResponse, paymentRef string) error {
	data := struct {
		Name        string
		PlotNo      string
		FinalAmount string
		PaymentRef  string
		AppURL      string
	}{
		Name:        agent.FullName,
		PlotNo:      commission.PlotNo,
		FinalAmount: fmt.Sprintf("₹%.2f", commission.FinalAmount),
		PaymentRef:  paymentRef,
		AppURL:      appURL,
	}

	body, err := s.renderTemplate("commission_paid.html", data)
	if err != nil {
		return err
	}

	return s.send(agent.Email, "Commission Paid", body)
}

func (s *EmailService) SendBookingConfirmed(ctx context.Context, agent *models.User, booking *models.Booking) error {
	colonyName := ""
	if booking.Plot.Colony != nil {
		colonyName = booking.Plot.Colony.Name
	}

	data := struct {
		Name         string
		PlotNo       string
		ColonyName   string
		CustomerName string
		TotalAmount  string
		BookedAt     string
		AppURL       string
	}{
		Name:         agent.FullName,
		PlotNo:       booking.Plot.PlotNo,
		ColonyName:   colonyName,
		CustomerName: booking.CustomerName,
		TotalAmount:  fmt.Sprintf("₹%.2f", booking.TotalAmount),
		BookedAt:     booking.CreatedAt.Format("02/01/2006"),
		AppURL:       appURL,
	}

	body, err := s.renderTemplate("booking_confirmed.html", data)
	if err != nil {
		return err
	}

	return s.send(agent.Email, "Booking Confirmed", body)
}

// send delivers through the worker's async lane when one is wired, so a slow
// mail provider never blocks the request path.
func (s *EmailService) send(to, subject, body string) error {
	if s.worker != nil {
		s.worker.EnqueueAsync(func(ctx context.Context) error {
			return s.deliver(to, subject, body)
		})
		return nil
	}
	return s.deliver(to, subject, body)
}

func (s *EmailService) deliver(to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	if _, err := s.resendClient.Emails.Send(params); err != nil {
		logger.Error(fmt.Sprintf("Failed to send email to %s: %v", to, err))
		return err
	}

	logger.Info(fmt.Sprintf("📧 [Email Sent] To: %s | Subject: %s", to, subject))
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
