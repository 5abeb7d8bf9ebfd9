package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
)

type ReportService struct {
	bookingRepo      repository.BookingRepository
	colonyRepo       repository.ColonyRepository
	kisanPaymentRepo repository.KisanPaymentRepository
	tdsRatePct       float64
}

func NewReportService(
	bookingRepo repository.BookingRepository,
	colonyRepo repository.ColonyRepository,
	kisanPaymentRepo repository.KisanPaymentRepository,
	tdsRatePct float64,
) *ReportService {
	if tdsRatePct == 0 {
		tdsRatePct = engine.DefaultTDSRatePct
	}
	return &ReportService{
		bookingRepo:      bookingRepo,
		colonyRepo:       colonyRepo,
		kisanPaymentRepo: kisanPaymentRepo,
		tdsRatePct:       tdsRatePct,
	}
}

// GenerateCommissionsCSV generates a CSV report of derived commissions,
// optionally limited to bookings created inside [startDate, endDate].
func (s *ReportService) GenerateCommissionsCSV(ctx context.Context, startDate, endDate string) (*bytes.Buffer, error) {
	query := repository.NewListQuery()

	bookings, err := s.bookingRepo.FindWithCommissionDetails(ctx, query)
	if err != nil {
		return nil, err
	}

	// Filter in memory by booking date when a range was given
	var filtered []models.Booking
	if startDate != "" && endDate != "" {
		start, _ := time.Parse("2006-01-02", startDate)
		end, _ := time.Parse("2006-01-02", endDate)
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

		for _, b := range bookings {
			if !b.CreatedAt.Before(start) && !b.CreatedAt.After(end) {
				filtered = append(filtered, b)
			}
		}
	} else {
		filtered = bookings
	}

	byID := make(map[uint]*models.Booking, len(filtered))
	records := make([]engine.BookingRecord, 0, len(filtered))
	for i := range filtered {
		byID[filtered[i].ID] = &filtered[i]
		records = append(records, filtered[i].ToBookingRecord())
	}

	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	header := []string{"Booking ID", "Agent", "Customer", "Plot", "Colony", "Sale Amount", "Rate %", "Commission", "TDS", "Net Payable", "Status", "Booked On"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, c := range engine.DeriveCommissions(records, s.tdsRatePct) {
		booking := byID[c.BookingID]

		agentName := "N/A"
		customerName := "N/A"
		plotNo := "N/A"
		colonyName := "N/A"
		if booking != nil {
			customerName = booking.CustomerName
			if booking.Agent != nil {
				agentName = booking.Agent.FullName
			}
			if booking.Plot.ID != 0 {
				plotNo = booking.Plot.PlotNo
				if booking.Plot.Colony != nil {
					colonyName = booking.Plot.Colony.Name
				}
			}
		}

		record := []string{
			fmt.Sprintf("%d", c.BookingID),
			agentName,
			customerName,
			plotNo,
			colonyName,
			fmt.Sprintf("%.2f", c.SaleAmount),
			fmt.Sprintf("%.2f", c.RatePct),
			fmt.Sprintf("%.2f", c.CommissionAmount),
			fmt.Sprintf("%.2f", c.TDSAmount),
			fmt.Sprintf("%.2f", c.FinalAmount),
			c.Status,
			c.BookedAt.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b, nil
}

// GenerateKisanLedgerCSV generates a CSV of a colony's derived payment
// ledger: every kisan payment with its running remaining-land figure.
func (s *ReportService) GenerateKisanLedgerCSV(ctx context.Context, colonyID uint) (*bytes.Buffer, error) {
	colony, err := s.colonyRepo.FindByIDWithDetails(ctx, colonyID)
	if err != nil {
		return nil, err
	}

	payments, err := s.kisanPaymentRepo.FindByColony(ctx, colonyID)
	if err != nil {
		return nil, err
	}

	result := engine.ComputeLedger(colony.ToParcel(), models.KisanPaymentEvents(payments))

	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	_ = w.Write([]string{"Colony", colony.Name})
	_ = w.Write([]string{"Total Area (gaj)", fmt.Sprintf("%.2f", colony.TotalAreaGajValue())})
	_ = w.Write([]string{"Base Remaining (gaj)", fmt.Sprintf("%.2f", result.BaseRemainingGaj)})
	_ = w.Write([]string{""})

	header := []string{"Payment ID", "Date", "Reg/Plot No", "Rupees", "Land (gaj)", "Remaining Land (gaj)"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range result.Rows {
		record := []string{
			fmt.Sprintf("%d", row.Event.ID),
			row.Event.SequenceKey.Format("2006-01-02"),
			row.Event.RegPlotNo,
			fmt.Sprintf("%.2f", row.Event.Rupees),
			fmt.Sprintf("%.2f", row.Event.Gaj),
			fmt.Sprintf("%.2f", row.RemainingGaj),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	_ = w.Write([]string{""})
	_ = w.Write([]string{"Total Paid", "", "", fmt.Sprintf("%.2f", result.TotalRupees), fmt.Sprintf("%.2f", result.TotalGaj), fmt.Sprintf("%.2f", result.CurrentRemainingGaj)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b, nil
}

// Helper to generate PDF from HTML template
func (s *ReportService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	// Try path relative to project root (Prod)
	tmplPath := fmt.Sprintf("internal/services/templates/reports/%s", templateName)
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		// Try path relative to package (Test)
		tmplPath = fmt.Sprintf("templates/reports/%s", templateName)
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (path: %s): %w", templateName, tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}

// GenerateBookingSlipPDF generates a printable booking slip for a plot sale,
// with the amount spelled out in words.
func (s *ReportService) GenerateBookingSlipPDF(ctx context.Context, bookingID uint) (*bytes.Buffer, error) {
	booking, err := s.bookingRepo.FindByIDWithDetails(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	colonyName := "N/A"
	colonyAddress := ""
	if booking.Plot.Colony != nil {
		colonyName = booking.Plot.Colony.Name
		colonyAddress = booking.Plot.Colony.Address
	}

	agentName := "Direct"
	if booking.Agent != nil {
		agentName = booking.Agent.FullName
	}

	customerPhone := ""
	if booking.CustomerPhone != nil {
		customerPhone = *booking.CustomerPhone
	}

	areaGaj := booking.Plot.AreaGajValue()
	paid := 0.0
	if booking.Plot.PaidAmount != nil {
		paid = *booking.Plot.PaidAmount
	}

	data := map[string]interface{}{
		"BookingID":        booking.ID,
		"CustomerName":     booking.CustomerName,
		"CustomerPhone":    customerPhone,
		"AgentName":        agentName,
		"ColonyName":       colonyName,
		"ColonyAddress":    colonyAddress,
		"PlotNo":           booking.Plot.PlotNo,
		"AreaGaj":          fmt.Sprintf("%.2f", areaGaj),
		"AreaSqft":         fmt.Sprintf("%.2f", engine.GajToSqft(areaGaj)),
		"TotalAmount":      fmt.Sprintf("%.2f", booking.TotalAmount),
		"TotalAmountWords": NumberToWords(booking.TotalAmount),
		"PaidAmount":       fmt.Sprintf("%.2f", paid),
		"DueAmount":        fmt.Sprintf("%.2f", booking.Plot.DueAmount()),
		"Status":           booking.Status,
		"BookedOn":         booking.CreatedAt.Format("02/01/2006"),
		"GeneratedOn":      time.Now().Format("02/01/2006"),
	}

	return s.generatePDF("booking_slip.html", data)
}

// GenerateKisanPaymentSlipPDF generates a printable receipt for one kisan
// payment, with its running remaining-land figure and the amount in words.
func (s *ReportService) GenerateKisanPaymentSlipPDF(ctx context.Context, paymentID uint) (*bytes.Buffer, error) {
	payment, err := s.kisanPaymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	colony, err := s.colonyRepo.FindByIDWithDetails(ctx, payment.ColonyID)
	if err != nil {
		return nil, err
	}

	payments, err := s.kisanPaymentRepo.FindByColony(ctx, payment.ColonyID)
	if err != nil {
		return nil, err
	}

	// The slip shows the remaining land as of this payment's ledger position,
	// so the full series is recomputed rather than read from anywhere.
	result := engine.ComputeLedger(colony.ToParcel(), models.KisanPaymentEvents(payments))
	remaining := result.BaseRemainingGaj
	for _, row := range result.Rows {
		if row.Event.ID == payment.ID {
			remaining = row.RemainingGaj
			break
		}
	}

	regPlotNo := "N/A"
	if payment.RegPlotNo != nil {
		regPlotNo = *payment.RegPlotNo
	}
	note := ""
	if payment.Note != nil {
		note = *payment.Note
	}

	data := map[string]interface{}{
		"PaymentID":     payment.ID,
		"ColonyName":    colony.Name,
		"ColonyAddress": colony.Address,
		"RegPlotNo":     regPlotNo,
		"Rupees":        fmt.Sprintf("%.2f", payment.Rupees),
		"RupeesWords":   NumberToWords(payment.Rupees),
		"Gaj":           fmt.Sprintf("%.2f", payment.Gaj),
		"Sqft":          fmt.Sprintf("%.2f", engine.GajToSqft(payment.Gaj)),
		"RemainingGaj":  fmt.Sprintf("%.2f", remaining),
		"Note":          note,
		"PaidOn":        payment.CreatedAt.Format("02/01/2006"),
		"GeneratedOn":   time.Now().Format("02/01/2006"),
	}

	return s.generatePDF("kisan_payment_slip.html", data)
}

// GenerateColonyStatementPDF generates a land position statement for a
// colony: totals, allocations, the derived remaining land and plot counts.
func (s *ReportService) GenerateColonyStatementPDF(ctx context.Context, colonyID uint) (*bytes.Buffer, error) {
	colony, err := s.colonyRepo.FindByIDWithDetails(ctx, colonyID)
	if err != nil {
		return nil, err
	}

	resp := colony.ToResponse()

	type RoadData struct {
		Length  string
		Width   string
		AreaGaj string
	}
	type ParkData struct {
		Sides   string
		AreaGaj string
	}

	var roads []RoadData
	for _, r := range colony.Roads {
		road := r.ToRoad()
		roads = append(roads, RoadData{
			Length:  fmt.Sprintf("%.2f", road.LengthFt),
			Width:   fmt.Sprintf("%.2f", road.WidthFt),
			AreaGaj: fmt.Sprintf("%.2f", road.AreaGaj()),
		})
	}

	var parks []ParkData
	for _, p := range colony.Parks {
		amenity := p.ToAmenity()
		parks = append(parks, ParkData{
			Sides:   fmt.Sprintf("%.0f / %.0f / %.0f / %.0f ft", amenity.FrontFt, amenity.BackFt, amenity.LeftFt, amenity.RightFt),
			AreaGaj: fmt.Sprintf("%.2f", amenity.EffectiveAreaGaj()),
		})
	}

	data := map[string]interface{}{
		"ColonyName":         colony.Name,
		"ColonyAddress":      colony.Address,
		"Status":             colony.Status,
		"TotalAreaGaj":       fmt.Sprintf("%.2f", resp.TotalAreaGaj),
		"PurchasePrice":      fmt.Sprintf("%.2f", resp.PurchasePrice),
		"PurchasePriceWords": NumberToWords(resp.PurchasePrice),
		"UsedAreaGaj":        fmt.Sprintf("%.2f", resp.UsedAreaGaj),
		"SoldAreaGaj":        fmt.Sprintf("%.2f", resp.SoldAreaGaj),
		"RemainingAreaGaj":   fmt.Sprintf("%.2f", resp.RemainingAreaGaj),
		"PricePerGaj":        fmt.Sprintf("%.2f", resp.PricePerGaj),
		"PlotCount":          resp.PlotCount,
		"AvailablePlots":     resp.AvailablePlots,
		"BookedPlots":        resp.BookedPlots,
		"SoldPlots":          resp.SoldPlots,
		"Roads":              roads,
		"Parks":              parks,
		"GeneratedOn":        time.Now().Format("02/01/2006"),
	}

	return s.generatePDF("colony_statement.html", data)
}
