package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService     *services.ReportService
	exportService     *services.ExportService
	colonyService     *services.ColonyService
	commissionService *services.CommissionService
}

func NewReportHandler(
	reportService *services.ReportService,
	exportService *services.ExportService,
	colonyService *services.ColonyService,
	commissionService *services.CommissionService,
) *ReportHandler {
	return &ReportHandler{
		reportService:     reportService,
		exportService:     exportService,
		colonyService:     colonyService,
		commissionService: commissionService,
	}
}

// @Summary Commissions Report
// @Description Download derived commissions report as CSV
// @Tags Reports
// @Produce text/csv
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file "commissions.csv"
// @Security BearerAuth
// @Router /reports/commissions_csv [get]
func (h *ReportHandler) CommissionsCSV(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	buf, err := h.reportService.GenerateCommissionsCSV(c.Request.Context(), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=commissions.csv")
	c.String(http.StatusOK, buf.String())
}

// @Summary Kisan Ledger Report
// @Description Download a colony's kisan payment ledger as CSV
// @Tags Reports
// @Produce text/csv
// @Param colony_id query int true "Colony ID"
// @Success 200 {file} file "kisan_ledger.csv"
// @Security BearerAuth
// @Router /reports/kisan_ledger_csv [get]
func (h *ReportHandler) KisanLedgerCSV(c *gin.Context) {
	colonyID, _ := strconv.ParseUint(c.Query("colony_id"), 10, 32)
	if colonyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colony_id is required"})
		return
	}

	buf, err := h.reportService.GenerateKisanLedgerCSV(c.Request.Context(), uint(colonyID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=kisan_ledger_%d.csv", colonyID))
	c.String(http.StatusOK, buf.String())
}

// @Summary Booking Slip PDF
// @Description Download a booking slip as PDF, with the amount in words
// @Tags Reports
// @Produce application/pdf
// @Param booking_id query int true "Booking ID"
// @Success 200 {file} file "booking_slip.pdf"
// @Security BearerAuth
// @Router /reports/booking_slip_pdf [get]
func (h *ReportHandler) BookingSlipPDF(c *gin.Context) {
	bookingID, _ := strconv.ParseUint(c.Query("booking_id"), 10, 32)
	if bookingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	buf, err := h.reportService.GenerateBookingSlipPDF(c.Request.Context(), uint(bookingID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=booking_slip_%d.pdf", bookingID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Kisan Payment Slip PDF
// @Description Download a printable receipt for one kisan payment, with the
// amount in words and the remaining land at that ledger position
// @Tags Reports
// @Produce application/pdf
// @Param kisan_payment_id query int true "Kisan Payment ID"
// @Success 200 {file} file "kisan_payment_slip.pdf"
// @Security BearerAuth
// @Router /reports/kisan_payment_slip_pdf [get]
func (h *ReportHandler) KisanPaymentSlipPDF(c *gin.Context) {
	paymentID, _ := strconv.ParseUint(c.Query("kisan_payment_id"), 10, 32)
	if paymentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kisan_payment_id is required"})
		return
	}

	buf, err := h.reportService.GenerateKisanPaymentSlipPDF(c.Request.Context(), uint(paymentID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=kisan_payment_slip_%d.pdf", paymentID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Colony Statement PDF
// @Description Download a colony land statement as PDF
// @Tags Reports
// @Produce application/pdf
// @Param colony_id query int true "Colony ID"
// @Success 200 {file} file "colony_statement.pdf"
// @Security BearerAuth
// @Router /reports/colony_statement_pdf [get]
func (h *ReportHandler) ColonyStatementPDF(c *gin.Context) {
	colonyID, _ := strconv.ParseUint(c.Query("colony_id"), 10, 32)
	if colonyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colony_id is required"})
		return
	}

	buf, err := h.reportService.GenerateColonyStatementPDF(c.Request.Context(), uint(colonyID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=colony_statement_%d.pdf", colonyID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Export Colony Overview
// @Description Export a colony's derived land figures together with the
// commission summary as CSV, XLSX or PDF
// @Tags Reports
// @Produce application/octet-stream
// @Param colony_id query int true "Colony ID"
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Success 200 {file} file
// @Security BearerAuth
// @Router /reports/colony_export [get]
func (h *ReportHandler) ColonyExport(c *gin.Context) {
	colonyID, _ := strconv.ParseUint(c.Query("colony_id"), 10, 32)
	if colonyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "colony_id is required"})
		return
	}

	colony, err := h.colonyService.LandSummary(c.Request.Context(), uint(colonyID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colony not found"})
		return
	}

	summary, err := h.commissionService.Summary(c.Request.Context(), repository.NewListQuery())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var (
		data        []byte
		filename    string
		contentType string
	)
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		data, filename, err = h.exportService.ExportXLSX(c.Request.Context(), colony, summary)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, filename, err = h.exportService.ExportPDF(c.Request.Context(), colony, summary)
		contentType = "application/pdf"
	default:
		data, filename, err = h.exportService.ExportCSV(c.Request.Context(), colony, summary)
		contentType = "text/csv"
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
