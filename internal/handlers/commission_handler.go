package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhumicrm/bhumi-api/internal/middleware"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/services"
	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	commissionService *services.CommissionService
}

func NewCommissionHandler(commissionService *services.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// @Summary List Commissions
// @Description Get derived commissions for bookings. Figures are computed on
// every read; only the lifecycle status is stored. Agents only see their own.
// @Tags Commissions
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (pending, approved, paid)"
// @Param agent_id query int false "Filter by agent"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /commissions [get]
func (h *CommissionHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Filters["status"] = c.Query("status")

	if middleware.IsAgent(c) {
		query.Filters["agent_id"] = strconv.FormatUint(uint64(middleware.GetUserID(c)), 10)
	} else {
		query.Filters["agent_id"] = c.Query("agent_id")
	}

	commissions, err := h.commissionService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commissions": commissions})
}

// @Summary Get Booking Commission
// @Description Get the derived commission for a single booking
// @Tags Commissions
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.CommissionResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id}/commission [get]
func (h *CommissionHandler) Show(c *gin.Context) {
	bookingID, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	commission, err := h.commissionService.GetByBooking(c.Request.Context(), uint(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoAgent):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Booking has no agent, no commission applies"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"commission": commission})
}

// @Summary Approve Commission
// @Description Approve a pending commission (admin only)
// @Tags Commissions
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.CommissionResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id}/commission/approve [post]
func (h *CommissionHandler) Approve(c *gin.Context) {
	bookingID, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	approverID := middleware.GetUserID(c)

	commission, err := h.commissionService.Approve(c.Request.Context(), uint(bookingID), approverID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commission": commission, "message": "Commission approved"})
}

type PayCommissionRequest struct {
	PaymentRef string `json:"payment_ref"`
}

// @Summary Pay Commission
// @Description Mark an approved commission as paid (admin only)
// @Tags Commissions
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Param request body PayCommissionRequest true "Payment Reference"
// @Success 200 {object} models.CommissionResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id}/commission/pay [post]
func (h *CommissionHandler) Pay(c *gin.Context) {
	bookingID, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)

	var req PayCommissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	commission, err := h.commissionService.Pay(c.Request.Context(), uint(bookingID), req.PaymentRef)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commission": commission, "message": "Commission paid"})
}

// @Summary Revoke Commission Approval
// @Description Return an approved commission to pending (admin only)
// @Tags Commissions
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.CommissionResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id}/commission/revoke [post]
func (h *CommissionHandler) Revoke(c *gin.Context) {
	bookingID, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)

	commission, err := h.commissionService.Revoke(c.Request.Context(), uint(bookingID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commission": commission, "message": "Commission approval revoked"})
}

// @Summary Commission Summary
// @Description Get aggregate commission figures grouped by status
// @Tags Commissions
// @Accept json
// @Produce json
// @Param agent_id query int false "Filter by agent"
// @Success 200 {object} services.CommissionSummary
// @Security BearerAuth
// @Router /commissions/summary [get]
func (h *CommissionHandler) Summary(c *gin.Context) {
	query := repository.NewListQuery()

	if middleware.IsAgent(c) {
		query.Filters["agent_id"] = strconv.FormatUint(uint64(middleware.GetUserID(c)), 10)
	} else {
		query.Filters["agent_id"] = c.Query("agent_id")
	}

	summary, err := h.commissionService.Summary(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
