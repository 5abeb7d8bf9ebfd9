package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhumicrm/bhumi-api/internal/middleware"
	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/services"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// @Summary List Bookings
// @Description Get a paginated list of bookings. Agents only see their own.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by customer name or phone"
// @Param status query string false "Filter by status"
// @Param plot_id query int false "Filter by plot"
// @Param agent_id query int false "Filter by agent"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")
	query.Filters["status"] = c.Query("status")
	query.Filters["plot_id"] = c.Query("plot_id")

	// Agents are scoped to their own bookings regardless of the filter
	if middleware.IsAgent(c) {
		query.Filters["agent_id"] = strconv.FormatUint(uint64(middleware.GetUserID(c)), 10)
	} else {
		query.Filters["agent_id"] = c.Query("agent_id")
	}

	bookings, total, err := h.bookingService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.BookingResponse
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"bookings": responses, "pagination": gin.H{"total": total}})
}

// @Summary Get Booking
// @Description Get a booking by ID
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.BookingResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id} [get]
func (h *BookingHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	booking, err := h.bookingService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse()})
}

// @Summary Create Booking
// @Description Book an available plot for a customer. The plot moves to booked.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body models.Booking true "Booking Data"
// @Success 201 {object} models.BookingResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var booking models.Booking
	if err := BindNestedOrFlat(c, "booking", &booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An agent always books under their own ID
	if middleware.IsAgent(c) {
		agentID := middleware.GetUserID(c)
		booking.AgentID = &agentID
	}

	if err := h.bookingService.Create(c.Request.Context(), &booking); err != nil {
		switch {
		case errors.Is(err, services.ErrPlotUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Plot is not available for booking"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Plot not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking.ToResponse()})
}

// @Summary Confirm Booking
// @Description Confirm a booking; the plot moves to sold
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.BookingResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	booking, err := h.bookingService.Confirm(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse(), "message": "Booking confirmed"})
}

// @Summary Cancel Booking
// @Description Cancel a booking; the plot stays booked and its area remains consumed
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} models.BookingResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /bookings/{booking_id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	booking, err := h.bookingService.Cancel(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse(), "message": "Booking cancelled"})
}

// @Summary Update Booking
// @Description Update booking details. Plot, agent and status never change here.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Param request body models.Booking true "Booking Data"
// @Success 200 {object} models.BookingResponse
// @Security BearerAuth
// @Router /bookings/{booking_id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("booking_id"), 10, 32)
	var booking models.Booking
	if err := BindNestedOrFlat(c, "booking", &booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking.ID = uint(id)

	if err := h.bookingService.Update(c.Request.Context(), &booking); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking.ToResponse()})
}
