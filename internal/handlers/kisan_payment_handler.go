package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bhumicrm/bhumi-api/internal/models"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/services"
	"github.com/gin-gonic/gin"
)

type KisanPaymentHandler struct {
	kisanPaymentService *services.KisanPaymentService
}

func NewKisanPaymentHandler(kisanPaymentService *services.KisanPaymentService) *KisanPaymentHandler {
	return &KisanPaymentHandler{kisanPaymentService: kisanPaymentService}
}

// @Summary List Kisan Payments
// @Description Get a paginated list of kisan payments
// @Tags KisanPayments
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param colony_id query int false "Filter by colony"
// @Param reg_plot_no query string false "Filter by registry plot number"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /kisan_payments [get]
func (h *KisanPaymentHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Filters["colony_id"] = c.Query("colony_id")
	query.Filters["reg_plot_no"] = c.Query("reg_plot_no")

	payments, total, err := h.kisanPaymentService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"kisan_payments": payments, "pagination": gin.H{"total": total}})
}

// @Summary Colony Kisan Ledger
// @Description Get the running remaining-land ledger for a colony. Rows follow
// payment creation order and every remaining figure is recomputed on read.
// @Tags KisanPayments
// @Accept json
// @Produce json
// @Param colony_id path int true "Colony ID"
// @Success 200 {object} services.LedgerView
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /colonies/{colony_id}/ledger [get]
func (h *KisanPaymentHandler) Ledger(c *gin.Context) {
	colonyID, _ := strconv.ParseUint(c.Param("colony_id"), 10, 32)
	ledger, err := h.kisanPaymentService.Ledger(c.Request.Context(), uint(colonyID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colony not found"})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// @Summary Create Kisan Payment
// @Description Record a payment made to a kisan for colony land
// @Tags KisanPayments
// @Accept json
// @Produce json
// @Param request body models.KisanPayment true "Payment Data"
// @Success 201 {object} models.KisanPayment
// @Security BearerAuth
// @Router /kisan_payments [post]
func (h *KisanPaymentHandler) Create(c *gin.Context) {
	var payment models.KisanPayment
	if err := BindNestedOrFlat(c, "kisan_payment", &payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.kisanPaymentService.Create(c.Request.Context(), &payment); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Colony not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"kisan_payment": payment})
}

// @Summary Update Kisan Payment
// @Description Update a kisan payment. The colony and the ledger position never change.
// @Tags KisanPayments
// @Accept json
// @Produce json
// @Param payment_id path int true "Payment ID"
// @Param request body models.KisanPayment true "Payment Data"
// @Success 200 {object} models.KisanPayment
// @Security BearerAuth
// @Router /kisan_payments/{payment_id} [put]
func (h *KisanPaymentHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("payment_id"), 10, 32)
	var payment models.KisanPayment
	if err := BindNestedOrFlat(c, "kisan_payment", &payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment.ID = uint(id)

	if err := h.kisanPaymentService.Update(c.Request.Context(), &payment); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"kisan_payment": payment})
}

// @Summary Delete Kisan Payment
// @Description Delete a kisan payment; the colony ledger is recomputed without it
// @Tags KisanPayments
// @Accept json
// @Produce json
// @Param payment_id path int true "Payment ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /kisan_payments/{payment_id} [delete]
func (h *KisanPaymentHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("payment_id"), 10, 32)
	if err := h.kisanPaymentService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
