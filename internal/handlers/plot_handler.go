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

type PlotHandler struct {
	plotService *services.PlotService
}

func NewPlotHandler(plotService *services.PlotService) *PlotHandler {
	return &PlotHandler{plotService: plotService}
}

// @Summary List Plots
// @Description Get a paginated list of plots
// @Tags Plots
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by plot number"
// @Param colony_id query int false "Filter by colony"
// @Param property_id query int false "Filter by property"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /plots [get]
func (h *PlotHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")
	query.Filters["colony_id"] = c.Query("colony_id")
	query.Filters["property_id"] = c.Query("property_id")
	query.Filters["status"] = c.Query("status")

	plots, total, err := h.plotService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.PlotResponse
	for i := range plots {
		responses = append(responses, plots[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"plots": responses, "pagination": gin.H{"total": total}})
}

// @Summary Get Plot
// @Description Get a plot by ID
// @Tags Plots
// @Accept json
// @Produce json
// @Param plot_id path int true "Plot ID"
// @Success 200 {object} models.PlotResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /plots/{plot_id} [get]
func (h *PlotHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("plot_id"), 10, 32)
	plot, err := h.plotService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plot": plot.ToResponse()})
}

// @Summary Create Plot
// @Description Create a new plot in a colony or property
// @Tags Plots
// @Accept json
// @Produce json
// @Param request body models.Plot true "Plot Data"
// @Success 201 {object} models.PlotResponse
// @Security BearerAuth
// @Router /plots [post]
func (h *PlotHandler) Create(c *gin.Context) {
	var plot models.Plot
	if err := BindNestedOrFlat(c, "plot", &plot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.plotService.Create(c.Request.Context(), &plot); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Colony not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plot": plot.ToResponse()})
}

// @Summary Update Plot
// @Description Update an existing plot. Status is never changed here; booking operations drive it.
// @Tags Plots
// @Accept json
// @Produce json
// @Param plot_id path int true "Plot ID"
// @Param request body models.Plot true "Plot Data"
// @Success 200 {object} models.PlotResponse
// @Security BearerAuth
// @Router /plots/{plot_id} [put]
func (h *PlotHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("plot_id"), 10, 32)
	var plot models.Plot
	if err := BindNestedOrFlat(c, "plot", &plot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plot.ID = uint(id)

	if err := h.plotService.Update(c.Request.Context(), &plot); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plot": plot.ToResponse()})
}

// @Summary Delete Plot
// @Description Delete a plot. Only available plots may be deleted.
// @Tags Plots
// @Accept json
// @Produce json
// @Param plot_id path int true "Plot ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /plots/{plot_id} [delete]
func (h *PlotHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("plot_id"), 10, 32)
	if err := h.plotService.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only available plots can be deleted"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plot deleted"})
}
