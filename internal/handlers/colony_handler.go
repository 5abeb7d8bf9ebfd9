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

type ColonyHandler struct {
	colonyService *services.ColonyService
}

func NewColonyHandler(colonyService *services.ColonyService) *ColonyHandler {
	return &ColonyHandler{colonyService: colonyService}
}

// @Summary List Colonies
// @Description Get a paginated list of colonies
// @Tags Colonies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search term"
// @Param status query string false "Filter by status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /colonies [get]
func (h *ColonyHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")
	query.Filters["status"] = c.Query("status")

	colonies, total, err := h.colonyService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.ColonyResponse
	for i := range colonies {
		responses = append(responses, colonies[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"colonies": responses, "pagination": gin.H{"total": total}})
}

// @Summary Get Colony
// @Description Get a colony by ID with derived land figures
// @Tags Colonies
// @Accept json
// @Produce json
// @Param colony_id path int true "Colony ID"
// @Success 200 {object} models.ColonyResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /colonies/{colony_id} [get]
func (h *ColonyHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("colony_id"), 10, 32)
	colony, err := h.colonyService.FindByIDWithDetails(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colony not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"colony": colony.ToResponse()})
}

// @Summary Create Colony
// @Description Create a new colony
// @Tags Colonies
// @Accept json
// @Produce json
// @Param request body models.Colony true "Colony Data"
// @Success 201 {object} models.ColonyResponse
// @Security BearerAuth
// @Router /colonies [post]
func (h *ColonyHandler) Create(c *gin.Context) {
	var colony models.Colony
	if err := BindNestedOrFlat(c, "colony", &colony); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.colonyService.Create(c.Request.Context(), &colony); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"colony": colony.ToResponse()})
}

// @Summary Update Colony
// @Description Update an existing colony
// @Tags Colonies
// @Accept json
// @Produce json
// @Param colony_id path int true "Colony ID"
// @Param request body models.Colony true "Colony Data"
// @Success 200 {object} models.ColonyResponse
// @Security BearerAuth
// @Router /colonies/{colony_id} [put]
func (h *ColonyHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("colony_id"), 10, 32)
	var colony models.Colony
	if err := BindNestedOrFlat(c, "colony", &colony); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	colony.ID = uint(id)

	if err := h.colonyService.Update(c.Request.Context(), &colony); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Colony not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"colony": colony.ToResponse()})
}

// @Summary Delete Colony
// @Description Delete a colony
// @Tags Colonies
// @Accept json
// @Produce json
// @Param colony_id path int true "Colony ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /colonies/{colony_id} [delete]
func (h *ColonyHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("colony_id"), 10, 32)
	if err := h.colonyService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Colony deleted"})
}

// @Summary Colony Land Summary
// @Description Get derived land figures for a colony: used, sold and remaining area
// @Tags Colonies
// @Accept json
// @Produce json
// @Param colony_id path int true "Colony ID"
// @Success 200 {object} models.ColonyResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /colonies/{colony_id}/land_summary [get]
func (h *ColonyHandler) LandSummary(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("colony_id"), 10, 32)
	summary, err := h.colonyService.LandSummary(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colony not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// @Summary List Properties
// @Description Get a paginated list of properties
// @Tags Properties
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search term"
// @Param colony_id query int false "Filter by colony"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Search = c.Query("search_term")
	query.Filters["colony_id"] = c.Query("colony_id")
	query.Filters["status"] = c.Query("status")

	properties, total, err := h.propertyService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []models.PropertyResponse
	for i := range properties {
		responses = append(responses, properties[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"properties": responses, "pagination": gin.H{"total": total}})
}

// @Summary Get Property
// @Description Get a property by ID with derived land figures
// @Tags Properties
// @Accept json
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {object} models.PropertyResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id} [get]
func (h *PropertyHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("property_id"), 10, 32)
	property, err := h.propertyService.FindByIDWithDetails(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"property": property.ToResponse()})
}

// @Summary Create Property
// @Description Create a new property
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body models.Property true "Property Data"
// @Success 201 {object} models.PropertyResponse
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var property models.Property
	if err := BindNestedOrFlat(c, "property", &property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.propertyService.Create(c.Request.Context(), &property); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Colony not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"property": property.ToResponse()})
}

// @Summary Update Property
// @Description Update an existing property
// @Tags Properties
// @Accept json
// @Produce json
// @Param property_id path int true "Property ID"
// @Param request body models.Property true "Property Data"
// @Success 200 {object} models.PropertyResponse
// @Security BearerAuth
// @Router /properties/{property_id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("property_id"), 10, 32)
	var property models.Property
	if err := BindNestedOrFlat(c, "property", &property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	property.ID = uint(id)

	if err := h.propertyService.Update(c.Request.Context(), &property); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"property": property.ToResponse()})
}

// @Summary Delete Property
// @Description Delete a property
// @Tags Properties
// @Accept json
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("property_id"), 10, 32)
	if err := h.propertyService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

// @Summary Property Land Summary
// @Description Get derived land figures for a property
// @Tags Properties
// @Accept json
// @Produce json
// @Param property_id path int true "Property ID"
// @Success 200 {object} models.PropertyResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /properties/{property_id}/land_summary [get]
func (h *PropertyHandler) LandSummary(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("property_id"), 10, 32)
	summary, err := h.propertyService.LandSummary(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
