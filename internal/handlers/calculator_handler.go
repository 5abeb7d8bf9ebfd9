package handlers

import (
	"net/http"
	"strconv"

	"github.com/bhumicrm/bhumi-api/internal/engine"
	"github.com/bhumicrm/bhumi-api/internal/services"
	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	calculatorService *services.CalculatorService
}

func NewCalculatorHandler(calculatorService *services.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

type RoadInput struct {
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
}

type ParkInput struct {
	FrontFt float64  `json:"front_ft"`
	BackFt  float64  `json:"back_ft"`
	LeftFt  float64  `json:"left_ft"`
	RightFt float64  `json:"right_ft"`
	AreaGaj *float64 `json:"area_gaj"`
}

type CalculateRequest struct {
	TotalAreaSqft    float64     `json:"total_area_sqft"`
	TotalAreaGaj     float64     `json:"total_area_gaj"`
	PurchaseCost     float64     `json:"purchase_cost"`
	DesiredProfitPct float64     `json:"desired_profit_pct"`
	Roads            []RoadInput `json:"roads"`
	Parks            []ParkInput `json:"parks"`
}

func (r *CalculateRequest) toInput() engine.CalculatorInput {
	in := engine.CalculatorInput{
		TotalAreaSqft:    r.TotalAreaSqft,
		TotalAreaGaj:     r.TotalAreaGaj,
		PurchaseCost:     r.PurchaseCost,
		DesiredProfitPct: r.DesiredProfitPct,
	}
	for _, road := range r.Roads {
		in.Roads = append(in.Roads, engine.Road{LengthFt: road.LengthFt, WidthFt: road.WidthFt})
	}
	for _, park := range r.Parks {
		in.Amenities = append(in.Amenities, engine.Amenity{
			FrontFt: park.FrontFt,
			BackFt:  park.BackFt,
			LeftFt:  park.LeftFt,
			RightFt: park.RightFt,
			AreaGaj: park.AreaGaj,
		})
	}
	return in
}

// @Summary Price Calculator
// @Description Run a what-if pricing scenario. Nothing is persisted.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Scenario Inputs"
// @Success 200 {object} engine.CalculatorResult
// @Router /calculator [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.calculatorService.Calculate(req.toInput())
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// @Summary Colony Price Calculator
// @Description Run a what-if pricing scenario prefilled from a colony's stored
// area, cost and allocations. Request fields override stored values.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param colony_id path int true "Colony ID"
// @Param request body CalculateRequest true "Scenario Overrides"
// @Success 200 {object} engine.CalculatorResult
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /colonies/{colony_id}/calculator [post]
func (h *CalculatorHandler) CalculateForColony(c *gin.Context) {
	colonyID, _ := strconv.ParseUint(c.Param("colony_id"), 10, 32)

	var req CalculateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.calculatorService.CalculateForColony(c.Request.Context(), uint(colonyID), req.toInput())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colony not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
