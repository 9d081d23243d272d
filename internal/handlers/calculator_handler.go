package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propcalc/internal/calculator"
	apperrors "propcalc/internal/errors"
	"propcalc/internal/format"
	"propcalc/internal/middleware"
	"propcalc/internal/services"
)

// CalculatorHandler handles ROI calculation requests
type CalculatorHandler struct {
	calculatorService services.CalculatorServicer
}

// NewCalculatorHandler creates a new CalculatorHandler
func NewCalculatorHandler(calculatorService services.CalculatorServicer) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService}
}

// ROIRequest represents the request payload for a typed ROI calculation.
// A missing down_payment_percent defaults to 20; an explicit 0 is kept.
type ROIRequest struct {
	PropertyPrice      float64  `json:"property_price" binding:"required,gt=0" example:"300000"`
	DownPaymentPercent *float64 `json:"down_payment_percent" example:"20"`
	MonthlyRent        float64  `json:"monthly_rent" binding:"required,gt=0" example:"2000"`
	Currency           string   `json:"currency" binding:"omitempty,iso4217" example:"USD"`
}

// Input converts the request into calculator input.
func (r ROIRequest) Input() calculator.Input {
	down := calculator.DefaultDownPaymentPercent
	if r.DownPaymentPercent != nil {
		down = *r.DownPaymentPercent
	}
	return calculator.Input{
		PropertyPrice:      r.PropertyPrice,
		DownPaymentPercent: down,
		MonthlyRent:        r.MonthlyRent,
	}
}

// ROIFormRequest represents raw form values. Values are parsed permissively:
// unparseable price or rent become 0, an unparseable percent becomes 20.
type ROIFormRequest struct {
	PropertyPrice      string `form:"property_price" json:"property_price" example:"$300,000"`
	DownPaymentPercent string `form:"down_payment_percent" json:"down_payment_percent" example:"20%"`
	MonthlyRent        string `form:"monthly_rent" json:"monthly_rent" example:"2,000"`
	Currency           string `form:"currency" json:"currency" binding:"omitempty,iso4217" example:"USD"`
}

// ScenariosRequest represents a down payment sweep over one property.
type ScenariosRequest struct {
	PropertyPrice       float64   `json:"property_price" binding:"required,gt=0" example:"300000"`
	MonthlyRent         float64   `json:"monthly_rent" binding:"required,gt=0" example:"2000"`
	DownPaymentPercents []float64 `json:"down_payment_percents" binding:"required,min=1"`
	Currency            string    `json:"currency" binding:"omitempty,iso4217" example:"USD"`
}

// ScenarioResponse is one evaluated down payment option.
type ScenarioResponse struct {
	DownPaymentPercent float64           `json:"down_payment_percent"`
	Result             calculator.Result `json:"result"`
	Display            format.Summary    `json:"display"`
}

// ScenariosResponse lists sweep results in request order.
type ScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// AssumptionsResponse wraps the loan and expense assumptions in use.
type AssumptionsResponse struct {
	Assumptions calculator.Assumptions `json:"assumptions"`
}

// CalculateROI handles a typed ROI calculation
// @Summary     Calculate rental ROI
// @Description Evaluate a rental property purchase and grade the investment
// @Tags        calculator
// @Accept      json
// @Produce     json
// @Param       request body ROIRequest true "Property details"
// @Success     200 {object} ROIResponse "Calculation result"
// @Failure     400 {object} apperrors.ErrorResponse "Invalid input"
// @Failure     429 {object} apperrors.ErrorResponse "Rate limited"
// @Failure     500 {object} apperrors.ErrorResponse "Server error"
// @Router      /calculator/roi [post]
func (h *CalculatorHandler) CalculateROI(c *gin.Context) {
	var req ROIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RenderError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.calculatorService.Calculate(req.Input())
	if err != nil {
		middleware.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newROIResponse(result, req.Currency))
}

// CalculateROIForm handles a calculation from raw form values
// @Summary     Calculate rental ROI from form values
// @Description Parse raw form strings permissively and evaluate the property
// @Tags        calculator
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       property_price       formData string false "Purchase price"
// @Param       down_payment_percent formData string false "Down payment percent (default 20)"
// @Param       monthly_rent         formData string false "Monthly rent"
// @Param       currency             formData string false "ISO 4217 display currency"
// @Success     200 {object} ROIResponse "Calculation result"
// @Failure     400 {object} apperrors.ErrorResponse "Invalid input"
// @Failure     429 {object} apperrors.ErrorResponse "Rate limited"
// @Failure     500 {object} apperrors.ErrorResponse "Server error"
// @Router      /calculator/roi/form [post]
func (h *CalculatorHandler) CalculateROIForm(c *gin.Context) {
	var req ROIFormRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.RenderError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.calculatorService.CalculateForm(req.PropertyPrice, req.DownPaymentPercent, req.MonthlyRent)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newROIResponse(result, req.Currency))
}

// CompareScenarios handles a down payment sweep
// @Summary     Compare down payment scenarios
// @Description Evaluate one property at several down payment percents
// @Tags        calculator
// @Accept      json
// @Produce     json
// @Param       request body ScenariosRequest true "Property and down payment options"
// @Success     200 {object} ScenariosResponse "Scenario results in request order"
// @Failure     400 {object} apperrors.ErrorResponse "Invalid input or too many scenarios"
// @Failure     429 {object} apperrors.ErrorResponse "Rate limited"
// @Failure     500 {object} apperrors.ErrorResponse "Server error"
// @Router      /calculator/scenarios [post]
func (h *CalculatorHandler) CompareScenarios(c *gin.Context) {
	var req ScenariosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RenderError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := calculator.Input{PropertyPrice: req.PropertyPrice, MonthlyRent: req.MonthlyRent}
	scenarios, err := h.calculatorService.Sweep(input, req.DownPaymentPercents)
	if err != nil {
		middleware.RenderError(c, err)
		return
	}

	resp := ScenariosResponse{Scenarios: make([]ScenarioResponse, 0, len(scenarios))}
	for _, s := range scenarios {
		resp.Scenarios = append(resp.Scenarios, ScenarioResponse{
			DownPaymentPercent: s.DownPaymentPercent,
			Result:             s.Result,
			Display:            format.Summarize(s.Result, req.Currency),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetAssumptions returns the loan and expense assumptions
// @Summary     Get calculator assumptions
// @Description Interest rate, loan term and expense rate applied to every calculation
// @Tags        calculator
// @Produce     json
// @Success     200 {object} AssumptionsResponse "Assumptions in use"
// @Router      /calculator/assumptions [get]
func (h *CalculatorHandler) GetAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, AssumptionsResponse{Assumptions: h.calculatorService.Assumptions()})
}
