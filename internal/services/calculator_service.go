package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"propcalc/internal/calculator"
	apperrors "propcalc/internal/errors"
	"propcalc/internal/logger"
)

// calculatorService runs the ROI engine under fixed assumptions.
type calculatorService struct {
	assumptions calculator.Assumptions
	log         *zap.SugaredLogger
}

// NewCalculatorService creates a CalculatorServicer. The assumptions must
// already be valid; config.Load guarantees that for file-based overrides.
func NewCalculatorService(assumptions calculator.Assumptions) CalculatorServicer {
	return &calculatorService{
		assumptions: assumptions,
		log:         logger.Named("calculator"),
	}
}

// Calculate evaluates a typed input.
func (s *calculatorService) Calculate(input calculator.Input) (*calculator.Result, error) {
	result, err := calculator.CalculateWith(input, s.assumptions)
	if err != nil {
		return nil, s.translate(err, input)
	}

	s.log.Debugw("calculated",
		"property_price", input.PropertyPrice,
		"down_payment_percent", input.DownPaymentPercent,
		"monthly_rent", input.MonthlyRent,
		"grade", result.Grade,
	)
	return &result, nil
}

// CalculateForm evaluates raw form values using permissive parsing.
func (s *calculatorService) CalculateForm(price, downPaymentPercent, rent string) (*calculator.Result, error) {
	return s.Calculate(calculator.ParseForm(price, downPaymentPercent, rent))
}

// Sweep evaluates the input at each down-payment percent, in order.
func (s *calculatorService) Sweep(input calculator.Input, downPaymentPercents []float64) ([]calculator.Scenario, error) {
	if len(downPaymentPercents) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "At least one down payment percent is required")
	}
	if len(downPaymentPercents) > MaxScenarios {
		return nil, apperrors.WithMessage(apperrors.ErrTooManyScenarios,
			fmt.Sprintf("At most %d down payment scenarios are allowed", MaxScenarios))
	}

	scenarios, err := calculator.Sweep(input, downPaymentPercents, s.assumptions)
	if err != nil {
		return nil, s.translate(err, input)
	}

	s.log.Debugw("swept scenarios",
		"property_price", input.PropertyPrice,
		"monthly_rent", input.MonthlyRent,
		"scenarios", len(scenarios),
	)
	return scenarios, nil
}

// Assumptions returns the loan and expense assumptions in use.
func (s *calculatorService) Assumptions() calculator.Assumptions {
	return s.assumptions
}

// translate maps engine errors onto the API error catalogue.
func (s *calculatorService) translate(err error, input calculator.Input) error {
	if errors.Is(err, calculator.ErrInvalidInput) {
		return apperrors.Wrap(apperrors.ErrInvalidProperty, err)
	}

	s.log.Errorw("calculation failed",
		"error", err,
		"property_price", input.PropertyPrice,
		"monthly_rent", input.MonthlyRent,
	)
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
