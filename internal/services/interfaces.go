package services

import (
	"propcalc/internal/calculator"
)

// MaxScenarios bounds the number of down-payment percents in one sweep.
const MaxScenarios = 20

// CalculatorServicer defines the contract for ROI calculations.
type CalculatorServicer interface {
	Calculate(input calculator.Input) (*calculator.Result, error)
	CalculateForm(price, downPaymentPercent, rent string) (*calculator.Result, error)
	Sweep(input calculator.Input, downPaymentPercents []float64) ([]calculator.Scenario, error)
	Assumptions() calculator.Assumptions
}
