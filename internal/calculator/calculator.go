package calculator

import (
	"errors"
	"fmt"
	"math"
)

// Grade thresholds, in percent. A cash flow below zero overrides all of them.
const (
	excellentCashOnCash = 12.0
	excellentCapRate    = 8.0
	goodCashOnCash      = 8.0
	goodCapRate         = 6.0
	fairCashOnCash      = 5.0
	fairCapRate         = 4.0
)

// ErrInvalidAssumptions is returned for a negative rate or a term under one year.
var ErrInvalidAssumptions = errors.New("invalid calculator assumptions")

// Validate checks that price and rent are positive finite numbers.
// DownPaymentPercent is not range checked.
func Validate(in Input) error {
	if !positive(in.PropertyPrice) {
		return &InvalidInputError{Field: "property_price", Value: in.PropertyPrice}
	}
	if !positive(in.MonthlyRent) {
		return &InvalidInputError{Field: "monthly_rent", Value: in.MonthlyRent}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Validate checks that the assumptions can drive the amortization formula.
func (a Assumptions) Validate() error {
	switch {
	case math.IsNaN(a.AnnualInterestRate) || a.AnnualInterestRate < 0:
		return fmt.Errorf("%w: annual_interest_rate %v", ErrInvalidAssumptions, a.AnnualInterestRate)
	case a.LoanTermYears < 1:
		return fmt.Errorf("%w: loan_term_years %d", ErrInvalidAssumptions, a.LoanTermYears)
	case math.IsNaN(a.AnnualExpenseRate) || a.AnnualExpenseRate < 0:
		return fmt.Errorf("%w: annual_expense_rate %v", ErrInvalidAssumptions, a.AnnualExpenseRate)
	}
	return nil
}

// MortgagePayment returns the fixed monthly payment that amortizes principal
// over years at annualRate. A zero rate splits the principal evenly.
func MortgagePayment(principal, annualRate float64, years int) float64 {
	monthlyRate := annualRate / 12
	n := float64(years * 12)

	if monthlyRate == 0 {
		return principal / n
	}

	growth := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * growth / (growth - 1)
}

// GradeInvestment rates an investment. The first matching rule wins and all
// thresholds are inclusive.
func GradeInvestment(cashOnCash, capRate, cashFlow float64) Grade {
	switch {
	case cashFlow < 0:
		return GradePoorNegativeCashFlow
	case cashOnCash >= excellentCashOnCash && capRate >= excellentCapRate:
		return GradeExcellent
	case cashOnCash >= goodCashOnCash && capRate >= goodCapRate:
		return GradeGood
	case cashOnCash >= fairCashOnCash && capRate >= fairCapRate:
		return GradeFair
	default:
		return GradeBelowAverage
	}
}

// Calculate evaluates in with DefaultAssumptions.
func Calculate(in Input) (Result, error) {
	return CalculateWith(in, DefaultAssumptions())
}

// CalculateWith evaluates in under the given assumptions. On error the
// returned Result is always the zero value.
func CalculateWith(in Input, a Assumptions) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	if err := a.Validate(); err != nil {
		return Result{}, err
	}

	var r Result
	r.DownPayment = in.PropertyPrice * in.DownPaymentPercent / 100
	r.LoanAmount = in.PropertyPrice - r.DownPayment
	r.MonthlyMortgage = MortgagePayment(r.LoanAmount, a.AnnualInterestRate, a.LoanTermYears)
	r.MonthlyExpenses = in.PropertyPrice * a.AnnualExpenseRate / 12
	r.MonthlyCashFlow = in.MonthlyRent - r.MonthlyMortgage - r.MonthlyExpenses
	r.AnnualCashFlow = r.MonthlyCashFlow * 12

	if r.DownPayment > 0 {
		r.CashOnCashReturnPercent = r.AnnualCashFlow / r.DownPayment * 100
	}
	r.CapRatePercent = (in.MonthlyRent*12 - in.PropertyPrice*a.AnnualExpenseRate) / in.PropertyPrice * 100
	r.OnePercentRulePercent = in.MonthlyRent / in.PropertyPrice * 100

	if err := checkFinite(in, r); err != nil {
		return Result{}, err
	}

	r.Grade = GradeInvestment(r.CashOnCashReturnPercent, r.CapRatePercent, r.MonthlyCashFlow)
	return r, nil
}

// checkFinite rejects inputs whose derived figures overflow float64. The
// error names the input that drives the first non-finite field.
func checkFinite(in Input, r Result) error {
	fields := []struct {
		v     float64
		field string
		input float64
	}{
		{r.DownPayment, "property_price", in.PropertyPrice},
		{r.LoanAmount, "property_price", in.PropertyPrice},
		{r.MonthlyMortgage, "property_price", in.PropertyPrice},
		{r.MonthlyExpenses, "property_price", in.PropertyPrice},
		{r.MonthlyCashFlow, "monthly_rent", in.MonthlyRent},
		{r.AnnualCashFlow, "monthly_rent", in.MonthlyRent},
		{r.CashOnCashReturnPercent, "down_payment_percent", in.DownPaymentPercent},
		{r.CapRatePercent, "monthly_rent", in.MonthlyRent},
		{r.OnePercentRulePercent, "monthly_rent", in.MonthlyRent},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &InvalidInputError{Field: f.field, Value: f.input}
		}
	}
	return nil
}

// Sweep evaluates the same property at each down-payment percent, keeping
// the order of percents. The DownPaymentPercent of in is ignored.
func Sweep(in Input, percents []float64, a Assumptions) ([]Scenario, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	scenarios := make([]Scenario, 0, len(percents))
	for _, pct := range percents {
		variant := in
		variant.DownPaymentPercent = pct

		result, err := CalculateWith(variant, a)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, Scenario{DownPaymentPercent: pct, Result: result})
	}
	return scenarios, nil
}
