// Package testutil provides shared calculator fixtures and assertions for tests.
package testutil

import "propcalc/internal/calculator"

// BaselineInput is a $300k property, 20% down, renting for $2,000 a month.
// Under default assumptions it grades below average.
func BaselineInput() calculator.Input {
	return calculator.Input{PropertyPrice: 300000, DownPaymentPercent: 20, MonthlyRent: 2000}
}

// BaselineResult holds the expected metrics for BaselineInput.
var BaselineResult = calculator.Result{
	DownPayment:             60000,
	LoanAmount:              240000,
	MonthlyMortgage:         1516.96,
	MonthlyExpenses:         250,
	MonthlyCashFlow:         233.04,
	AnnualCashFlow:          2796.44,
	CashOnCashReturnPercent: 4.66,
	CapRatePercent:          7,
	OnePercentRulePercent:   0.67,
	Grade:                   calculator.GradeBelowAverage,
}

// NegativeCashFlowInput rents a $100k property for $50 a month.
func NegativeCashFlowInput() calculator.Input {
	return calculator.Input{PropertyPrice: 100000, DownPaymentPercent: 20, MonthlyRent: 50}
}

// ExcellentInput rents a $100k property for $1,500 a month with 25% down.
func ExcellentInput() calculator.Input {
	return calculator.Input{PropertyPrice: 100000, DownPaymentPercent: 25, MonthlyRent: 1500}
}

// ZeroPriceInput fails validation.
func ZeroPriceInput() calculator.Input {
	return calculator.Input{PropertyPrice: 0, DownPaymentPercent: 20, MonthlyRent: 2000}
}
