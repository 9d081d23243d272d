// Package calculator implements the rental property ROI engine: mortgage
// amortization, cash-flow metrics and a qualitative investment grade.
//
// Every function in this package is pure. Results depend only on the
// arguments, so callers may share nothing and call from any goroutine.
package calculator

// Default assumptions applied by Calculate.
const (
	DefaultAnnualInterestRate = 0.065
	DefaultLoanTermYears      = 30
	DefaultAnnualExpenseRate  = 0.01
	DefaultDownPaymentPercent = 20.0
)

// Input holds the property figures supplied by the user.
type Input struct {
	PropertyPrice      float64 `json:"property_price" yaml:"property_price"`
	DownPaymentPercent float64 `json:"down_payment_percent" yaml:"down_payment_percent"`
	MonthlyRent        float64 `json:"monthly_rent" yaml:"monthly_rent"`
}

// Assumptions are the loan and expense parameters that are not user input.
type Assumptions struct {
	AnnualInterestRate float64 `json:"annual_interest_rate" yaml:"annual_interest_rate"`
	LoanTermYears      int     `json:"loan_term_years" yaml:"loan_term_years"`
	// AnnualExpenseRate is a fraction of the property price, charged monthly as rate/12.
	AnnualExpenseRate float64 `json:"annual_expense_rate" yaml:"annual_expense_rate"`
}

// DefaultAssumptions returns 6.5% over 30 years with 1% yearly expenses.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		AnnualInterestRate: DefaultAnnualInterestRate,
		LoanTermYears:      DefaultLoanTermYears,
		AnnualExpenseRate:  DefaultAnnualExpenseRate,
	}
}

// Result is the full set of metrics for one Input. Values are unrounded.
type Result struct {
	DownPayment             float64 `json:"down_payment"`
	LoanAmount              float64 `json:"loan_amount"`
	MonthlyMortgage         float64 `json:"monthly_mortgage"`
	MonthlyExpenses         float64 `json:"monthly_expenses"`
	MonthlyCashFlow         float64 `json:"monthly_cash_flow"`
	AnnualCashFlow          float64 `json:"annual_cash_flow"`
	CashOnCashReturnPercent float64 `json:"cash_on_cash_return_percent"`
	CapRatePercent          float64 `json:"cap_rate_percent"`
	OnePercentRulePercent   float64 `json:"one_percent_rule_percent"`
	Grade                   Grade   `json:"grade"`
}

// Grade is the qualitative rating of an investment.
type Grade string

const (
	GradePoorNegativeCashFlow Grade = "poor_negative_cash_flow"
	GradeExcellent            Grade = "excellent"
	GradeGood                 Grade = "good"
	GradeFair                 Grade = "fair"
	GradeBelowAverage         Grade = "below_average"
)

var gradeLabels = map[Grade]string{
	GradePoorNegativeCashFlow: "Poor (Negative Cash Flow)",
	GradeExcellent:            "Excellent",
	GradeGood:                 "Good",
	GradeFair:                 "Fair",
	GradeBelowAverage:         "Below Average",
}

// Label returns the display text for the grade.
func (g Grade) Label() string {
	if label, ok := gradeLabels[g]; ok {
		return label
	}
	return string(g)
}

// Valid reports whether g is one of the known grades.
func (g Grade) Valid() bool {
	_, ok := gradeLabels[g]
	return ok
}

// Scenario pairs a down-payment percent with the result it produces.
type Scenario struct {
	DownPaymentPercent float64 `json:"down_payment_percent"`
	Result             Result  `json:"result"`
}
