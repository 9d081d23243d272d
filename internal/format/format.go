// Package format renders calculator results for display. Rounding happens
// only here; the calculator itself works on unrounded floats.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"propcalc/internal/calculator"
)

// DefaultCurrency is used when no currency code is supplied.
const DefaultCurrency = "USD"

// printer groups digits and renders currency symbols the English way.
var printer = message.NewPrinter(language.English)

// Summary is a Result rendered as display strings.
type Summary struct {
	Currency                string `json:"currency"`
	DownPayment             string `json:"down_payment"`
	LoanAmount              string `json:"loan_amount"`
	MonthlyMortgage         string `json:"monthly_mortgage"`
	MonthlyExpenses         string `json:"monthly_expenses"`
	MonthlyCashFlow         string `json:"monthly_cash_flow"`
	AnnualCashFlow          string `json:"annual_cash_flow"`
	CashOnCashReturnPercent string `json:"cash_on_cash_return_percent"`
	CapRatePercent          string `json:"cap_rate_percent"`
	OnePercentRulePercent   string `json:"one_percent_rule_percent"`
	Grade                   string `json:"grade"`
}

// Summarize renders every field of r in the given currency.
func Summarize(r calculator.Result, currency string) Summary {
	code := normalizeCode(currency)
	return Summary{
		Currency:                code,
		DownPayment:             Currency(r.DownPayment, code),
		LoanAmount:              Currency(r.LoanAmount, code),
		MonthlyMortgage:         Currency(r.MonthlyMortgage, code),
		MonthlyExpenses:         Currency(r.MonthlyExpenses, code),
		MonthlyCashFlow:         Currency(r.MonthlyCashFlow, code),
		AnnualCashFlow:          Currency(r.AnnualCashFlow, code),
		CashOnCashReturnPercent: Percent(r.CashOnCashReturnPercent, 2),
		CapRatePercent:          Percent(r.CapRatePercent, 2),
		OnePercentRulePercent:   Percent(r.OnePercentRulePercent, 2),
		Grade:                   r.Grade.Label(),
	}
}

// Currency renders amount with thousands separators, rounded half away from
// zero to the currency's ISO 4217 minor unit. Currencies with a symbol get it
// as a prefix; others, and codes x/text does not know, are prefixed with the
// code and a space. Unknown codes keep two decimals.
func Currency(amount float64, code string) string {
	code = normalizeCode(code)
	if !finite(amount) {
		return notANumber
	}

	prefix := code + " "
	places := 2
	// ParseISO maps XXX to the zero Unit, which x/text formats as USD.
	if unit, err := currency.ParseISO(code); err == nil && unit != (currency.Unit{}) {
		places = minorUnits(unit)
		if symbol := printer.Sprint(currency.Symbol(unit)); symbol != unit.String() {
			prefix = symbol
		}
	}

	rounded := decimal.NewFromFloat(amount).Round(int32(places))
	digits := printer.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(places)))

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(prefix)
	b.WriteString(digits)
	return b.String()
}

func minorUnits(unit currency.Unit) int {
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// Percent renders v with a fixed number of decimal places and a % suffix.
func Percent(v float64, places int) string {
	if !finite(v) {
		return notANumber
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places)) + "%"
}

// InputPercent renders a user-supplied percent with no rounding, so 12.5
// stays "12.5%".
func InputPercent(v float64) string {
	if !finite(v) {
		return notANumber
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// notANumber is rendered for NaN and infinite values, which decimal cannot hold.
const notANumber = "n/a"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func normalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}
