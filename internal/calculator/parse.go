package calculator

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the numeric prefix of a form value, so "1500/mo"
// parses as 1500 the way browser number parsing does.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

var formNoise = strings.NewReplacer(",", "", "_", "", "$", "", "€", "", "£", "", "¥", "")

// groupSpace matches a space used as a thousands separator, as in "300 000".
var groupSpace = regexp.MustCompile(`(\d)[ \x{00a0}](\d{3})\b`)

// ParseForm builds an Input from raw form strings. Missing or non-numeric
// price and rent become 0, which Validate then rejects. A missing or
// non-numeric down-payment percent becomes DefaultDownPaymentPercent.
func ParseForm(price, downPaymentPercent, rent string) Input {
	return Input{
		PropertyPrice:      parseOr(price, 0),
		DownPaymentPercent: parseOr(downPaymentPercent, DefaultDownPaymentPercent),
		MonthlyRent:        parseOr(rent, 0),
	}
}

func parseOr(raw string, fallback float64) float64 {
	s := strings.TrimSpace(formNoise.Replace(strings.TrimSpace(raw)))
	s = ungroup(s)
	s = strings.TrimSuffix(s, "%")

	m := leadingNumber.FindString(s)
	if m == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return fallback
	}
	return v
}

// ungroup drops grouping spaces between digit groups. Any other space ends
// the number, so "1 2" parses as 1.
func ungroup(s string) string {
	for {
		next := groupSpace.ReplaceAllString(s, "${1}${2}")
		if next == s {
			return s
		}
		s = next
	}
}
