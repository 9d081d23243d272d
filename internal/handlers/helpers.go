package handlers

import (
	"propcalc/internal/calculator"
	"propcalc/internal/format"
)

// ROIResponse is a calculation result together with its display rendering.
type ROIResponse struct {
	Result  calculator.Result `json:"result"`
	Display format.Summary    `json:"display"`
}

func newROIResponse(result *calculator.Result, currency string) ROIResponse {
	return ROIResponse{Result: *result, Display: format.Summarize(*result, currency)}
}
