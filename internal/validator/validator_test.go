package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type currencyForm struct {
	Currency string `validate:"omitempty,iso4217"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	RegisterOn(v)
	return v
}

func TestISO4217(t *testing.T) {
	v := newValidate()

	tests := []struct {
		name     string
		currency string
		valid    bool
	}{
		{"empty is allowed with omitempty", "", true},
		{"USD", "USD", true},
		{"JPY", "JPY", true},
		{"lowercase is rejected", "usd", false},
		{"unknown code", "XYZ", false},
		{"too long", "USDT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(currencyForm{Currency: tt.currency})
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.currency, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to be invalid", tt.currency)
			}
		})
	}
}
