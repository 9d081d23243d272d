package testutil

import (
	"errors"
	"math"
	"testing"

	"propcalc/internal/calculator"
	apperrors "propcalc/internal/errors"
)

// CentTolerance is the accepted difference when comparing money amounts.
const CentTolerance = 0.005

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertMoney checks that got is within half a cent of want.
func AssertMoney(t *testing.T, field string, want, got float64) {
	t.Helper()

	if math.Abs(want-got) > CentTolerance {
		t.Errorf("%s: expected %.2f, got %.4f", field, want, got)
	}
}

// AssertGrade checks the grade of a result.
func AssertGrade(t *testing.T, result *calculator.Result, want calculator.Grade) {
	t.Helper()

	if result == nil {
		t.Fatalf("expected result with grade %q, got nil", want)
	}
	if result.Grade != want {
		t.Errorf("expected grade %q, got %q", want, result.Grade)
	}
}
