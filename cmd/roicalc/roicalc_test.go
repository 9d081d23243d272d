package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propcalc/internal/logger"
)

func init() {
	logger.Init("test", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Table(t *testing.T) {
	out, err := execute(t, "--price", "$300,000", "--rent", "2,000")
	require.NoError(t, err)

	assert.Contains(t, out, "Down payment (20%)")
	assert.Contains(t, out, "$60,000.00")
	assert.Contains(t, out, "$1,516.96")
	assert.Contains(t, out, "$233.04")
	assert.Contains(t, out, "Below Average")
}

func TestRoot_TableKeepsFractionalDownPayment(t *testing.T) {
	out, err := execute(t, "--price", "300000", "--down", "12.5", "--rent", "2000")
	require.NoError(t, err)

	assert.Contains(t, out, "Down payment (12.5%)")
	assert.Contains(t, out, "$37,500.00")
}

func TestRoot_JSON(t *testing.T) {
	out, err := execute(t, "--price", "100000", "--down", "25%", "--rent", "1500", "--currency", "EUR", "--json")
	require.NoError(t, err)

	var got roiOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 25.0, got.Input.DownPaymentPercent)
	assert.Equal(t, "excellent", string(got.Result.Grade))
	assert.Equal(t, "EUR", got.Display.Currency)
	assert.Equal(t, "€25,000.00", got.Display.DownPayment)
}

func TestRoot_InvalidInput(t *testing.T) {
	_, err := execute(t, "--price", "abc", "--rent", "2000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestRoot_AssumptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("annual_interest_rate: 0\nloan_term_years: 20\n"), 0o600))

	out, err := execute(t, "--price", "300000", "--rent", "2000", "--assumptions", path, "--json")
	require.NoError(t, err)

	var got roiOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1000, got.Result.MonthlyMortgage, 0.005)
}

func TestRoot_BadAssumptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loan_term_years: 0\n"), 0o600))

	_, err := execute(t, "--price", "300000", "--rent", "2000", "--assumptions", path)
	require.Error(t, err)
}

func TestSweep(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "sweep", "--price", "300000", "--rent", "2000", "--down-list", "10,20,100")
		require.NoError(t, err)

		assert.Contains(t, out, "GRADE")
		assert.Contains(t, out, "$30,000.00")
		assert.Contains(t, out, "$300,000.00")
	})

	t.Run("table keeps fractional percents", func(t *testing.T) {
		out, err := execute(t, "sweep", "--price", "300000", "--rent", "2000", "--down-list", "12.5,20")
		require.NoError(t, err)

		assert.Contains(t, out, "12.5%")
	})

	t.Run("json keeps order", func(t *testing.T) {
		out, err := execute(t, "sweep", "--price", "300000", "--rent", "2000", "--down-list", "25%,5", "--json")
		require.NoError(t, err)

		var got []scenarioOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 25.0, got[0].DownPaymentPercent)
		assert.Equal(t, 5.0, got[1].DownPaymentPercent)
	})

	t.Run("invalid percent", func(t *testing.T) {
		_, err := execute(t, "sweep", "--price", "300000", "--rent", "2000", "--down-list", "ten")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid down payment percent")
	})

	t.Run("invalid property", func(t *testing.T) {
		_, err := execute(t, "sweep", "--price", "0", "--rent", "2000")
		require.Error(t, err)
	})
}

func TestParsePercents(t *testing.T) {
	got, err := parsePercents([]string{" 5 ", "20%", "0"})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 20, 0}, got)
}
