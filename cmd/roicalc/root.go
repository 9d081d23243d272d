package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"propcalc/internal/calculator"
	"propcalc/internal/config"
	"propcalc/internal/format"
	"propcalc/internal/services"
)

type rootOptions struct {
	price           string
	down            string
	rent            string
	currency        string
	assumptionsFile string
	asJSON          bool
}

type roiOutput struct {
	Input   calculator.Input  `json:"input"`
	Result  calculator.Result `json:"result"`
	Display format.Summary    `json:"display"`
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "roicalc",
		Short: "Rental property ROI calculator",
		Long: `Evaluates a rental property purchase: mortgage payment, cash flow,
cash-on-cash return, cap rate, the 1% rule and an investment grade.

Values are read permissively: "$300,000", "300_000" and "20%" are accepted.
A missing down payment defaults to 20%.`,
		Example:      `  roicalc --price 300000 --rent 2000 --down 20`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runROI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.price, "price", "", "property purchase price")
	flags.StringVar(&opts.rent, "rent", "", "expected monthly rent")
	flags.StringVar(&opts.currency, "currency", format.DefaultCurrency, "ISO 4217 display currency")
	flags.StringVar(&opts.assumptionsFile, "assumptions", "", "YAML file overriding interest rate, loan term and expense rate")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&opts.down, "down", "", "down payment percent (default 20)")

	cmd.AddCommand(newSweepCmd(opts))
	return cmd
}

func newService(opts *rootOptions) (services.CalculatorServicer, error) {
	assumptions := calculator.DefaultAssumptions()
	if opts.assumptionsFile != "" {
		a, err := config.LoadAssumptions(opts.assumptionsFile)
		if err != nil {
			return nil, err
		}
		assumptions = a
	}
	return services.NewCalculatorService(assumptions), nil
}

func runROI(cmd *cobra.Command, opts *rootOptions) error {
	svc, err := newService(opts)
	if err != nil {
		return err
	}

	input := calculator.ParseForm(opts.price, opts.down, opts.rent)
	result, err := svc.Calculate(input)
	if err != nil {
		return err
	}

	out := roiOutput{Input: input, Result: *result, Display: format.Summarize(*result, opts.currency)}
	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	writeSummary(cmd.OutOrStdout(), out)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(w io.Writer, out roiOutput) {
	d := out.Display
	rows := [][2]string{
		{"Property price", format.Currency(out.Input.PropertyPrice, d.Currency)},
		{"Down payment (" + format.InputPercent(out.Input.DownPaymentPercent) + ")", d.DownPayment},
		{"Loan amount", d.LoanAmount},
		{"Monthly mortgage", d.MonthlyMortgage},
		{"Monthly expenses", d.MonthlyExpenses},
		{"Monthly rent", format.Currency(out.Input.MonthlyRent, d.Currency)},
		{"Monthly cash flow", d.MonthlyCashFlow},
		{"Annual cash flow", d.AnnualCashFlow},
		{"Cash-on-cash return", d.CashOnCashReturnPercent},
		{"Cap rate", d.CapRatePercent},
		{"1% rule", d.OnePercentRulePercent},
		{"Grade", d.Grade},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-22s %s\n", row[0], row[1])
	}
}
