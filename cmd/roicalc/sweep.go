package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"propcalc/internal/calculator"
	"propcalc/internal/format"
)

type scenarioOutput struct {
	DownPaymentPercent float64           `json:"down_payment_percent"`
	Result             calculator.Result `json:"result"`
	Display            format.Summary    `json:"display"`
}

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var downList []string

	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Compare several down payment percents for one property",
		Example: `  roicalc sweep --price 300000 --rent 2000 --down-list 5,10,20,25`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			percents, err := parsePercents(downList)
			if err != nil {
				return err
			}
			return runSweep(cmd, opts, percents)
		},
	}

	cmd.Flags().StringSliceVar(&downList, "down-list", []string{"10", "20", "25"}, "comma-separated down payment percents")
	return cmd
}

func parsePercents(raw []string) ([]float64, error) {
	percents := make([]float64, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid down payment percent %q", s)
		}
		percents = append(percents, p)
	}
	return percents, nil
}

func runSweep(cmd *cobra.Command, opts *rootOptions, percents []float64) error {
	svc, err := newService(opts)
	if err != nil {
		return err
	}

	// Price and rent are parsed the same way as the root command.
	input := calculator.ParseForm(opts.price, "", opts.rent)
	scenarios, err := svc.Sweep(input, percents)
	if err != nil {
		return err
	}

	outs := make([]scenarioOutput, 0, len(scenarios))
	for _, s := range scenarios {
		outs = append(outs, scenarioOutput{
			DownPaymentPercent: s.DownPaymentPercent,
			Result:             s.Result,
			Display:            format.Summarize(s.Result, opts.currency),
		})
	}

	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), outs)
	}
	writeSweepTable(cmd.OutOrStdout(), outs)
	return nil
}

func writeSweepTable(w io.Writer, outs []scenarioOutput) {
	fmt.Fprintf(w, "%-6s %-14s %-12s %-14s %-9s %-9s %s\n",
		"DOWN", "DOWN PAYMENT", "MORTGAGE", "CASH FLOW/MO", "COC", "CAP", "GRADE")
	for _, o := range outs {
		d := o.Display
		fmt.Fprintf(w, "%-6s %-14s %-12s %-14s %-9s %-9s %s\n",
			format.InputPercent(o.DownPaymentPercent), d.DownPayment, d.MonthlyMortgage,
			d.MonthlyCashFlow, d.CashOnCashReturnPercent, d.CapRatePercent, d.Grade)
	}
}
