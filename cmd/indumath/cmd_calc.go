package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/indumath/indumath/calc"
)

// liner is implemented by every calculator result.
type liner interface {
	Lines(precision int) []string
}

func newEOQCmd(a *app) *cobra.Command {
	var p calc.EOQParams
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "eoq",
		Short: "Economic order quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calc.EOQ(p)
			if err != nil {
				return err
			}
			return a.printCalc(cmd, res, asJSON)
		},
	}
	cmd.Flags().Float64VarP(&p.AnnualDemand, "demand", "d", 1000, "annual demand (D)")
	cmd.Flags().Float64VarP(&p.OrderingCost, "ordering-cost", "s", 50, "cost per order (S)")
	cmd.Flags().Float64VarP(&p.HoldingCost, "holding-cost", "H", 5, "holding cost per unit per year (H)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newMM1Cmd(a *app) *cobra.Command {
	var p calc.MM1Params
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "mm1",
		Short: "M/M/1 queue steady-state measures",
		Long: `Steady-state measures of a single-server queue with Poisson arrivals
and exponential service. Both rates must use the same time unit; the
times reported are in that unit. The arrival rate must be below the
service rate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calc.MM1(p)
			if err != nil {
				return err
			}
			return a.printCalc(cmd, res, asJSON)
		},
	}
	cmd.Flags().Float64VarP(&p.ArrivalRate, "arrival-rate", "l", 2, "arrival rate λ")
	cmd.Flags().Float64VarP(&p.ServiceRate, "service-rate", "m", 3, "service rate μ")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func newBreakEvenCmd(a *app) *cobra.Command {
	var p calc.BreakEvenParams
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Break-even volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calc.BreakEven(p)
			if err != nil {
				return err
			}
			return a.printCalc(cmd, res, asJSON)
		},
	}
	cmd.Flags().Float64Var(&p.FixedCost, "fixed-cost", 10000, "fixed cost (FC)")
	cmd.Flags().Float64Var(&p.VariableCost, "variable-cost", 20, "variable cost per unit (VC)")
	cmd.Flags().Float64VarP(&p.Price, "price", "p", 50, "price per unit (P)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func (a *app) printCalc(cmd *cobra.Command, res liner, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err := fmt.Fprintln(out, strings.Join(res.Lines(a.cfg.Display.Precision), "\n"))
	return err
}
