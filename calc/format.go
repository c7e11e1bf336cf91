package calc

import "fmt"

// Lines renders the result one measure per line.
func (r EOQResult) Lines(precision int) []string {
	return []string{
		fmt.Sprintf("EOQ (economic order quantity): %.*f units", precision, r.Quantity),
		fmt.Sprintf("Orders per year: %.*f", precision, r.OrdersPerYear),
		fmt.Sprintf("Annual ordering + holding cost: %.*f", precision, r.AnnualCost),
	}
}

// Lines renders the result one measure per line. Times carry the unit of
// the rates, so no unit is printed.
func (r MM1Result) Lines(precision int) []string {
	return []string{
		fmt.Sprintf("Utilization (ρ): %.*f", precision, r.Utilization),
		fmt.Sprintf("Average number in system (L): %.*f", precision, r.InSystem),
		fmt.Sprintf("Average number in queue (Lq): %.*f", precision, r.InQueue),
		fmt.Sprintf("Average time in system (W): %.*f", precision, r.TimeInSystem),
		fmt.Sprintf("Average time in queue (Wq): %.*f", precision, r.TimeInQueue),
		fmt.Sprintf("Idle fraction (P0): %.*f", precision, r.IdleFraction),
	}
}

// Lines renders the result one measure per line.
func (r BreakEvenResult) Lines(precision int) []string {
	return []string{
		fmt.Sprintf("Break-even point: %.*f units", precision, r.Units),
		fmt.Sprintf("Break-even revenue: %.*f", precision, r.Revenue),
		fmt.Sprintf("Contribution margin per unit: %.*f", precision, r.Contribution),
	}
}
