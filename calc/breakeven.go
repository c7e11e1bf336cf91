package calc

// BreakEvenParams are the inputs of the break-even model.
type BreakEvenParams struct {
	FixedCost    float64 `json:"fixed_cost" validate:"finite,gte=0"`
	VariableCost float64 `json:"variable_cost" validate:"finite"`
	Price        float64 `json:"price" validate:"finite"`
}

// BreakEvenResult is the volume at which revenue covers total cost.
type BreakEvenResult struct {
	Units        float64 `json:"units"`        // FC/(P-VC)
	Revenue      float64 `json:"revenue"`      // Units·P
	Contribution float64 `json:"contribution"` // P-VC per unit
}

// BreakEven computes the break-even volume. It returns ErrPriceNotAboveCost
// when P ≤ VC, since no volume then recovers the fixed cost.
func BreakEven(p BreakEvenParams) (BreakEvenResult, error) {
	if err := check(p); err != nil {
		return BreakEvenResult{}, err
	}
	if p.Price <= p.VariableCost {
		return BreakEvenResult{}, ErrPriceNotAboveCost
	}

	margin := p.Price - p.VariableCost
	units := p.FixedCost / margin
	return BreakEvenResult{
		Units:        units,
		Revenue:      units * p.Price,
		Contribution: margin,
	}, nil
}
