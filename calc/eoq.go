package calc

import "math"

// EOQParams are the inputs of the economic order quantity model.
type EOQParams struct {
	AnnualDemand float64 `json:"annual_demand" validate:"finite,gt=0"`
	OrderingCost float64 `json:"ordering_cost" validate:"finite,gte=0"`
	HoldingCost  float64 `json:"holding_cost" validate:"finite,gt=0"`
}

// EOQResult is the optimal order policy.
type EOQResult struct {
	// Quantity is sqrt(2·D·S/H), the order size minimizing ordering plus
	// holding cost.
	Quantity float64 `json:"quantity"`
	// OrdersPerYear is D/Quantity; zero when Quantity is zero.
	OrdersPerYear float64 `json:"orders_per_year"`
	// AnnualCost is the ordering plus holding cost at Quantity, sqrt(2·D·S·H).
	AnnualCost float64 `json:"annual_cost"`
}

// EOQ computes the economic order quantity.
func EOQ(p EOQParams) (EOQResult, error) {
	if err := check(p); err != nil {
		return EOQResult{}, err
	}
	d, s, h := p.AnnualDemand, p.OrderingCost, p.HoldingCost

	q := math.Sqrt(2 * d * s / h)
	res := EOQResult{
		Quantity:   q,
		AnnualCost: math.Sqrt(2 * d * s * h),
	}
	if q > 0 {
		res.OrdersPerYear = d / q
	}
	return res, nil
}
