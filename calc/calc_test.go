package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestEOQ(t *testing.T) {
	res, err := EOQ(EOQParams{AnnualDemand: 1000, OrderingCost: 50, HoldingCost: 5})
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(20000), res.Quantity, tol)
	assert.InDelta(t, 1000/math.Sqrt(20000), res.OrdersPerYear, tol)
	assert.InDelta(t, math.Sqrt(500000), res.AnnualCost, tol)
	// At the optimum ordering cost equals holding cost.
	assert.InDelta(t, res.OrdersPerYear*50, res.Quantity/2*5, 1e-6)
}

func TestEOQZeroOrderingCost(t *testing.T) {
	res, err := EOQ(EOQParams{AnnualDemand: 10, OrderingCost: 0, HoldingCost: 1})
	require.NoError(t, err)
	assert.Zero(t, res.Quantity)
	assert.Zero(t, res.OrdersPerYear)
	assert.Zero(t, res.AnnualCost)
}

func TestEOQInvalid(t *testing.T) {
	tests := []struct {
		name   string
		params EOQParams
		field  string
	}{
		{"zero demand", EOQParams{AnnualDemand: 0, OrderingCost: 1, HoldingCost: 1}, "annual_demand"},
		{"negative ordering cost", EOQParams{AnnualDemand: 1, OrderingCost: -1, HoldingCost: 1}, "ordering_cost"},
		{"zero holding cost", EOQParams{AnnualDemand: 1, OrderingCost: 1, HoldingCost: 0}, "holding_cost"},
		{"NaN demand", EOQParams{AnnualDemand: math.NaN(), OrderingCost: 1, HoldingCost: 1}, "annual_demand"},
		{"infinite demand", EOQParams{AnnualDemand: math.Inf(1), OrderingCost: 1, HoldingCost: 1}, "annual_demand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EOQ(tt.params)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestMM1(t *testing.T) {
	res, err := MM1(MM1Params{ArrivalRate: 2, ServiceRate: 3})
	require.NoError(t, err)

	assert.InDelta(t, 2.0/3.0, res.Utilization, tol)
	assert.InDelta(t, 2.0, res.InSystem, tol)
	assert.InDelta(t, 4.0/3.0, res.InQueue, tol)
	assert.InDelta(t, 1.0, res.TimeInSystem, tol)
	assert.InDelta(t, 2.0/3.0, res.TimeInQueue, tol)
	assert.InDelta(t, 1.0/3.0, res.IdleFraction, tol)

	// Little's law holds for both the system and the queue.
	assert.InDelta(t, res.InSystem, 2*res.TimeInSystem, tol)
	assert.InDelta(t, res.InQueue, 2*res.TimeInQueue, tol)
}

func TestMM1NoArrivals(t *testing.T) {
	res, err := MM1(MM1Params{ArrivalRate: 0, ServiceRate: 4})
	require.NoError(t, err)
	assert.Zero(t, res.InSystem)
	assert.InDelta(t, 0.25, res.TimeInSystem, tol)
}

func TestMM1Unstable(t *testing.T) {
	tests := []MM1Params{
		{ArrivalRate: 3, ServiceRate: 3},
		{ArrivalRate: 3.5, ServiceRate: 3},
		{ArrivalRate: 0, ServiceRate: 0},
		{ArrivalRate: 5, ServiceRate: -1},
	}
	for _, p := range tests {
		_, err := MM1(p)
		assert.ErrorIs(t, err, ErrUnstable, "%+v", p)
		assert.NotErrorIs(t, err, ErrInvalidInput, "%+v", p)
	}
}

func TestMM1Invalid(t *testing.T) {
	_, err := MM1(MM1Params{ArrivalRate: -1, ServiceRate: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MM1(MM1Params{ArrivalRate: -2, ServiceRate: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "service_rate must be greater than 0")

	_, err = MM1(MM1Params{ArrivalRate: math.Inf(1), ServiceRate: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "arrival_rate must be a finite number")
}

func TestBreakEven(t *testing.T) {
	res, err := BreakEven(BreakEvenParams{FixedCost: 10000, VariableCost: 20, Price: 50})
	require.NoError(t, err)

	assert.InDelta(t, 10000.0/30.0, res.Units, tol)
	assert.InDelta(t, 10000.0/30.0*50, res.Revenue, 1e-6)
	assert.InDelta(t, 30.0, res.Contribution, tol)
}

func TestBreakEvenRejectsLowPrice(t *testing.T) {
	for _, price := range []float64{20, 10} {
		_, err := BreakEven(BreakEvenParams{FixedCost: 100, VariableCost: 20, Price: price})
		assert.ErrorIs(t, err, ErrPriceNotAboveCost)
	}

	_, err := BreakEven(BreakEvenParams{FixedCost: -1, VariableCost: 1, Price: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "fixed_cost must be at least 0")
}

func TestResultLines(t *testing.T) {
	eoq, err := EOQ(EOQParams{AnnualDemand: 1000, OrderingCost: 50, HoldingCost: 5})
	require.NoError(t, err)
	assert.Equal(t, "EOQ (economic order quantity): 141.42 units", eoq.Lines(2)[0])

	q, err := MM1(MM1Params{ArrivalRate: 2, ServiceRate: 3})
	require.NoError(t, err)
	lines := q.Lines(2)
	require.Len(t, lines, 6)
	assert.Equal(t, "Utilization (ρ): 0.67", lines[0])
	assert.Equal(t, "Average number in system (L): 2.00", lines[1])
	assert.Equal(t, "Average time in queue (Wq): 0.67", lines[4])

	be, err := BreakEven(BreakEvenParams{FixedCost: 10000, VariableCost: 20, Price: 50})
	require.NoError(t, err)
	assert.Equal(t, "Break-even point: 333.33 units", be.Lines(2)[0])
	assert.Equal(t, "Break-even point: 333 units", be.Lines(0)[0])
}
