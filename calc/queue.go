package calc

// MM1Params are the inputs of a single-server queue with Poisson arrivals
// and exponential service times. Both rates use the same time unit.
type MM1Params struct {
	ArrivalRate float64 `json:"arrival_rate" validate:"finite,gte=0"`
	ServiceRate float64 `json:"service_rate" validate:"finite,gt=0"`
}

// MM1Result holds the steady-state measures of an M/M/1 queue. Times are in
// the unit of the rates.
type MM1Result struct {
	Utilization  float64 `json:"utilization"`    // ρ = λ/μ
	InSystem     float64 `json:"in_system"`      // L  = ρ/(1-ρ)
	InQueue      float64 `json:"in_queue"`       // Lq = ρ²/(1-ρ)
	TimeInSystem float64 `json:"time_in_system"` // W  = 1/(μ-λ)
	TimeInQueue  float64 `json:"time_in_queue"`  // Wq = λ/(μ(μ-λ))
	IdleFraction float64 `json:"idle_fraction"`  // P0 = 1-ρ
}

// MM1 computes the steady-state measures. It returns ErrUnstable when
// λ ≥ μ, where no steady state exists. That test comes before the range
// checks, so λ = μ = 0 is unstable rather than invalid.
func MM1(p MM1Params) (MM1Result, error) {
	lam, mu := p.ArrivalRate, p.ServiceRate
	if finite(lam) && finite(mu) && lam >= mu {
		return MM1Result{}, ErrUnstable
	}
	if err := check(p); err != nil {
		return MM1Result{}, err
	}

	rho := lam / mu
	return MM1Result{
		Utilization:  rho,
		InSystem:     rho / (1 - rho),
		InQueue:      rho * rho / (1 - rho),
		TimeInSystem: 1 / (mu - lam),
		TimeInQueue:  lam / (mu * (mu - lam)),
		IdleFraction: 1 - rho,
	}, nil
}
