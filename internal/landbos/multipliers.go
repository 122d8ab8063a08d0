package landbos

// insuranceRate is the fraction of insured value charged for builder's
// risk, general liability, umbrella and, if required, a performance bond.
func insuranceRate(performanceBond bool) float64 {
	rate := buildersRiskRate + generalLiabilityRate + umbrellaRate
	if performanceBond {
		rate += performanceBondRate
	}
	return rate / 1000.0
}

// InsuranceMultiplierAndCost insures the turbines and foundations. tcc is in
// USD/kW and farmSize in MW, so the insured base is tcc*farmSize*1000 plus
// the foundation cost.
func InsuranceMultiplierAndCost(tcc, farmSize, foundationCost float64, performanceBond bool) MultCost {
	alpha := insuranceRate(performanceBond)
	base := tcc*farmSize*kWPerMW + foundationCost
	return MultCost{Alpha: alpha, Base: base, Cost: alpha * base}
}

// InsurancePartials holds ∂InsuranceMultiplierAndCost(...).Cost.
type InsurancePartials struct {
	TCC            float64 `json:"tcc"`
	FoundationCost float64 `json:"foundation_cost"`
	FarmSize       float64 `json:"farm_size"`
}

// InsuranceMultiplierAndCostDeriv differentiates the insurance cost. The
// rate does not depend on any differentiated input, so every partial is the
// rate times the partial of the base.
func InsuranceMultiplierAndCostDeriv(tcc, farmSize float64, performanceBond bool) InsurancePartials {
	alpha := insuranceRate(performanceBond)
	return InsurancePartials{
		TCC:            alpha * farmSize * kWPerMW,
		FoundationCost: alpha,
		FarmSize:       alpha * tcc * kWPerMW,
	}
}

func markupRate(contingency, warranty, useTax, overhead, profitMargin float64) float64 {
	return (contingency + warranty + useTax + overhead + profitMargin) / 100.0
}

// MarkupMultiplierAndCost applies contingency, warranty, use tax, overhead
// and profit (all percentages) to the transportation cost.
func MarkupMultiplierAndCost(transportationCost, contingency, warranty, useTax, overhead,
	profitMargin float64) MultCost {
	alpha := markupRate(contingency, warranty, useTax, overhead, profitMargin)
	return MultCost{Alpha: alpha, Base: transportationCost, Cost: alpha * transportationCost}
}

// MarkupPartials holds ∂MarkupMultiplierAndCost(...).Cost.
type MarkupPartials struct {
	TransportationCost float64 `json:"transportation_cost"`
}

// MarkupMultiplierAndCostDeriv differentiates the markup cost with respect
// to its base. The rates are inputs, not design variables.
func MarkupMultiplierAndCostDeriv(contingency, warranty, useTax, overhead, profitMargin float64) MarkupPartials {
	return MarkupPartials{
		TransportationCost: markupRate(contingency, warranty, useTax, overhead, profitMargin),
	}
}
