package landbos

// Each *Deriv function evaluates the analytic partial derivatives of its
// cost function at the given primal inputs. Functions taking a terrain,
// layout or soil differentiate the branch that category selects, so the
// category must match the one used for the paired cost call.

// TransportationPartials holds ∂TransportationCost.
type TransportationPartials struct {
	TCC       float64 `json:"tcc"`
	HubHeight float64 `json:"hub_height"`
}

// TransportationCostDeriv differentiates TransportationCost. Freight is a
// step in hub height, so its hub-height partial is zero off the step.
func TransportationCostDeriv(rating float64, nTurb int) TransportationPartials {
	return TransportationPartials{
		TCC:       rating * kWPerMW * float64(nTurb),
		HubHeight: 0,
	}
}

// PowerPerformancePartials holds ∂PowerPerformanceCost.
type PowerPerformancePartials struct {
	HubHeight float64 `json:"hub_height"`
}

// PowerPerformanceCostDeriv differentiates PowerPerformanceCost. Tower
// prices step at 90 m hub height; the partial is zero on either side.
func PowerPerformanceCostDeriv(hubHt, permanent, temporary float64) PowerPerformancePartials {
	return PowerPerformancePartials{HubHeight: 0}
}

// AccessRoadsPartials holds ∂AccessRoadsCost.
type AccessRoadsPartials struct {
	Diameter float64 `json:"diameter"`
}

// AccessRoadsCostDeriv differentiates AccessRoadsCost on the road branch
// selected by terrain and layout.
func AccessRoadsCostDeriv(terrain Terrain, layout Layout, nTurb int) AccessRoadsPartials {
	f := accessRoadFactors(terrain, layout)
	return AccessRoadsPartials{
		Diameter: float64(nTurb) * f.perMeter * roadsContingency,
	}
}

// FoundationPartials holds ∂FoundationCost. TopMass is per tonne.
type FoundationPartials struct {
	Diameter  float64 `json:"diameter"`
	TopMass   float64 `json:"top_mass"`
	HubHeight float64 `json:"hub_height"`
}

// FoundationCostDeriv differentiates FoundationCost. The soil surcharge is
// constant per turbine and drops out.
func FoundationCostDeriv(rating, diameter, topMass float64, nTurb int) FoundationPartials {
	n := float64(nTurb)
	return FoundationPartials{
		Diameter:  rating * topMass * n,
		TopMass:   rating * diameter * n,
		HubHeight: foundationPerMeter * n,
	}
}

// ErectionPartials holds ∂ErectionCost.
type ErectionPartials struct {
	HubHeight float64 `json:"hub_height"`
}

// ErectionCostDeriv differentiates ErectionCost. Only the tower-height term
// varies with the design.
func ErectionCostDeriv(nTurb int) ErectionPartials {
	return ErectionPartials{HubHeight: erectionPerMeter * float64(nTurb)}
}

// ElectricalMaterialsPartials holds ∂ElectricalMaterialsCost.
type ElectricalMaterialsPartials struct {
	Diameter float64 `json:"diameter"`
}

// ElectricalMaterialsCostDeriv differentiates the collector cable term of
// ElectricalMaterialsCost; the farm-size steps are flat in diameter.
func ElectricalMaterialsCostDeriv(terrain Terrain, layout Layout, nTurb int) ElectricalMaterialsPartials {
	f := electricalMaterialsFactors(terrain, layout)
	return ElectricalMaterialsPartials{Diameter: float64(nTurb) * f.cable}
}

// ElectricalInstallationPartials holds ∂ElectricalInstallationCost.
type ElectricalInstallationPartials struct {
	Diameter float64 `json:"diameter"`
}

// ElectricalInstallationCostDeriv differentiates ElectricalInstallationCost
// for the given share of rock trenching.
func ElectricalInstallationCostDeriv(terrain Terrain, layout Layout, nTurb int,
	rockTrenchingLength float64) ElectricalInstallationPartials {
	f := electricalInstallationFactors(terrain, layout)
	return ElectricalInstallationPartials{
		Diameter: float64(nTurb) * (f.trench + f.rock*rockTrenchingLength/100.0),
	}
}
