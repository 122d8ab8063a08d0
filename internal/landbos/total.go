package landbos

import "math"

// Breakdown itemizes the installed cost by bucket. All values are USD.
type Breakdown struct {
	Parameters Parameters `json:"parameters"`

	Transportation         float64  `json:"transportation"`
	Engineering            float64  `json:"engineering"`
	PowerPerformance       float64  `json:"power_performance"`
	AccessRoads            float64  `json:"access_roads"`
	SiteCompound           float64  `json:"site_compound"`
	Building               float64  `json:"building"`
	Foundation             float64  `json:"foundation"`
	Erection               float64  `json:"erection"`
	ElectricalMaterials    float64  `json:"electrical_materials"`
	ElectricalInstallation float64  `json:"electrical_installation"`
	Substation             float64  `json:"substation"`
	Transmission           float64  `json:"transmission"`
	ProjectMgmt            float64  `json:"project_mgmt"`
	Development            float64  `json:"development"`
	Insurance              MultCost `json:"insurance"`
	Markup                 MultCost `json:"markup"`

	// TurbineCapital is the turbine purchase price carried inside
	// Transportation.
	TurbineCapital float64 `json:"turbine_capital"`
	Total          float64 `json:"total"`

	// BOS is Total less TurbineCapital, scaled by BOSMultiplier.
	BOS           float64 `json:"bos"`
	BOSMultiplier float64 `json:"bos_multiplier"`
}

// Sum adds every bucket and both multiplier costs.
func (b Breakdown) Sum() float64 {
	return b.Transportation + b.Engineering + b.PowerPerformance + b.AccessRoads +
		b.SiteCompound + b.Building + b.Foundation + b.Erection +
		b.ElectricalMaterials + b.ElectricalInstallation + b.Substation +
		b.Transmission + b.ProjectMgmt + b.Development +
		b.Insurance.Cost + b.Markup.Cost
}

// Estimate validates in, resolves the parameter defaults and evaluates
// every cost bucket.
func Estimate(in Inputs) (Breakdown, error) {
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}

	t, f, p := in.Turbine, in.Farm, in.Project
	params := Resolve(in)
	fs := params.FarmSize

	b := Breakdown{Parameters: params}
	b.Transportation = TransportationCost(t.CapitalCost, t.Rating, f.Turbines, t.HubHeight, p.TransportDistance)
	b.Engineering = EngineeringCost(f.Turbines, fs)
	b.PowerPerformance = PowerPerformanceCost(t.HubHeight, params.PermanentMetTowers, params.TempMetTowers)
	b.AccessRoads = AccessRoadsCost(f.Terrain, f.Layout, f.Turbines, t.Diameter, params.ConstructionTime, params.AccessRoadEntrances)
	b.SiteCompound = SiteCompoundCost(params.AccessRoadEntrances, params.ConstructionTime, fs)
	b.Building = BuildingCost(params.BuildingSize)
	b.Foundation = FoundationCost(t.Rating, t.Diameter, t.TopMass, t.HubHeight, f.Soil, f.Turbines)
	b.Erection = ErectionCost(t.Rating, t.HubHeight, f.Turbines, params.WeatherDelayDays, params.CraneBreakdowns, p.DeliveryAssistRequired)
	b.ElectricalMaterials = ElectricalMaterialsCost(f.Terrain, f.Layout, fs, t.Diameter, f.Turbines, p.PadMountTransformer, p.ThermalBackfill)
	b.ElectricalInstallation = ElectricalInstallationCost(f.Terrain, f.Layout, fs, t.Diameter, f.Turbines, p.RockTrenchingLength, p.OverheadCollector)
	b.Substation = SubstationCost(p.Voltage, fs)
	b.Transmission = TransmissionCost(p.Voltage, p.InterconnectDistance, p.NewSwitchyardRequired)
	b.ProjectMgmt = ProjectMgmtCost(params.ConstructionTime)
	b.Development = DevelopmentCost(p.DevelopmentFee)
	b.Insurance = InsuranceMultiplierAndCost(t.CapitalCost, fs, b.Foundation, p.PerformanceBond)
	b.Markup = MarkupMultiplierAndCost(b.Transportation, p.Contingency, p.Warranty, p.UseTax, p.Overhead, p.ProfitMargin)

	b.TurbineCapital = t.CapitalCost * fs * kWPerMW
	b.Total = b.Sum()
	b.BOSMultiplier = p.BOSScale()
	b.BOS = (b.Total - b.TurbineCapital) * b.BOSMultiplier
	if err := b.check(); err != nil {
		return Breakdown{}, err
	}
	return b, nil
}

// check rejects a breakdown with a negative or non-finite entry. Inputs
// inside the validated bounds can still reach one, e.g. a very short tower
// on a tiny turbine drives the erection cost below zero.
func (b Breakdown) check() error {
	entries := []struct {
		name  string
		value float64
	}{
		{"farm_size", b.Parameters.FarmSize},
		{"transportation", b.Transportation},
		{"engineering", b.Engineering},
		{"power_performance", b.PowerPerformance},
		{"access_roads", b.AccessRoads},
		{"site_compound", b.SiteCompound},
		{"building", b.Building},
		{"foundation", b.Foundation},
		{"erection", b.Erection},
		{"electrical_materials", b.ElectricalMaterials},
		{"electrical_installation", b.ElectricalInstallation},
		{"substation", b.Substation},
		{"transmission", b.Transmission},
		{"project_mgmt", b.ProjectMgmt},
		{"development", b.Development},
		{"insurance", b.Insurance.Cost},
		{"markup", b.Markup.Cost},
		{"total", b.Total},
		{"bos", b.BOS},
	}
	for _, e := range entries {
		switch {
		case math.IsNaN(e.value) || math.IsInf(e.value, 0):
			return invalidParam("breakdown."+e.name, e.value, "inputs drive the cost out of the finite range")
		case e.value < 0:
			return invalidParam("breakdown."+e.name, e.value, "inputs drive the cost below zero")
		}
	}
	return nil
}

// TotalCost returns the installed cost of the farm described by in.
func TotalCost(in Inputs) (float64, error) {
	b, err := Estimate(in)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}
