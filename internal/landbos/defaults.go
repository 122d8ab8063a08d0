package landbos

import "math"

// FarmSize returns the plant capacity in MW.
func FarmSize(rating float64, nTurb int) float64 {
	return rating * float64(nTurb)
}

// roundCount rounds x to the nearest int, saturating at math.MaxInt so the
// estimators stay non-decreasing for any turbine count.
func roundCount(x float64) int {
	r := math.Round(x)
	if r >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(r)
}

// DefaultConstructionTime estimates the construction duration in months.
func DefaultConstructionTime(nTurb int) int {
	n := float64(nTurb)
	return roundCount(0.0001*n*n + 0.0963*n + 2.7432)
}

// DefaultAccessRoadEntrances estimates the number of site entrances, at least one.
func DefaultAccessRoadEntrances(nTurb int) int {
	return max(1, roundCount(float64(nTurb)/20.0))
}

// DefaultBuildingSize estimates the O&M building floor area in ft².
func DefaultBuildingSize(farmSize float64) float64 {
	switch {
	case farmSize < 200:
		return 3000
	case farmSize < 500:
		return 5000
	case farmSize < 800:
		return 7000
	case farmSize < 1000:
		return 9000
	default:
		return 12000
	}
}

// DefaultTempMetTowers estimates the temporary met towers needed for power
// performance testing. The count is returned as a float so it can feed the
// cost formulas directly.
func DefaultTempMetTowers(farmSize float64) float64 {
	return math.Round(farmSize / 75.0)
}

// DefaultPermanentMetTowers estimates the permanent met towers.
func DefaultPermanentMetTowers(farmSize float64) float64 {
	switch {
	case farmSize < 100:
		return 1
	case farmSize < 200:
		return 2
	default:
		return math.Round(farmSize / 100.0)
	}
}

// DefaultWeatherDelayDays estimates wind/weather delay days during erection.
func DefaultWeatherDelayDays(nTurb int) int {
	return roundCount(float64(nTurb) / 5.0)
}

// DefaultCraneBreakdowns estimates crane breakdowns during erection.
func DefaultCraneBreakdowns(nTurb int) int {
	return roundCount(float64(nTurb) / 20.0)
}

// Parameters are the secondary scalars consumed by the cost functions,
// either estimated from farm size and turbine count or taken from Overrides.
type Parameters struct {
	FarmSize            float64 `json:"farm_size"`
	ConstructionTime    int     `json:"construction_time"`
	AccessRoadEntrances int     `json:"access_road_entrances"`
	WeatherDelayDays    int     `json:"weather_delay_days"`
	CraneBreakdowns     int     `json:"crane_breakdowns"`
	BuildingSize        float64 `json:"building_size"`
	PermanentMetTowers  float64 `json:"permanent_met_towers"`
	TempMetTowers       float64 `json:"temp_met_towers"`
}

// Defaults estimates every secondary parameter for a farm of nTurb machines
// of the given rating. nTurb must be at least 1.
func Defaults(rating float64, nTurb int) Parameters {
	fs := FarmSize(rating, nTurb)
	return Parameters{
		FarmSize:            fs,
		ConstructionTime:    DefaultConstructionTime(nTurb),
		AccessRoadEntrances: DefaultAccessRoadEntrances(nTurb),
		WeatherDelayDays:    DefaultWeatherDelayDays(nTurb),
		CraneBreakdowns:     DefaultCraneBreakdowns(nTurb),
		BuildingSize:        DefaultBuildingSize(fs),
		PermanentMetTowers:  DefaultPermanentMetTowers(fs),
		TempMetTowers:       DefaultTempMetTowers(fs),
	}
}

// Resolve returns the defaults for in with every non-nil override applied.
func Resolve(in Inputs) Parameters {
	p := Defaults(in.Turbine.Rating, in.Farm.Turbines)
	o := in.Overrides
	if o.ConstructionTime != nil {
		p.ConstructionTime = *o.ConstructionTime
	}
	if o.AccessRoadEntrances != nil {
		p.AccessRoadEntrances = *o.AccessRoadEntrances
	}
	if o.WeatherDelayDays != nil {
		p.WeatherDelayDays = *o.WeatherDelayDays
	}
	if o.CraneBreakdowns != nil {
		p.CraneBreakdowns = *o.CraneBreakdowns
	}
	if o.BuildingSize != nil {
		p.BuildingSize = *o.BuildingSize
	}
	if o.PermanentMetTowers != nil {
		p.PermanentMetTowers = *o.PermanentMetTowers
	}
	if o.TempMetTowers != nil {
		p.TempMetTowers = *o.TempMetTowers
	}
	return p
}
