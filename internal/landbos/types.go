// Package landbos estimates the balance-of-station capital cost of a land-based
// wind farm and the analytic partial derivatives of each cost bucket.
package landbos

import "fmt"

// Terrain selects the site-terrain branch of the road and electrical formulas.
type Terrain int

const (
	FlatToRolling Terrain = iota
	RidgeTop
	Mountainous
)

var terrainNames = map[Terrain]string{
	FlatToRolling: "flat_to_rolling",
	RidgeTop:      "ridge_top",
	Mountainous:   "mountainous",
}

func (t Terrain) String() string {
	if s, ok := terrainNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Terrain(%d)", int(t))
}

// Valid reports whether t is one of the enumerated terrains.
func (t Terrain) Valid() bool {
	_, ok := terrainNames[t]
	return ok
}

func (t Terrain) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, invalidParam("farm.terrain", int(t), "unknown terrain")
	}
	return []byte(t.String()), nil
}

func (t *Terrain) UnmarshalText(b []byte) error {
	for k, v := range terrainNames {
		if v == string(b) {
			*t = k
			return nil
		}
	}
	return invalidParam("farm.terrain", string(b), "must be one of flat_to_rolling, ridge_top, mountainous")
}

// Layout selects the turbine-layout branch of the road and electrical formulas.
type Layout int

const (
	Simple Layout = iota
	Complex
)

var layoutNames = map[Layout]string{
	Simple:  "simple",
	Complex: "complex",
}

func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Valid reports whether l is one of the enumerated layouts.
func (l Layout) Valid() bool {
	_, ok := layoutNames[l]
	return ok
}

func (l Layout) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, invalidParam("farm.layout", int(l), "unknown layout")
	}
	return []byte(l.String()), nil
}

func (l *Layout) UnmarshalText(b []byte) error {
	for k, v := range layoutNames {
		if v == string(b) {
			*l = k
			return nil
		}
	}
	return invalidParam("farm.layout", string(b), "must be one of simple, complex")
}

// Soil selects the foundation design.
type Soil int

const (
	Standard Soil = iota
	Buoyant
)

var soilNames = map[Soil]string{
	Standard: "standard",
	Buoyant:  "buoyant",
}

func (s Soil) String() string {
	if n, ok := soilNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Soil(%d)", int(s))
}

// Valid reports whether s is one of the enumerated soil conditions.
func (s Soil) Valid() bool {
	_, ok := soilNames[s]
	return ok
}

func (s Soil) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, invalidParam("farm.soil", int(s), "unknown soil condition")
	}
	return []byte(s.String()), nil
}

func (s *Soil) UnmarshalText(b []byte) error {
	for k, v := range soilNames {
		if v == string(b) {
			*s = k
			return nil
		}
	}
	return invalidParam("farm.soil", string(b), "must be one of standard, buoyant")
}

// Input bounds. Values outside them are rejected by Validate; they keep
// every intermediate of the model finite.
const (
	MaxRating   = 50.0 // MW
	MaxTurbines = 100000
)

// Turbine describes a single machine.
type Turbine struct {
	Rating      float64 `json:"rating" yaml:"rating" validate:"finite,gt=0,lte=50"`                  // MW
	Diameter    float64 `json:"diameter" yaml:"diameter" validate:"finite,gt=0,lte=500"`             // m
	HubHeight   float64 `json:"hub_height" yaml:"hub_height" validate:"finite,gt=0,lte=500"`         // m
	TopMass     float64 `json:"top_mass" yaml:"top_mass" validate:"finite,gt=0,lte=5000"`            // tonnes
	CapitalCost float64 `json:"capital_cost" yaml:"capital_cost" validate:"finite,gte=0,lte=100000"` // USD/kW
}

// Farm describes the plant and its site.
type Farm struct {
	Turbines int     `json:"turbines" yaml:"turbines" validate:"min=1,max=100000"`
	Terrain  Terrain `json:"terrain" yaml:"terrain"`
	Layout   Layout  `json:"layout" yaml:"layout"`
	Soil     Soil    `json:"soil" yaml:"soil"`
}

// Project holds the project-specific parameters. Rates are percentages.
type Project struct {
	TransportDistance      float64 `json:"transport_distance" yaml:"transport_distance" validate:"finite,gte=0,lte=10000"`      // mi
	Voltage                float64 `json:"voltage" yaml:"voltage" validate:"finite,gte=0,lte=1500"`                             // kV
	InterconnectDistance   float64 `json:"interconnect_distance" yaml:"interconnect_distance" validate:"finite,gte=0,lte=1000"` // mi
	DeliveryAssistRequired bool    `json:"delivery_assist_required" yaml:"delivery_assist_required"`
	PadMountTransformer    bool    `json:"pad_mount_transformer" yaml:"pad_mount_transformer"`
	NewSwitchyardRequired  bool    `json:"new_switchyard_required" yaml:"new_switchyard_required"`
	PerformanceBond        bool    `json:"performance_bond" yaml:"performance_bond"`
	RockTrenchingLength    float64 `json:"rock_trenching_length" yaml:"rock_trenching_length" validate:"finite,gte=0,lte=100"` // % of collector length
	ThermalBackfill        float64 `json:"thermal_backfill" yaml:"thermal_backfill" validate:"finite,gte=0,lte=10000"`         // mi
	OverheadCollector      float64 `json:"overhead_collector" yaml:"overhead_collector" validate:"finite,gte=0,lte=10000"`     // mi
	Contingency            float64 `json:"contingency" yaml:"contingency" validate:"finite,gte=0,lte=100"`
	Warranty               float64 `json:"warranty" yaml:"warranty" validate:"finite,gte=0,lte=100"`
	UseTax                 float64 `json:"use_tax" yaml:"use_tax" validate:"finite,gte=0,lte=100"`
	Overhead               float64 `json:"overhead" yaml:"overhead" validate:"finite,gte=0,lte=100"`
	ProfitMargin           float64 `json:"profit_margin" yaml:"profit_margin" validate:"finite,gte=0,lte=100"`
	DevelopmentFee         float64 `json:"development_fee" yaml:"development_fee" validate:"finite,gte=0,lte=100000"` // M USD

	// BOSMultiplier scales the reported BOS cost. Nil means 1.
	BOSMultiplier *float64 `json:"bos_multiplier,omitempty" yaml:"bos_multiplier" validate:"omitempty,finite,gt=0,lte=10"`
}

// BOSScale returns the BOS multiplier, 1 when unset.
func (p Project) BOSScale() float64 {
	if p.BOSMultiplier == nil {
		return 1
	}
	return *p.BOSMultiplier
}

// DefaultProject returns the baseline project assumptions.
func DefaultProject() Project {
	return Project{
		PadMountTransformer:   true,
		NewSwitchyardRequired: true,
		RockTrenchingLength:   10.0,
		Contingency:           3.0,
		Warranty:              0.02,
		UseTax:                0.0,
		Overhead:              5.0,
		ProfitMargin:          5.0,
		DevelopmentFee:        5.0,
	}
}

// Overrides replace the estimated parameter defaults. A nil field means
// the default estimator is used.
type Overrides struct {
	ConstructionTime    *int     `json:"construction_time,omitempty" yaml:"construction_time" validate:"omitempty,min=0,max=600"`
	AccessRoadEntrances *int     `json:"access_road_entrances,omitempty" yaml:"access_road_entrances" validate:"omitempty,min=0,max=1000"`
	WeatherDelayDays    *int     `json:"weather_delay_days,omitempty" yaml:"weather_delay_days" validate:"omitempty,min=0,max=10000"`
	CraneBreakdowns     *int     `json:"crane_breakdowns,omitempty" yaml:"crane_breakdowns" validate:"omitempty,min=0,max=10000"`
	BuildingSize        *float64 `json:"building_size,omitempty" yaml:"building_size" validate:"omitempty,finite,gte=0,lte=1000000"`
	PermanentMetTowers  *float64 `json:"permanent_met_towers,omitempty" yaml:"permanent_met_towers" validate:"omitempty,finite,gte=0,lte=10000"`
	TempMetTowers       *float64 `json:"temp_met_towers,omitempty" yaml:"temp_met_towers" validate:"omitempty,finite,gte=0,lte=10000"`
}

// Inputs is the complete parameter record for a total-cost evaluation.
type Inputs struct {
	Turbine   Turbine   `json:"turbine" yaml:"turbine"`
	Farm      Farm      `json:"farm" yaml:"farm"`
	Project   Project   `json:"project" yaml:"project"`
	Overrides Overrides `json:"overrides" yaml:"overrides"`
}

// MultCost is the result of a multiplier-cost function: Cost = Alpha * Base.
type MultCost struct {
	Alpha float64 `json:"alpha"`
	Base  float64 `json:"base"`
	Cost  float64 `json:"cost"`
}
