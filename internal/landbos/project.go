package landbos

// ProjectPatch is a partial Project as sent by a client. Nil fields keep the
// value of the project it is applied to.
type ProjectPatch struct {
	TransportDistance      *float64 `json:"transport_distance,omitempty" yaml:"transport_distance"`
	Voltage                *float64 `json:"voltage,omitempty" yaml:"voltage"`
	InterconnectDistance   *float64 `json:"interconnect_distance,omitempty" yaml:"interconnect_distance"`
	DeliveryAssistRequired *bool    `json:"delivery_assist_required,omitempty" yaml:"delivery_assist_required"`
	PadMountTransformer    *bool    `json:"pad_mount_transformer,omitempty" yaml:"pad_mount_transformer"`
	NewSwitchyardRequired  *bool    `json:"new_switchyard_required,omitempty" yaml:"new_switchyard_required"`
	PerformanceBond        *bool    `json:"performance_bond,omitempty" yaml:"performance_bond"`
	RockTrenchingLength    *float64 `json:"rock_trenching_length,omitempty" yaml:"rock_trenching_length"`
	ThermalBackfill        *float64 `json:"thermal_backfill,omitempty" yaml:"thermal_backfill"`
	OverheadCollector      *float64 `json:"overhead_collector,omitempty" yaml:"overhead_collector"`
	Contingency            *float64 `json:"contingency,omitempty" yaml:"contingency"`
	Warranty               *float64 `json:"warranty,omitempty" yaml:"warranty"`
	UseTax                 *float64 `json:"use_tax,omitempty" yaml:"use_tax"`
	Overhead               *float64 `json:"overhead,omitempty" yaml:"overhead"`
	ProfitMargin           *float64 `json:"profit_margin,omitempty" yaml:"profit_margin"`
	DevelopmentFee         *float64 `json:"development_fee,omitempty" yaml:"development_fee"`
	BOSMultiplier          *float64 `json:"bos_multiplier,omitempty" yaml:"bos_multiplier"`
}

// Apply returns base with every non-nil field of pp set. The result is not
// validated; Inputs.Validate checks it with the rest of the record.
func (pp ProjectPatch) Apply(base Project) Project {
	p := base
	setFloat(&p.TransportDistance, pp.TransportDistance)
	setFloat(&p.Voltage, pp.Voltage)
	setFloat(&p.InterconnectDistance, pp.InterconnectDistance)
	setBool(&p.DeliveryAssistRequired, pp.DeliveryAssistRequired)
	setBool(&p.PadMountTransformer, pp.PadMountTransformer)
	setBool(&p.NewSwitchyardRequired, pp.NewSwitchyardRequired)
	setBool(&p.PerformanceBond, pp.PerformanceBond)
	setFloat(&p.RockTrenchingLength, pp.RockTrenchingLength)
	setFloat(&p.ThermalBackfill, pp.ThermalBackfill)
	setFloat(&p.OverheadCollector, pp.OverheadCollector)
	setFloat(&p.Contingency, pp.Contingency)
	setFloat(&p.Warranty, pp.Warranty)
	setFloat(&p.UseTax, pp.UseTax)
	setFloat(&p.Overhead, pp.Overhead)
	setFloat(&p.ProfitMargin, pp.ProfitMargin)
	setFloat(&p.DevelopmentFee, pp.DevelopmentFee)
	if pp.BOSMultiplier != nil {
		m := *pp.BOSMultiplier
		p.BOSMultiplier = &m
	}
	return p
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
