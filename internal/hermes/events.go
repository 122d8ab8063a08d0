package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

// EstimateRequestEvent asks the service to price a farm. Project fields
// left out fall back to the configured project defaults. RequestID names the
// failed-event subject, so it must be a single subject token; anything else
// is replaced.
type EstimateRequestEvent struct {
	RequestID string                `json:"request_id,omitempty"`
	Turbine   landbos.Turbine       `json:"turbine"`
	Farm      landbos.Farm          `json:"farm"`
	Project   *landbos.ProjectPatch `json:"project,omitempty"`
	Overrides landbos.Overrides     `json:"overrides"`
	Gradient  bool                  `json:"gradient,omitempty"`
}

type EstimateComputedEvent struct {
	EstimateID string    `json:"estimate_id"`
	RequestID  string    `json:"request_id,omitempty"`
	Source     string    `json:"source"`
	Turbines   int       `json:"turbines"`
	FarmSize   float64   `json:"farm_size"`
	Total      float64   `json:"total"`
	BOS        float64   `json:"bos"`
	BOSPerKW   float64   `json:"bos_per_kw"`
	Timestamp  time.Time `json:"timestamp"`
}

type EstimateFailedEvent struct {
	RequestID string    `json:"request_id"`
	Field     string    `json:"field,omitempty"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
