// Package estimator prices wind farms for the HTTP and messaging front ends.
// It fills request gaps from the configured project defaults, evaluates the
// cost model, records metrics and publishes the outcome.
package estimator

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/LandBOS/internal/gradient"
	"github.com/MikeSquared-Agency/LandBOS/internal/hermes"
	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

// Request is an estimate request. Project fields it leaves out keep the
// service defaults.
type Request struct {
	Turbine   landbos.Turbine       `json:"turbine" yaml:"turbine"`
	Farm      landbos.Farm          `json:"farm" yaml:"farm"`
	Project   *landbos.ProjectPatch `json:"project,omitempty" yaml:"project"`
	Overrides landbos.Overrides     `json:"overrides" yaml:"overrides"`
}

type Options struct {
	Gradient bool
	Source   string
	// RequestID is echoed in published events.
	RequestID string
}

type Result struct {
	ID        uuid.UUID         `json:"id"`
	Inputs    landbos.Inputs    `json:"inputs"`
	Breakdown landbos.Breakdown `json:"breakdown"`
	Gradient  *GradientResult   `json:"gradient,omitempty"`
}

type GradientResult struct {
	Total gradient.Partials            `json:"total"`
	BOS   gradient.Partials            `json:"bos"`
	Terms map[string]gradient.Partials `json:"terms"`
}

type Service struct {
	hermes  hermes.Client
	project landbos.Project
	logger  *slog.Logger
	now     func() time.Time
}

// New returns a Service. h may be nil.
func New(h hermes.Client, project landbos.Project, logger *slog.Logger) *Service {
	return &Service{
		hermes:  h,
		project: project,
		logger:  logger,
		now:     time.Now,
	}
}

// Inputs completes req by applying its project fields over the default
// project.
func (s *Service) Inputs(req Request) landbos.Inputs {
	p := s.project
	if req.Project != nil {
		p = req.Project.Apply(p)
	}
	return landbos.Inputs{
		Turbine:   req.Turbine,
		Farm:      req.Farm,
		Project:   p,
		Overrides: req.Overrides,
	}
}

// Estimate prices req. Invalid inputs return an error wrapping
// landbos.ErrInvalidParameter.
func (s *Service) Estimate(req Request, opts Options) (*Result, error) {
	source := opts.Source
	if source == "" {
		source = SourceHTTP
	}
	in := s.Inputs(req)

	start := time.Now()
	b, err := landbos.Estimate(in)
	if err != nil {
		estimatesTotal.WithLabelValues(source, outcomeInvalid).Inc()
		return nil, err
	}

	res := &Result{ID: uuid.New(), Inputs: in, Breakdown: b}
	kind := "total"
	if opts.Gradient {
		g, err := s.gradient(in)
		if err != nil {
			estimatesTotal.WithLabelValues(source, outcomeInvalid).Inc()
			return nil, err
		}
		res.Gradient = g
		kind = "total_with_gradient"
	}
	estimateDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	estimatesTotal.WithLabelValues(source, outcomeOK).Inc()

	capacityKW := b.Parameters.FarmSize * 1000
	perKW := b.BOS / capacityKW
	bosPerKW.Observe(perKW)

	s.logger.Info("estimate computed",
		"estimate_id", res.ID,
		"source", source,
		"turbines", in.Farm.Turbines,
		"farm_size_mw", b.Parameters.FarmSize,
		"total_usd", b.Total,
		"bos_usd_per_kw", perKW,
	)

	s.publish(hermes.SubjectEstimateComputed(res.ID.String()), hermes.EstimateComputedEvent{
		EstimateID: res.ID.String(),
		RequestID:  opts.RequestID,
		Source:     source,
		Turbines:   in.Farm.Turbines,
		FarmSize:   b.Parameters.FarmSize,
		Total:      b.Total,
		BOS:        b.BOS,
		BOSPerKW:   perKW,
		Timestamp:  s.now().UTC(),
	})
	return res, nil
}

// Gradient differentiates the total and BOS cost of req.
func (s *Service) Gradient(req Request) (*GradientResult, error) {
	start := time.Now()
	g, err := s.gradient(s.Inputs(req))
	if err != nil {
		return nil, err
	}
	estimateDuration.WithLabelValues("gradient").Observe(time.Since(start).Seconds())
	return g, nil
}

func (s *Service) gradient(in landbos.Inputs) (*GradientResult, error) {
	g, err := gradient.Compute(in)
	if err != nil {
		return nil, err
	}
	return &GradientResult{Total: g.Total(), BOS: g.BOS(), Terms: g.Rows()}, nil
}

func (s *Service) publish(subject string, data interface{}) {
	if s.hermes == nil {
		return
	}
	if err := s.hermes.Publish(subject, data); err != nil {
		eventsPublished.WithLabelValues("error").Inc()
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
		return
	}
	eventsPublished.WithLabelValues(outcomeOK).Inc()
}

// SetupSubscriptions answers estimate requests arriving over NATS. Results
// go out as computed events; rejected requests as failed events.
func (s *Service) SetupSubscriptions() error {
	if s.hermes == nil {
		return nil
	}
	return s.hermes.Subscribe(hermes.SubjectEstimateRequest, func(_ string, data []byte) {
		s.handleRequest(data)
	})
}

func (s *Service) handleRequest(data []byte) {
	var evt hermes.EstimateRequestEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		s.logger.Warn("invalid estimate request event", "error", err)
		s.fail(evt.RequestID, err)
		return
	}
	if !hermes.ValidToken(evt.RequestID) {
		if evt.RequestID != "" {
			s.logger.Warn("replacing unusable request id", "request_id", evt.RequestID)
		}
		evt.RequestID = uuid.NewString()
	}

	req := Request{
		Turbine:   evt.Turbine,
		Farm:      evt.Farm,
		Project:   evt.Project,
		Overrides: evt.Overrides,
	}
	opts := Options{Gradient: evt.Gradient, Source: SourceNATS, RequestID: evt.RequestID}
	if _, err := s.Estimate(req, opts); err != nil {
		s.logger.Warn("rejected estimate request", "request_id", evt.RequestID, "error", err)
		s.fail(evt.RequestID, err)
	}
}

// fail publishes a failed event under requestID, or under a fresh id when
// requestID is not a valid subject token.
func (s *Service) fail(requestID string, err error) {
	if !hermes.ValidToken(requestID) {
		requestID = uuid.NewString()
	}
	evt := hermes.EstimateFailedEvent{
		RequestID: requestID,
		Error:     err.Error(),
		Timestamp: s.now().UTC(),
	}
	var pe *landbos.ParamError
	if errors.As(err, &pe) {
		evt.Field = pe.Field
	}
	s.publish(hermes.SubjectEstimateFailed(requestID), evt)
}
