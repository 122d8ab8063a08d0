package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/LandBOS/internal/estimator"
	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

const maxBodyBytes = 1 << 20

type EstimatesHandler struct {
	svc *estimator.Service
}

func NewEstimatesHandler(svc *estimator.Service) *EstimatesHandler {
	return &EstimatesHandler{svc: svc}
}

// Create prices the farm in the request body. ?gradient=true adds the
// design-variable gradient to the response.
func (h *EstimatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	withGradient := false
	if v := r.URL.Query().Get("gradient"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "gradient must be a boolean"})
			return
		}
		withGradient = b
	}

	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Estimate(req, estimator.Options{
		Gradient:  withGradient,
		Source:    estimator.SourceHTTP,
		RequestID: chiMiddleware.GetReqID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *EstimatesHandler) Gradient(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	g, err := h.svc.Gradient(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// Defaults returns the estimated secondary parameters for
// ?rating=<MW>&turbines=<n>.
func (h *EstimatesHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rating, err := strconv.ParseFloat(q.Get("rating"), 64)
	if err != nil || !(rating > 0) || rating > landbos.MaxRating {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("rating must be a number in (0, %g]", landbos.MaxRating), "field": "rating",
		})
		return
	}
	turbines, err := strconv.Atoi(q.Get("turbines"))
	if err != nil || turbines < 1 || turbines > landbos.MaxTurbines {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("turbines must be an integer in [1, %d]", landbos.MaxTurbines), "field": "turbines",
		})
		return
	}

	writeJSON(w, http.StatusOK, landbos.Defaults(rating, turbines))
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (estimator.Request, bool) {
	var req estimator.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var pe *landbos.ParamError
		if errors.As(err, &pe) {
			writeError(w, err)
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return req, false
	}
	return req, true
}

func writeError(w http.ResponseWriter, err error) {
	var pe *landbos.ParamError
	switch {
	case errors.As(err, &pe):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": pe.Error(), "field": pe.Field})
	case errors.Is(err, landbos.ErrInvalidParameter):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// writeJSON encodes v before committing status, so an unencodable value
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}
