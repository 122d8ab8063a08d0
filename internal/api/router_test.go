package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/LandBOS/internal/estimator"
	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

type mockHermes struct {
	subjects []string
}

func (m *mockHermes) Publish(subject string, _ interface{}) error {
	m.subjects = append(m.subjects, subject)
	return nil
}
func (m *mockHermes) Subscribe(_ string, _ func(string, []byte)) error { return nil }
func (m *mockHermes) Close()                                           {}

func testRouter(t *testing.T) (http.Handler, *mockHermes) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mh := &mockHermes{}
	p := landbos.DefaultProject()
	p.TransportDistance = 50
	p.Voltage = 137
	p.InterconnectDistance = 5
	svc := estimator.New(mh, p, logger)
	return NewRouter(svc, 0, logger), mh
}

const referenceBody = `{
	"turbine": {"rating": 1.5, "diameter": 77, "hub_height": 80, "top_mass": 88, "capital_cost": 1000},
	"farm": {"turbines": 100, "terrain": "flat_to_rolling", "layout": "simple", "soil": "standard"}
}`

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCreateEstimate(t *testing.T) {
	h, mh := testRouter(t)

	w := doRequest(h, http.MethodPost, "/api/v1/estimates", referenceBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res estimator.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.InEpsilon(t, 230020583.12468266, res.Breakdown.Total, 1e-12)
	assert.InEpsilon(t, 80020583.12468266, res.Breakdown.BOS, 1e-12)
	assert.Equal(t, 13, res.Breakdown.Parameters.ConstructionTime)
	assert.Nil(t, res.Gradient)

	require.Len(t, mh.subjects, 1)
	assert.Contains(t, mh.subjects[0], res.ID.String())
}

func TestCreateEstimateWithGradient(t *testing.T) {
	h, _ := testRouter(t)

	w := doRequest(h, http.MethodPost, "/api/v1/estimates?gradient=true", referenceBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res estimator.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotNil(t, res.Gradient)
	assert.InDelta(t, 150000.0, res.Gradient.Total.TCC-res.Gradient.BOS.TCC, 1e-6)
	assert.Contains(t, res.Gradient.Terms, "foundation")
}

func TestCreateEstimateBadGradientFlag(t *testing.T) {
	h, _ := testRouter(t)
	w := doRequest(h, http.MethodPost, "/api/v1/estimates?gradient=maybe", referenceBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEstimateInvalidInputs(t *testing.T) {
	h, mh := testRouter(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			"zero turbines",
			`{"turbine":{"rating":1.5,"diameter":77,"hub_height":80,"top_mass":88,"capital_cost":1000},"farm":{"turbines":0}}`,
			"farm.turbines",
		},
		{
			"negative rating",
			`{"turbine":{"rating":-2,"diameter":77,"hub_height":80,"top_mass":88,"capital_cost":1000},"farm":{"turbines":10}}`,
			"turbine.rating",
		},
		{
			"unknown terrain",
			`{"turbine":{"rating":1.5,"diameter":77,"hub_height":80,"top_mass":88},"farm":{"turbines":10,"terrain":"lunar"}}`,
			"farm.terrain",
		},
		{
			"overflowing rating",
			`{"turbine":{"rating":1e308,"diameter":77,"hub_height":80,"top_mass":88,"capital_cost":1000},"farm":{"turbines":10}}`,
			"turbine.rating",
		},
		{
			"turbines above bound",
			`{"turbine":{"rating":1.5,"diameter":77,"hub_height":80,"top_mass":88,"capital_cost":1000},"farm":{"turbines":400000000000}}`,
			"farm.turbines",
		},
		{
			"negative erection cost",
			`{"turbine":{"rating":0.01,"diameter":77,"hub_height":1,"top_mass":88,"capital_cost":1000},"farm":{"turbines":1}}`,
			"breakdown.erection",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(h, http.MethodPost, "/api/v1/estimates", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.field, body["field"])
			assert.Contains(t, body["error"], "invalid parameter")
		})
	}
	assert.Empty(t, mh.subjects)
}

func TestCreateEstimateMalformedBody(t *testing.T) {
	h, _ := testRouter(t)
	w := doRequest(h, http.MethodPost, "/api/v1/estimates", `{"turbine":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestGradients(t *testing.T) {
	h, mh := testRouter(t)

	w := doRequest(h, http.MethodPost, "/api/v1/gradients", referenceBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var g estimator.GradientResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
	assert.Greater(t, g.Total.Diameter, 0.0)
	assert.Greater(t, g.Total.TopMass, 0.0)
	assert.Len(t, g.Terms, 16)
	// gradients are not published
	assert.Empty(t, mh.subjects)
}

func TestDefaults(t *testing.T) {
	h, _ := testRouter(t)

	w := doRequest(h, http.MethodGet, "/api/v1/defaults?rating=1.5&turbines=100", "")
	require.Equal(t, http.StatusOK, w.Code)

	var p landbos.Parameters
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, landbos.Defaults(1.5, 100), p)
}

func TestDefaultsBadQuery(t *testing.T) {
	h, _ := testRouter(t)

	for _, q := range []string{
		"",
		"rating=0&turbines=10",
		"rating=2&turbines=0",
		"rating=x&turbines=1",
		"rating=2&turbines=1.5",
		"rating=Inf&turbines=1",
		"rating=NaN&turbines=1",
		"rating=1e308&turbines=1",
		"rating=2&turbines=400000000000",
	} {
		w := doRequest(h, http.MethodGet, "/api/v1/defaults?"+q, "")
		assert.Equalf(t, http.StatusBadRequest, w.Code, "query %q", q)

		var body map[string]string
		require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "query %q", q)
		assert.NotEmptyf(t, body["field"], "query %q", q)
	}
}

func TestWriteJSONUnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, http.StatusOK, map[string]float64{"rating": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestUnsupportedContentType(t *testing.T) {
	h, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/estimates", bytes.NewBufferString(referenceBody))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestMetricsRouter(t *testing.T) {
	h := NewMetricsRouter()

	w := doRequest(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doRequest(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
