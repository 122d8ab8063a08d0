package gradient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

func testInputs() landbos.Inputs {
	p := landbos.DefaultProject()
	p.TransportDistance = 50
	p.Voltage = 137
	p.InterconnectDistance = 5
	return landbos.Inputs{
		Turbine: landbos.Turbine{Rating: 1.5, Diameter: 77, HubHeight: 80, TopMass: 88, CapitalCost: 1000},
		Farm:    landbos.Farm{Turbines: 100},
		Project: p,
	}
}

func withDesign(in landbos.Inputs, x []float64) landbos.Inputs {
	in.Turbine.Diameter = x[Diameter]
	in.Turbine.HubHeight = x[HubHeight]
	in.Turbine.CapitalCost = x[TCC]
	in.Turbine.TopMass = x[TopMass]
	return in
}

func designOf(in landbos.Inputs) []float64 {
	x := make([]float64, numVariables)
	x[Diameter] = in.Turbine.Diameter
	x[HubHeight] = in.Turbine.HubHeight
	x[TCC] = in.Turbine.CapitalCost
	x[TopMass] = in.Turbine.TopMass
	return x
}

func termValues(b landbos.Breakdown) []float64 {
	return []float64{
		b.Transportation, b.Engineering, b.PowerPerformance, b.AccessRoads,
		b.SiteCompound, b.Building, b.Foundation, b.Erection,
		b.ElectricalMaterials, b.ElectricalInstallation, b.Substation,
		b.Transmission, b.ProjectMgmt, b.Development,
		b.Insurance.Cost, b.Markup.Cost,
	}
}

func TestJacobianMatchesFiniteDifferences(t *testing.T) {
	cases := map[string]func(*landbos.Inputs){
		"reference": func(*landbos.Inputs) {},
		"complex mountainous buoyant": func(in *landbos.Inputs) {
			in.Farm.Terrain = landbos.Mountainous
			in.Farm.Layout = landbos.Complex
			in.Farm.Soil = landbos.Buoyant
			in.Project.PerformanceBond = true
			in.Project.RockTrenchingLength = 40
		},
		"large turbine": func(in *landbos.Inputs) {
			in.Turbine = landbos.Turbine{Rating: 3.4, Diameter: 130, HubHeight: 110, TopMass: 210, CapitalCost: 1250}
			in.Farm.Turbines = 45
			in.Farm.Terrain = landbos.RidgeTop
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := testInputs()
			mutate(&in)

			g, err := Compute(in)
			require.NoError(t, err)

			numeric := mat.NewDense(len(Terms), int(numVariables), nil)
			fd.Jacobian(numeric, func(y, x []float64) {
				b, err := landbos.Estimate(withDesign(in, x))
				if err != nil {
					panic(err)
				}
				copy(y, termValues(b))
			}, designOf(in), &fd.JacobianSettings{Formula: fd.Central, Step: 1e-3})

			analytic := g.Jacobian()
			for i, term := range Terms {
				for j := range int(numVariables) {
					want := numeric.At(i, j)
					got := analytic.At(i, j)
					assert.InDeltaf(t, want, got, 1e-6*math.Abs(got)+1e-2,
						"%s wrt %s", term, Variable(j))
				}
			}
		})
	}
}

func TestTotalGradientMatchesTotalCost(t *testing.T) {
	in := testInputs()
	g, err := Compute(in)
	require.NoError(t, err)

	numeric := fd.Gradient(nil, func(x []float64) float64 {
		total, err := landbos.TotalCost(withDesign(in, x))
		if err != nil {
			panic(err)
		}
		return total
	}, designOf(in), &fd.Settings{Formula: fd.Central, Step: 1e-3})

	got := g.Total()
	assert.InEpsilon(t, numeric[Diameter], got.Diameter, 1e-6)
	assert.InEpsilon(t, numeric[HubHeight], got.HubHeight, 1e-6)
	assert.InEpsilon(t, numeric[TCC], got.TCC, 1e-6)
	assert.InEpsilon(t, numeric[TopMass], got.TopMass, 1e-6)
}

func TestBOSGradientExcludesTurbineCapital(t *testing.T) {
	in := testInputs()
	g, err := Compute(in)
	require.NoError(t, err)

	total, bos := g.Total(), g.BOS()
	assert.Equal(t, total.Diameter, bos.Diameter)
	assert.Equal(t, total.HubHeight, bos.HubHeight)
	assert.Equal(t, total.TopMass, bos.TopMass)
	assert.InDelta(t, 150.0*1000, total.TCC-bos.TCC, 1e-6)
}

func TestBOSGradientCarriesMultiplier(t *testing.T) {
	in := testInputs()
	m := 1.25
	in.Project.BOSMultiplier = &m

	g, err := Compute(in)
	require.NoError(t, err)

	numeric := fd.Gradient(nil, func(x []float64) float64 {
		b, err := landbos.Estimate(withDesign(in, x))
		if err != nil {
			panic(err)
		}
		return b.BOS
	}, designOf(in), &fd.Settings{Formula: fd.Central, Step: 1e-3})

	got := g.BOS()
	assert.InEpsilon(t, numeric[Diameter], got.Diameter, 1e-6)
	assert.InEpsilon(t, numeric[HubHeight], got.HubHeight, 1e-6)
	assert.InEpsilon(t, numeric[TopMass], got.TopMass, 1e-6)
	assert.InEpsilon(t, 1.25*g.Total().Diameter, got.Diameter, 1e-12)
	assert.InEpsilon(t, 1.25*(g.Total().TCC-150.0*1000), got.TCC, 1e-12)
}

func TestChainRuleThroughMultipliers(t *testing.T) {
	in := testInputs()
	g, err := Compute(in)
	require.NoError(t, err)

	foundation, ok := g.Term("foundation")
	require.True(t, ok)
	insurance, _ := g.Term("insurance")
	assert.InDelta(t, 0.0021*foundation.Diameter, insurance.Diameter, 1e-9)
	assert.InDelta(t, 0.0021*foundation.TopMass, insurance.TopMass, 1e-9)
	assert.InDelta(t, 0.0021*150*1000, insurance.TCC, 1e-9)

	transport, _ := g.Term("transportation")
	markup, _ := g.Term("markup")
	assert.InDelta(t, 0.1302*transport.TCC, markup.TCC, 1e-6)

	_, ok = g.Term("nonexistent")
	assert.False(t, ok)
	assert.Len(t, g.Rows(), len(Terms))
	assert.Equal(t, Partials{}, g.Rows()["substation"])
}

func TestComputeRejectsInvalidInputs(t *testing.T) {
	in := testInputs()
	in.Farm.Turbines = 0

	g, err := Compute(in)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, landbos.ErrInvalidParameter)
}
