package landbos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsuranceMultiplierAndCost(t *testing.T) {
	mc := InsuranceMultiplierAndCost(1000, 150, 9366836.78108287, false)

	assert.InDelta(t, 0.0021, mc.Alpha, 1e-15)
	assert.Equal(t, 1000*150*1000+9366836.78108287, mc.Base)
	assert.Equal(t, mc.Alpha*mc.Base, mc.Cost)
	assert.InEpsilon(t, 334670.3572402741, mc.Cost, 1e-12)
}

func TestInsurancePerformanceBondRaisesRate(t *testing.T) {
	without := InsuranceMultiplierAndCost(1000, 150, 1e7, false)
	with := InsuranceMultiplierAndCost(1000, 150, 1e7, true)

	assert.InDelta(t, 0.01, with.Alpha-without.Alpha, 1e-15)
	assert.Equal(t, without.Base, with.Base)
	assert.Equal(t, with.Alpha*with.Base, with.Cost)
}

func TestInsuranceMultiplierAndCostDeriv(t *testing.T) {
	for _, bond := range []bool{false, true} {
		tcc, fs, found := 1150.0, 80.0, 4.2e6
		d := InsuranceMultiplierAndCostDeriv(tcc, fs, bond)

		assertPartial(t, "insurance tcc", d.TCC, func(x float64) float64 {
			return InsuranceMultiplierAndCost(x, fs, found, bond).Cost
		}, tcc)
		assertPartial(t, "insurance farm size", d.FarmSize, func(x float64) float64 {
			return InsuranceMultiplierAndCost(tcc, x, found, bond).Cost
		}, fs)
		assertPartial(t, "insurance foundation", d.FoundationCost, func(x float64) float64 {
			return InsuranceMultiplierAndCost(tcc, fs, x, bond).Cost
		}, found)
	}
}

func TestMarkupMultiplierAndCost(t *testing.T) {
	mc := MarkupMultiplierAndCost(152497143.91870072, 3, 0.02, 0, 5, 5)

	assert.InDelta(t, 0.1302, mc.Alpha, 1e-15)
	assert.Equal(t, 152497143.91870072, mc.Base)
	assert.Equal(t, mc.Alpha*mc.Base, mc.Cost)
	assert.InEpsilon(t, 19855128.13821483, mc.Cost, 1e-12)
}

func TestMarkupZeroRates(t *testing.T) {
	mc := MarkupMultiplierAndCost(1e8, 0, 0, 0, 0, 0)
	assert.Equal(t, MultCost{Alpha: 0, Base: 1e8, Cost: 0}, mc)
}

func TestMarkupMultiplierAndCostDeriv(t *testing.T) {
	d := MarkupMultiplierAndCostDeriv(4, 0.5, 6.25, 5, 8)
	assertPartial(t, "markup transportation", d.TransportationCost, func(x float64) float64 {
		return MarkupMultiplierAndCost(x, 4, 0.5, 6.25, 5, 8).Cost
	}, 2.1e8)
	assert.InDelta(t, 0.2375, d.TransportationCost, 1e-15)
}
