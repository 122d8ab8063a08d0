// Package gradient assembles the Jacobian of the summed cost terms with
// respect to the turbine design variables and reduces it to the gradient of
// the total and BOS cost.
package gradient

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/MikeSquared-Agency/LandBOS/internal/landbos"
)

// Variable is a column of the Jacobian.
type Variable int

const (
	Diameter Variable = iota
	HubHeight
	TCC
	TopMass

	numVariables
)

func (v Variable) String() string {
	switch v {
	case Diameter:
		return "diameter"
	case HubHeight:
		return "hub_height"
	case TCC:
		return "tcc"
	case TopMass:
		return "top_mass"
	}
	return fmt.Sprintf("Variable(%d)", int(v))
}

// Terms lists the Jacobian rows in the order they are summed into the total.
var Terms = []string{
	"transportation",
	"engineering",
	"power_performance",
	"access_roads",
	"site_compound",
	"building",
	"foundation",
	"erection",
	"electrical_materials",
	"electrical_installation",
	"substation",
	"transmission",
	"project_mgmt",
	"development",
	"insurance",
	"markup",
}

const (
	rowTransportation = iota
	rowEngineering
	rowPowerPerformance
	rowAccessRoads
	rowSiteCompound
	rowBuilding
	rowFoundation
	rowErection
	rowElectricalMaterials
	rowElectricalInstallation
	rowSubstation
	rowTransmission
	rowProjectMgmt
	rowDevelopment
	rowInsurance
	rowMarkup
)

// Partials holds one derivative per design variable.
type Partials struct {
	Diameter  float64 `json:"diameter"`
	HubHeight float64 `json:"hub_height"`
	TCC       float64 `json:"tcc"`
	TopMass   float64 `json:"top_mass"`
}

func partialsOf(v mat.Vector) Partials {
	return Partials{
		Diameter:  v.AtVec(int(Diameter)),
		HubHeight: v.AtVec(int(HubHeight)),
		TCC:       v.AtVec(int(TCC)),
		TopMass:   v.AtVec(int(TopMass)),
	}
}

// Gradient is the differentiated cost model at one design point.
type Gradient struct {
	jac   *mat.Dense
	total *mat.VecDense
	bos   *mat.VecDense
}

// Jacobian returns the len(Terms)×4 matrix of term partials.
func (g *Gradient) Jacobian() mat.Matrix { return g.jac }

// Total returns ∂Total/∂x.
func (g *Gradient) Total() Partials { return partialsOf(g.total) }

// BOS returns ∂BOS/∂x, which excludes the turbine purchase price and
// carries the project's BOS multiplier.
func (g *Gradient) BOS() Partials { return partialsOf(g.bos) }

// Term returns the partials of a single summed term.
func (g *Gradient) Term(name string) (Partials, bool) {
	for i, t := range Terms {
		if t == name {
			return partialsOf(g.jac.RowView(i)), true
		}
	}
	return Partials{}, false
}

// Rows returns every term's partials keyed by term name.
func (g *Gradient) Rows() map[string]Partials {
	rows := make(map[string]Partials, len(Terms))
	for i, t := range Terms {
		rows[t] = partialsOf(g.jac.RowView(i))
	}
	return rows
}

// Compute validates in and differentiates every term of the total cost.
// Terms without tracked partials (engineering, site compound, building,
// substation, transmission, project management, development) contribute
// zero rows. Insurance and markup are chained through the foundation and
// transportation rows.
func Compute(in landbos.Inputs) (*Gradient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t, f, p := in.Turbine, in.Farm, in.Project
	fs := landbos.FarmSize(t.Rating, f.Turbines)
	params := landbos.Resolve(in)

	jac := mat.NewDense(len(Terms), int(numVariables), nil)

	tr := landbos.TransportationCostDeriv(t.Rating, f.Turbines)
	jac.Set(rowTransportation, int(TCC), tr.TCC)
	jac.Set(rowTransportation, int(HubHeight), tr.HubHeight)

	pp := landbos.PowerPerformanceCostDeriv(t.HubHeight, params.PermanentMetTowers, params.TempMetTowers)
	jac.Set(rowPowerPerformance, int(HubHeight), pp.HubHeight)

	ar := landbos.AccessRoadsCostDeriv(f.Terrain, f.Layout, f.Turbines)
	jac.Set(rowAccessRoads, int(Diameter), ar.Diameter)

	fnd := landbos.FoundationCostDeriv(t.Rating, t.Diameter, t.TopMass, f.Turbines)
	jac.Set(rowFoundation, int(Diameter), fnd.Diameter)
	jac.Set(rowFoundation, int(TopMass), fnd.TopMass)
	jac.Set(rowFoundation, int(HubHeight), fnd.HubHeight)

	er := landbos.ErectionCostDeriv(f.Turbines)
	jac.Set(rowErection, int(HubHeight), er.HubHeight)

	em := landbos.ElectricalMaterialsCostDeriv(f.Terrain, f.Layout, f.Turbines)
	jac.Set(rowElectricalMaterials, int(Diameter), em.Diameter)

	ei := landbos.ElectricalInstallationCostDeriv(f.Terrain, f.Layout, f.Turbines, p.RockTrenchingLength)
	jac.Set(rowElectricalInstallation, int(Diameter), ei.Diameter)

	// Insurance depends on tcc directly and on the design through the
	// foundation cost.
	ins := landbos.InsuranceMultiplierAndCostDeriv(t.CapitalCost, fs, p.PerformanceBond)
	insRow := mat.NewVecDense(int(numVariables), nil)
	insRow.ScaleVec(ins.FoundationCost, jac.RowView(rowFoundation))
	insRow.SetVec(int(TCC), insRow.AtVec(int(TCC))+ins.TCC)
	jac.SetRow(rowInsurance, insRow.RawVector().Data)

	mk := landbos.MarkupMultiplierAndCostDeriv(p.Contingency, p.Warranty, p.UseTax, p.Overhead, p.ProfitMargin)
	mkRow := mat.NewVecDense(int(numVariables), nil)
	mkRow.ScaleVec(mk.TransportationCost, jac.RowView(rowTransportation))
	jac.SetRow(rowMarkup, mkRow.RawVector().Data)

	ones := make([]float64, len(Terms))
	for i := range ones {
		ones[i] = 1
	}
	total := mat.NewVecDense(int(numVariables), nil)
	total.MulVec(jac.T(), mat.NewVecDense(len(Terms), ones))

	// BOS = (Total - tcc*fs*1000) * multiplier
	bos := mat.VecDenseCopyOf(total)
	bos.SetVec(int(TCC), bos.AtVec(int(TCC))-fs*1000)
	bos.ScaleVec(p.BOSScale(), bos)

	return &Gradient{jac: jac, total: total, bos: bos}, nil
}
