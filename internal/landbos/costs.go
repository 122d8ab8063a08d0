package landbos

import "math"

// TransportationCost returns the turbine purchase plus delivery cost.
// tcc is in USD/kW, rating in MW, transportDist in miles.
func TransportationCost(tcc, rating float64, nTurb int, hubHt, transportDist float64) float64 {
	n := float64(nTurb)
	cost := tcc * rating * kWPerMW * n
	if rating < smallTurbineMaxRating && hubHt < smallTurbineMaxHubHt {
		cost += smallTurbineFreightCoef * math.Pow(transportDist, smallTurbineFreightExp) * n
	} else {
		cost += largeTurbineFreightCoef * math.Pow(transportDist, largeTurbineFreightExp) * n
	}
	return cost
}

// EngineeringCost covers site design, foundation and collector engineering.
func EngineeringCost(nTurb int, farmSize float64) float64 {
	cost := engineeringPerTurbine * float64(nTurb)

	designs := math.Round(engineeringDesignLogCoef*math.Log(float64(nTurb)) - engineeringDesignOffset)
	cost += math.Max(0, designs) * engineeringPerDesign

	substations := 2.0
	if farmSize < engineeringLargeFarm {
		substations = 1.0
	}
	cost += substations * engineeringSubstationDesign
	return cost + engineeringFixed
}

// PowerPerformanceCost covers met towers and power performance testing.
// Tower counts are real-valued.
func PowerPerformanceCost(hubHt, permanent, temporary float64) float64 {
	perm, temp := permanentMetTowerTall, temporaryMetTowerTall
	if hubHt < powerPerfTallHubHt {
		perm, temp = permanentMetTowerShort, temporaryMetTowerShort
	}
	return powerPerfFixed + permanent*perm + temporary*temp
}

// AccessRoadsCost covers access roads and site improvement.
func AccessRoadsCost(terrain Terrain, layout Layout, nTurb int, diameter float64,
	constructionTime, accessRoadEntrances int) float64 {
	f := accessRoadFactors(terrain, layout)
	n := float64(nTurb)
	return (n*f.perTurbine + n*diameter*f.perMeter +
		float64(constructionTime)*roadsPerMonth +
		float64(accessRoadEntrances)*roadsPerEntrance) * roadsContingency
}

// SiteCompoundCost covers the site compound and security.
func SiteCompoundCost(accessRoadEntrances, constructionTime int, farmSize float64) float64 {
	cost := compoundPerEntrance*float64(accessRoadEntrances) + compoundPerMonth*float64(constructionTime)

	var units float64
	switch {
	case farmSize > compoundLargeFarm:
		units = 10
	case farmSize > compoundMidFarm:
		units = 5
	default:
		units = 3
	}
	cost += units * compoundPerUnit

	if farmSize > compoundMidFarm {
		cost += compoundMidFarmExtra
	}
	return cost + farmSize*compoundPerMW + compoundFixed
}

// BuildingCost is the control and O&M building cost for a floor area in ft².
func BuildingCost(buildingSize float64) float64 {
	return buildingSize*buildingPerSqFt + buildingFixed
}

// FoundationCost covers all turbine foundations. topMass is in tonnes.
func FoundationCost(rating, diameter, topMass, hubHt float64, soil Soil, nTurb int) float64 {
	n := float64(nTurb)
	perTurbine := rating*diameter*topMass +
		foundationScaleCoef*math.Pow(n, foundationScaleExp) +
		(hubHt-foundationRefHubHt)*foundationPerMeter
	switch soil {
	case Standard:
	case Buoyant:
		perTurbine += foundationBuoyant
	default:
		panic("landbos: unknown soil condition " + soil.String())
	}
	return perTurbine * n
}

// ErectionCost covers turbine erection, crane mobilization and delays.
func ErectionCost(rating, hubHt float64, nTurb, weatherDelayDays, craneBreakdowns int,
	deliveryAssistRequired bool) float64 {
	n := float64(nTurb)
	cost := (erectionPerKW*rating*kWPerMW +
		erectionScaleCoef*math.Pow(n, erectionScaleExp) +
		(hubHt-erectionRefHubHt)*erectionPerMeter) * n
	if deliveryAssistRequired {
		cost += erectionDeliveryAssist * n
	}
	return cost + erectionPerDelayDay*float64(weatherDelayDays) +
		erectionPerBreakdown*float64(craneBreakdowns) +
		erectionPerTurbine*n + erectionFixed
}

// ElectricalMaterialsCost covers medium-voltage collection materials.
// thermalBackfill is in miles.
func ElectricalMaterialsCost(terrain Terrain, layout Layout, farmSize, diameter float64,
	nTurb int, padMountTransformer bool, thermalBackfill float64) float64 {
	f := electricalMaterialsFactors(terrain, layout)
	n := float64(nTurb)

	var cost float64
	if padMountTransformer {
		cost = n * f.padMount
	} else {
		cost = n * f.noPadMount
	}
	return cost + math.Floor(farmSize/25.0)*elecMatPer25MW +
		math.Floor(farmSize/100.0)*elecMatPer100MW +
		diameter*n*f.cable +
		thermalBackfill*elecMatPerBackfillMile + elecMatFixed
}

// ElectricalInstallationCost covers medium-voltage collection installation.
// rockTrenchingLength is the percentage of collector cable needing rock
// trenching; overheadCollector is in miles.
func ElectricalInstallationCost(terrain Terrain, layout Layout, farmSize, diameter float64,
	nTurb int, rockTrenchingLength, overheadCollector float64) float64 {
	f := electricalInstallationFactors(terrain, layout)
	n := float64(nTurb)

	cost := math.Floor(farmSize/25.0) * elecInstPer25MW
	if farmSize > elecInstLargeFarm {
		cost += elecInstLargeMobilize
	} else {
		cost += elecInstSmallMobilize
	}
	return cost + n*(f.perTurbine+diameter*(f.trench+f.rock*rockTrenchingLength/100.0)) +
		overheadCollector*elecInstPerOverheadMile + elecInstFixed
}

// SubstationCost is the collector substation cost for an interconnect
// voltage in kV.
func SubstationCost(voltage, farmSize float64) float64 {
	return substationLinear*(voltage+farmSize) +
		substationScale*math.Pow(farmSize, substationScaleExp) + substationFixed
}

// TransmissionCost covers the transmission line and interconnection.
func TransmissionCost(voltage, distInter float64, newSwitchyardRequired bool) float64 {
	cost := (transmissionPerKV*voltage + transmissionFixed) * math.Pow(distInter, transmissionDistExp)
	if newSwitchyardRequired {
		cost += switchyardPerKV*voltage + switchyardFixed
	}
	return cost
}

// ProjectMgmtCost is the project management cost over the construction
// period plus two months of close-out.
func ProjectMgmtCost(constructionTime int) float64 {
	ct := float64(constructionTime)
	months := float64(constructionTime + projMgmtExtraMonths)
	if constructionTime < projMgmtShortMonths {
		return (projMgmtQuadratic*ct*ct - projMgmtLinear*ct + projMgmtConstant) * months
	}
	return months * projMgmtLongMonthly
}

// DevelopmentCost converts a development fee in millions of USD to USD.
func DevelopmentCost(developmentFee float64) float64 {
	return developmentFee * usdPerMUS
}
