package landbos

// Regression coefficients of the land-based BOS model (2014 USD).
const (
	// Transportation: per-turbine freight = coef * distance^exp.
	smallTurbineFreightCoef = 1349.0
	smallTurbineFreightExp  = 0.746
	largeTurbineFreightCoef = 1867.0
	largeTurbineFreightExp  = 0.726
	smallTurbineMaxRating   = 2.5   // MW
	smallTurbineMaxHubHt    = 100.0 // m

	// Engineering
	engineeringPerTurbine       = 7188.5
	engineeringPerDesign        = 16800.0
	engineeringDesignLogCoef    = 3.4893
	engineeringDesignOffset     = 7.3049
	engineeringSubstationDesign = 161675.0
	engineeringFixed            = 4000.0
	engineeringLargeFarm        = 200.0 // MW

	// Power performance / met towers
	powerPerfFixed         = 200000.0
	powerPerfTallHubHt     = 90.0 // m
	permanentMetTowerTall  = 290000.0
	temporaryMetTowerTall  = 116800.0
	permanentMetTowerShort = 232600.0
	temporaryMetTowerShort = 92600.0

	// Access roads
	roadsPerMonth    = 55500.0
	roadsPerEntrance = 3800.0
	roadsContingency = 1.05

	// Site compound & security
	compoundPerEntrance  = 9825.0
	compoundPerMonth     = 29850.0
	compoundPerUnit      = 30000.0
	compoundMidFarm      = 30.0  // MW
	compoundLargeFarm    = 100.0 // MW
	compoundMidFarmExtra = 90000.0
	compoundPerMW        = 60.0
	compoundFixed        = 62400.0

	// O&M building
	buildingPerSqFt = 125.0
	buildingFixed   = 176125.0

	// Foundations
	foundationScaleCoef = 163421.5
	foundationScaleExp  = -0.1458
	foundationRefHubHt  = 80.0 // m
	foundationPerMeter  = 500.0
	foundationBuoyant   = 20000.0

	// Erection
	erectionPerKW          = 37.0
	erectionScaleCoef      = 27000.0
	erectionScaleExp       = -0.42145
	erectionRefHubHt       = 80.0 // m
	erectionPerMeter       = 500.0
	erectionDeliveryAssist = 60000.0
	erectionPerDelayDay    = 20000.0
	erectionPerBreakdown   = 35000.0
	erectionPerTurbine     = 181.0
	erectionFixed          = 1834.0

	// Electrical materials
	elecMatPer25MW         = 35375.0
	elecMatPer100MW        = 50000.0
	elecMatPerBackfillMile = 5.0
	elecMatFixed           = 41945.0

	// Electrical installation
	elecInstPer25MW         = 14985.0
	elecInstLargeFarm       = 200.0 // MW
	elecInstLargeMobilize   = 300000.0
	elecInstSmallMobilize   = 155000.0
	elecInstPerOverheadMile = 200000.0
	elecInstFixed           = 10000.0

	// Collector substation
	substationLinear   = 11652.0
	substationScale    = 11795.0
	substationScaleExp = 0.3549
	substationFixed    = 1526800.0

	// Transmission & interconnect
	transmissionPerKV   = 1176.0
	transmissionFixed   = 218257.0
	transmissionDistExp = 0.8937
	switchyardPerKV     = 18115.0
	switchyardFixed     = 165944.0

	// Project management
	projMgmtShortMonths = 28
	projMgmtQuadratic   = 53.333
	projMgmtLinear      = 3442.0
	projMgmtConstant    = 209542.0
	projMgmtLongMonthly = 155000.0
	projMgmtExtraMonths = 2

	// Insurance rates, USD per 1000 USD of insured value.
	buildersRiskRate     = 0.7
	generalLiabilityRate = 0.4
	umbrellaRate         = 1.0
	performanceBondRate  = 10.0

	kWPerMW   = 1000.0
	usdPerMUS = 1e6
)

// roadFactors are the per-turbine and per-turbine-per-meter-of-diameter
// access road coefficients.
type roadFactors struct {
	perTurbine float64
	perMeter   float64
}

func accessRoadFactors(terrain Terrain, layout Layout) roadFactors {
	switch layout {
	case Simple:
		switch terrain {
		case FlatToRolling:
			return roadFactors{49962.5, 24.8}
		case RidgeTop:
			return roadFactors{59822.0, 26.8}
		case Mountainous:
			return roadFactors{66324.0, 26.8}
		}
	case Complex:
		switch terrain {
		case FlatToRolling:
			return roadFactors{62653.6, 30.9}
		case RidgeTop:
			return roadFactors{74213.3, 33.0}
		case Mountainous:
			return roadFactors{82901.1, 33.0}
		}
	}
	panic(unknownCategory(terrain, layout))
}

// elecMatFactors: padMount/noPadMount are per turbine, cable is per turbine
// per meter of rotor diameter.
type elecMatFactors struct {
	padMount   float64
	noPadMount float64
	cable      float64
}

func electricalMaterialsFactors(terrain Terrain, layout Layout) elecMatFactors {
	switch layout {
	case Simple:
		switch terrain {
		case FlatToRolling:
			return elecMatFactors{66733.4, 27088.4, 545.4}
		case RidgeTop:
			return elecMatFactors{67519.4, 27874.4, 590.8}
		case Mountainous:
			return elecMatFactors{68305.4, 28660.4, 590.8}
		}
	case Complex:
		switch terrain {
		case FlatToRolling:
			return elecMatFactors{67519.4, 27874.4, 681.7}
		case RidgeTop:
			return elecMatFactors{68305.4, 28660.4, 727.2}
		case Mountainous:
			return elecMatFactors{69484.4, 29839.4, 727.2}
		}
	}
	panic(unknownCategory(terrain, layout))
}

// elecInstFactors: perTurbine is a fixed charge, trench and rock are per
// turbine per meter of rotor diameter (rock scaled by the rock-trenching share).
type elecInstFactors struct {
	perTurbine float64
	trench     float64
	rock       float64
}

func electricalInstallationFactors(terrain Terrain, layout Layout) elecInstFactors {
	switch layout {
	case Simple:
		switch terrain {
		case FlatToRolling:
			return elecInstFactors{7059.3, 352.4, 297.0}
		case RidgeTop:
			return elecInstFactors{7683.5, 564.3, 483.0}
		case Mountainous:
			return elecInstFactors{8305.0, 682.6, 579.0}
		}
	case Complex:
		switch terrain {
		case FlatToRolling:
			return elecInstFactors{7683.5, 564.9, 446.0}
		case RidgeTop:
			return elecInstFactors{8305.0, 866.8, 713.0}
		case Mountainous:
			return elecInstFactors{9240.0, 972.8, 792.3}
		}
	}
	panic(unknownCategory(terrain, layout))
}

func unknownCategory(terrain Terrain, layout Layout) string {
	return "landbos: no coefficients for terrain " + terrain.String() + " with layout " + layout.String()
}
