/* Campus Emissions Tracker (CET) is a component of the DataCan GreenDesk (GD) Platform.
License:

	[PROPER LEGALESE HERE...]

	INTERIM LICENSE DESCRIPTION:
	In spirit, this license:
	1. Allows <Third Party> to use, modify, and / or distributre this software in perpetuity so long as <Third Party> understands:
		a. The software is porvided as is without guarantee of additional support from DataCan in any form.
		b. The software is porvided as is without guarantee of exclusivity.

	2. Prohibits <Third Party> from taking any action which might interfere with DataCan's right to use, modify and / or distributre this software in perpetuity.
*/

package pkg

/* RAW CONSUMPTION QUANTITIES FOR ONE DEPARTMENT ON ONE DATE */
type RawConsumption struct {
	ElectricityKWH float64
	DieselLiters   float64
	PetrolLiters   float64
	LPGKg          float64
	WaterKL        float64
	WasteKg        float64
}

/* EMISSIONS IN kg CO2e; NO ROUNDING APPLIED HERE - ROUNDING IS A PRESENTATION CONCERN */
type DerivedEmissions struct {
	Electricity float64
	Fuel        float64
	Water       float64
	Waste       float64
	Total       float64
}

/* FALLBACKS FOR AN ABSENT OR PARTIALLY SEEDED FACTOR TABLE;
THE CALCULATOR NEVER FAILS OUTRIGHT FOR MISSING REFERENCE DATA */
var DefaultEmissionFactors = map[string]float64{
	SUB_GRID:            0.82,
	SUB_DIESEL:          2.68,
	SUB_PETROL:          2.31,
	SUB_LPG:             2.98,
	SUB_MUNICIPAL_WATER: 0.344,
	SUB_GENERAL_WASTE:   0.58,
}

func FactorOrDefault(lookup map[string]float64, subCategory string) float64 {
	if f, ok := lookup[subCategory]; ok {
		return f
	}
	return DefaultEmissionFactors[subCategory]
}

/*
	EMISSIONS CALCULATOR

PURE FUNCTION; INVOKED SYNCHRONOUSLY ON EVERY SAVE OF A CONSUMPTION RECORD
SO THE STORED DERIVED FIELDS ARE NEVER STALE RELATIVE TO THE RAW FIELDS.
NEGATIVE QUANTITIES ARE CLAMPED TO ZERO.
*/
func ComputeEmissions(raw RawConsumption, lookup map[string]float64) (d DerivedEmissions) {

	d.Electricity = clampNonNegative(raw.ElectricityKWH) * FactorOrDefault(lookup, SUB_GRID)

	d.Fuel = clampNonNegative(raw.DieselLiters)*FactorOrDefault(lookup, SUB_DIESEL) +
		clampNonNegative(raw.PetrolLiters)*FactorOrDefault(lookup, SUB_PETROL) +
		clampNonNegative(raw.LPGKg)*FactorOrDefault(lookup, SUB_LPG)

	d.Water = clampNonNegative(raw.WaterKL) * FactorOrDefault(lookup, SUB_MUNICIPAL_WATER)

	d.Waste = clampNonNegative(raw.WasteKg) * FactorOrDefault(lookup, SUB_GENERAL_WASTE)

	d.Total = d.Electricity + d.Fuel + d.Water + d.Waste
	return
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
