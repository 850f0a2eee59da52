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

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2" // go get github.com/xuri/excelize/v2
)

/*
	XLSX EXPORT

ONE ROW PER CONSUMPTION RECORD PLUS A SUMMARY SHEET; SUMS ARE THE SAME
2-DECIMAL AGGREGATION-BOUNDARY VALUES THE DASHBOARD REPORTS.
*/
func RenderConsumptionWorkbook(inst Institute, records []ConsumptionRecord, stats DashboardStats) (doc []byte, err error) {

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err = f.SetSheetName(sheet, "Records"); err != nil {
		return nil, LogErr(err)
	}
	sheet = "Records"

	header := []interface{}{
		"date",
		"department",
		"electricity_kwh",
		"diesel_liters",
		"petrol_liters",
		"lpg_kg",
		"water_kl",
		"waste_kg",
		"electricity_emissions",
		"fuel_emissions",
		"water_emissions",
		"waste_emissions",
		"total_emissions",
	}
	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, LogErr(err)
	}

	row := 2
	for _, rec := range records {
		cell, cellErr := excelize.CoordinatesToCellName(1, row)
		if cellErr != nil {
			return nil, LogErr(cellErr)
		}
		values := []interface{}{
			rec.Date,
			rec.Department,
			rec.ElectricityKWH,
			rec.DieselLiters,
			rec.PetrolLiters,
			rec.LPGKg,
			rec.WaterKL,
			rec.WasteKg,
			rec.ElectricityEmissions,
			rec.FuelEmissions,
			rec.WaterEmissions,
			rec.WasteEmissions,
			rec.TotalEmissions,
		}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, LogErr(err)
		}
		row++
	}

	/* SUMMARY SHEET */
	if _, err = f.NewSheet("Summary"); err != nil {
		return nil, LogErr(err)
	}

	name := inst.InstituteName
	if name == "" {
		name = inst.Username
	}
	summary := [][]interface{}{
		{"Institute", name},
		{"Record Count", stats.RecordCount},
		{"Total Emissions (kg CO2e)", stats.TotalEmissions},
		{"Electricity (kg CO2e)", stats.ElectricityEmissions},
		{"Fuel (kg CO2e)", stats.FuelEmissions},
		{"Water (kg CO2e)", stats.WaterEmissions},
		{"Waste (kg CO2e)", stats.WasteEmissions},
	}
	for i := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err = f.SetSheetRow("Summary", cell, &summary[i]); err != nil {
			return nil, LogErr(err)
		}
	}

	out := bytes.Buffer{}
	if err = f.Write(&out); err != nil {
		return nil, LogErr(err)
	}
	return out.Bytes(), nil
}
