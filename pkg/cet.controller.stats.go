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
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat" // go get gonum.org/v1/gonum/...
)

/* ALL AGGREGATION OUTPUT IS ROUNDED TO 2 DECIMAL PLACES AT THIS BOUNDARY */
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type MonthlyTrendEntry struct {
	Month                string  `json:"month"`
	TotalEmissions       float64 `json:"total_emissions"`
	ElectricityEmissions float64 `json:"electricity_emissions"`
	FuelEmissions        float64 `json:"fuel_emissions"`
	WaterEmissions       float64 `json:"water_emissions"`
	WasteEmissions       float64 `json:"waste_emissions"`
}

type DashboardStats struct {
	TotalEmissions       float64 `json:"total_emissions"`
	ElectricityEmissions float64 `json:"electricity_emissions"`
	FuelEmissions        float64 `json:"fuel_emissions"`
	WaterEmissions       float64 `json:"water_emissions"`
	WasteEmissions       float64 `json:"waste_emissions"`

	/* PER-DEPARTMENT TOTALS; JSON KEYS MARSHAL IN DEPARTMENT-CODE ORDER */
	DepartmentBreakdown map[string]float64 `json:"department_breakdown"`

	/* TRAILING 365 DAYS, OLDEST FIRST, MONTHS WITH DATA ONLY */
	MonthlyTrend []MonthlyTrendEntry `json:"monthly_trend"`

	/* MEAN / STANDARD DEVIATION OVER THE MONTHLY TOTALS ABOVE */
	MonthlyMean   float64 `json:"monthly_mean"`
	MonthlyStdDev float64 `json:"monthly_std_dev"`

	RecordCount int `json:"record_count"`
}

type DepartmentConsumption struct {
	ElectricityKWH float64 `json:"electricity_kwh"`
	DieselLiters   float64 `json:"diesel_liters"`
	PetrolLiters   float64 `json:"petrol_liters"`
	LPGKg          float64 `json:"lpg_kg"`
	WaterKL        float64 `json:"water_kl"`
	WasteKg        float64 `json:"waste_kg"`
}

type DepartmentComparison struct {
	Department           string                `json:"department"`
	DepartmentName       string                `json:"department_name"`
	TotalEmissions       float64               `json:"total_emissions"`
	ElectricityEmissions float64               `json:"electricity_emissions"`
	FuelEmissions        float64               `json:"fuel_emissions"`
	WaterEmissions       float64               `json:"water_emissions"`
	WasteEmissions       float64               `json:"waste_emissions"`
	Consumption          DepartmentConsumption `json:"consumption"`
}

/*
	AGGREGATION ENGINE

filtered IS THE PERIOD-FILTERED SET; trendSource IS THE INSTITUTE'S FULL SET.
THE MONTHLY TREND ALWAYS COVERS THE TRAILING 365 DAYS FROM now REGARDLESS OF
THE PERIOD FILTER. AN EMPTY SET YIELDS ALL-ZERO STATS, NOT AN ERROR.
*/
func AggregateStats(filtered, trendSource []ConsumptionRecord, now time.Time) (stats DashboardStats) {

	stats.DepartmentBreakdown = map[string]float64{}
	stats.MonthlyTrend = []MonthlyTrendEntry{}
	stats.RecordCount = len(filtered)

	deptTotals := map[string]float64{}
	for _, rec := range filtered {
		stats.TotalEmissions += rec.TotalEmissions
		stats.ElectricityEmissions += rec.ElectricityEmissions
		stats.FuelEmissions += rec.FuelEmissions
		stats.WaterEmissions += rec.WaterEmissions
		stats.WasteEmissions += rec.WasteEmissions
		deptTotals[rec.Department] += rec.TotalEmissions
	}

	stats.TotalEmissions = Round2(stats.TotalEmissions)
	stats.ElectricityEmissions = Round2(stats.ElectricityEmissions)
	stats.FuelEmissions = Round2(stats.FuelEmissions)
	stats.WaterEmissions = Round2(stats.WaterEmissions)
	stats.WasteEmissions = Round2(stats.WasteEmissions)

	for dept, total := range deptTotals {
		stats.DepartmentBreakdown[dept] = Round2(total)
	}

	/* MONTHLY TREND */
	cutoff := now.AddDate(0, 0, -365).Format("2006-01-02")
	byMonth := map[string]*MonthlyTrendEntry{}
	for i := range trendSource {
		rec := &trendSource[i]
		if rec.Date < cutoff || len(rec.Date) < 7 {
			continue
		}
		month := rec.Date[:7] // YYYY-MM
		entry, ok := byMonth[month]
		if !ok {
			entry = &MonthlyTrendEntry{Month: month}
			byMonth[month] = entry
		}
		entry.TotalEmissions += rec.TotalEmissions
		entry.ElectricityEmissions += rec.ElectricityEmissions
		entry.FuelEmissions += rec.FuelEmissions
		entry.WaterEmissions += rec.WaterEmissions
		entry.WasteEmissions += rec.WasteEmissions
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	monthlyTotals := []float64{}
	for _, month := range months {
		entry := byMonth[month]
		stats.MonthlyTrend = append(stats.MonthlyTrend, MonthlyTrendEntry{
			Month:                entry.Month,
			TotalEmissions:       Round2(entry.TotalEmissions),
			ElectricityEmissions: Round2(entry.ElectricityEmissions),
			FuelEmissions:        Round2(entry.FuelEmissions),
			WaterEmissions:       Round2(entry.WaterEmissions),
			WasteEmissions:       Round2(entry.WasteEmissions),
		})
		monthlyTotals = append(monthlyTotals, entry.TotalEmissions)
	}

	if len(monthlyTotals) > 0 {
		mean, std := stat.MeanStdDev(monthlyTotals, nil)
		stats.MonthlyMean = Round2(mean)
		if len(monthlyTotals) > 1 {
			stats.MonthlyStdDev = Round2(std)
		}
	}

	return
}

/* SUMS BOTH DERIVED AND RAW FIELDS PER DEPARTMENT, STABLE IN DEPARTMENT-CODE
ORDER REGARDLESS OF RECORD INSERTION ORDER */
func CompareByDepartment(records []ConsumptionRecord) (comparison []DepartmentComparison) {

	comparison = []DepartmentComparison{}

	byDept := map[string]*DepartmentComparison{}
	for _, rec := range records {
		dc, ok := byDept[rec.Department]
		if !ok {
			dc = &DepartmentComparison{
				Department:     rec.Department,
				DepartmentName: DepartmentDisplayNames[rec.Department],
			}
			byDept[rec.Department] = dc
		}
		dc.TotalEmissions += rec.TotalEmissions
		dc.ElectricityEmissions += rec.ElectricityEmissions
		dc.FuelEmissions += rec.FuelEmissions
		dc.WaterEmissions += rec.WaterEmissions
		dc.WasteEmissions += rec.WasteEmissions
		dc.Consumption.ElectricityKWH += rec.ElectricityKWH
		dc.Consumption.DieselLiters += rec.DieselLiters
		dc.Consumption.PetrolLiters += rec.PetrolLiters
		dc.Consumption.LPGKg += rec.LPGKg
		dc.Consumption.WaterKL += rec.WaterKL
		dc.Consumption.WasteKg += rec.WasteKg
	}

	depts := make([]string, 0, len(byDept))
	for dept := range byDept {
		depts = append(depts, dept)
	}
	sort.Strings(depts)

	for _, dept := range depts {
		dc := byDept[dept]
		comparison = append(comparison, DepartmentComparison{
			Department:           dc.Department,
			DepartmentName:       dc.DepartmentName,
			TotalEmissions:       Round2(dc.TotalEmissions),
			ElectricityEmissions: Round2(dc.ElectricityEmissions),
			FuelEmissions:        Round2(dc.FuelEmissions),
			WaterEmissions:       Round2(dc.WaterEmissions),
			WasteEmissions:       Round2(dc.WasteEmissions),
			Consumption: DepartmentConsumption{
				ElectricityKWH: Round2(dc.Consumption.ElectricityKWH),
				DieselLiters:   Round2(dc.Consumption.DieselLiters),
				PetrolLiters:   Round2(dc.Consumption.PetrolLiters),
				LPGKg:          Round2(dc.Consumption.LPGKg),
				WaterKL:        Round2(dc.Consumption.WaterKL),
				WasteKg:        Round2(dc.Consumption.WasteKg),
			},
		})
	}

	return
}

func GetDashboardStats(instID uuid.UUID, year, month int) (stats DashboardStats, err error) {

	filtered, err := GetConsumptionRecordList(instID, year, month)
	if err != nil {
		return
	}

	trendSource := filtered
	if year > 0 || month > 0 {
		if trendSource, err = GetConsumptionRecordList(instID, 0, 0); err != nil {
			return
		}
	}

	stats = AggregateStats(filtered, trendSource, time.Now().UTC())
	return
}

func GetDepartmentComparison(instID uuid.UUID) (comparison []DepartmentComparison, err error) {

	records, err := GetConsumptionRecordList(instID, 0, 0)
	if err != nil {
		return
	}

	comparison = CompareByDepartment(records)
	return
}
