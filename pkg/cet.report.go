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
	"sort"
	"time"

	"github.com/go-pdf/fpdf" // go get github.com/go-pdf/fpdf

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

/* ALWAYS THE SAME FIVE BULLETS; CONTENT-INDEPENDENT OF THE DATA */
var ReportRecommendations = []string{
	"Switch to LED lighting in high-consumption areas to reduce electricity usage.",
	"Implement rainwater harvesting to reduce municipal water dependency.",
	"Set up composting facilities for organic waste management.",
	"Consider solar panels for renewable energy generation.",
	"Promote public transport and carpooling among staff and students.",
}

var reportPrinter = message.NewPrinter(language.English)

/* THOUSANDS SEPARATORS + 2 DECIMALS, e.g. 12,345.68 */
func FormatReportValue(v float64) string {
	return reportPrinter.Sprintf("%v",
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func ReportFilename(inst Institute, generated time.Time, ext string) string {
	return fmt.Sprintf("carbon_report_%s_%s.%s", inst.Username, generated.Format("20060102"), ext)
}

/*
	REPORT RENDERER

FIXED-LAYOUT PDF: TITLE, INSTITUTE IDENTITY, GENERATION DATE, OPTIONAL PERIOD,
SUMMARY TABLE, DEPARTMENT TABLE (OR PLACEHOLDER), RECOMMENDATIONS.
*/
func RenderEmissionsReport(inst Institute, stats DashboardStats, year int, generated time.Time) (doc []byte, err error) {

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	/* TITLE */
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(26, 54, 93)
	pdf.CellFormat(0, 14, "Carbon Emissions Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	/* IDENTITY */
	name := inst.InstituteName
	if name == "" {
		name = inst.Username
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, fmt.Sprintf("Institute: %s", name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", generated.Format("January 02, 2006")), "", 1, "L", false, 0, "")
	if year > 0 {
		pdf.CellFormat(0, 6, fmt.Sprintf("Period: Year %d", year), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	/* SUMMARY */
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(43, 108, 176)
	pdf.CellFormat(0, 9, "Executive Summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	summaryRows := [][2]string{
		{"Total Emissions", FormatReportValue(stats.TotalEmissions)},
		{"Electricity", FormatReportValue(stats.ElectricityEmissions)},
		{"Fuel", FormatReportValue(stats.FuelEmissions)},
		{"Water", FormatReportValue(stats.WaterEmissions)},
		{"Waste", FormatReportValue(stats.WasteEmissions)},
	}
	renderReportTable(pdf, "Emission Category", "Value (kg CO2e)", summaryRows,
		[3]int{43, 108, 176}, [3]int{235, 248, 255})
	pdf.Ln(8)

	/* DEPARTMENT BREAKDOWN */
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(43, 108, 176)
	pdf.CellFormat(0, 9, "Department-wise Breakdown", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	depts := make([]string, 0, len(stats.DepartmentBreakdown))
	for dept := range stats.DepartmentBreakdown {
		depts = append(depts, dept)
	}
	sort.Strings(depts)

	if len(depts) > 0 {
		deptRows := [][2]string{}
		for _, dept := range depts {
			deptRows = append(deptRows, [2]string{
				DepartmentDisplayNames[dept],
				FormatReportValue(stats.DepartmentBreakdown[dept]),
			})
		}
		renderReportTable(pdf, "Department", "Emissions (kg CO2e)", deptRows,
			[3]int{56, 161, 105}, [3]int{240, 255, 244})
	} else {
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6, "No department data available.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	/* RECOMMENDATIONS */
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(43, 108, 176)
	pdf.CellFormat(0, 9, "Recommendations", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, rec := range ReportRecommendations {
		pdf.MultiCell(0, 6, fmt.Sprintf("- %s", rec), "", "L", false)
		pdf.Ln(1)
	}

	out := bytes.Buffer{}
	if err = pdf.Output(&out); err != nil {
		return nil, LogErr(err)
	}
	return out.Bytes(), nil
}

func renderReportTable(pdf *fpdf.Fpdf, leftHead, rightHead string, rows [][2]string, headRGB, rowRGB [3]int) {

	colW := [2]float64{95.0, 65.0}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(headRGB[0], headRGB[1], headRGB[2])
	pdf.CellFormat(colW[0], 10, leftHead, "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 10, rightHead, "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(rowRGB[0], rowRGB[1], rowRGB[2])
	for _, row := range rows {
		pdf.CellFormat(colW[0], 8, row[0], "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, row[1], "1", 1, "C", true, 0, "")
	}
}
