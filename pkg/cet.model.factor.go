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
	"gorm.io/gorm"
)

/* EMISSION CATEGORIES */
const (
	CAT_ELECTRICITY = "ELECTRICITY"
	CAT_FUEL        = "FUEL"
	CAT_WATER       = "WATER"
	CAT_WASTE       = "WASTE"
)

/* EMISSION SUB-CATEGORIES */
const (
	SUB_GRID            = "GRID"
	SUB_DIESEL          = "DIESEL"
	SUB_PETROL          = "PETROL"
	SUB_LPG             = "LPG"
	SUB_CNG             = "CNG"
	SUB_MUNICIPAL_WATER = "MUNICIPAL_WATER"
	SUB_ORGANIC_WASTE   = "ORGANIC_WASTE"
	SUB_PLASTIC_WASTE   = "PLASTIC_WASTE"
	SUB_E_WASTE         = "E_WASTE"
	SUB_GENERAL_WASTE   = "GENERAL_WASTE"
)

var CategoryDisplayNames = map[string]string{
	CAT_ELECTRICITY: "Electricity",
	CAT_FUEL:        "Fuel",
	CAT_WATER:       "Water",
	CAT_WASTE:       "Waste",
}

var SubCategoryDisplayNames = map[string]string{
	SUB_GRID:            "Grid Electricity",
	SUB_DIESEL:          "Diesel",
	SUB_PETROL:          "Petrol",
	SUB_LPG:             "LPG",
	SUB_CNG:             "CNG",
	SUB_MUNICIPAL_WATER: "Municipal Water",
	SUB_ORGANIC_WASTE:   "Organic Waste",
	SUB_PLASTIC_WASTE:   "Plastic Waste",
	SUB_E_WASTE:         "E-Waste",
	SUB_GENERAL_WASTE:   "General Waste",
}

/*
	EMISSION FACTOR

A CONVERSION CONSTANT (kg CO2e PER UNIT OF RESOURCE); STATIC REFERENCE DATA.
AT MOST ONE ACTIVE FACTOR PER (CATEGORY, SUB_CATEGORY) PAIR.
*/
type EmissionFactor struct {
	ID          uint    `gorm:"primaryKey"`
	Category    string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_factor_category_sub"`
	SubCategory string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_factor_category_sub"`
	Factor      float64 `gorm:"not null"`
	Unit        string  `gorm:"type:varchar(50)"`
	Description string  `gorm:"type:text"`
	Source      string  `gorm:"type:varchar(255)"`
}

type EmissionFactorResponse struct {
	ID                 uint    `json:"id"`
	Category           string  `json:"category"`
	CategoryDisplay    string  `json:"category_display"`
	SubCategory        string  `json:"sub_category"`
	SubCategoryDisplay string  `json:"sub_category_display"`
	Factor             float64 `json:"factor"`
	Unit               string  `json:"unit"`
	Description        string  `json:"description"`
	Source             string  `json:"source"`
}

func (ef *EmissionFactor) FilterFactorRecord() EmissionFactorResponse {
	return EmissionFactorResponse{
		ID:                 ef.ID,
		Category:           ef.Category,
		CategoryDisplay:    CategoryDisplayNames[ef.Category],
		SubCategory:        ef.SubCategory,
		SubCategoryDisplay: SubCategoryDisplayNames[ef.SubCategory],
		Factor:             ef.Factor,
		Unit:               ef.Unit,
		Description:        ef.Description,
		Source:             ef.Source,
	}
}

/* STANDARD FACTORS; SOURCES: EPA, IPCC, INDIA GHG PROGRAM */
var EmissionFactorSeed = []EmissionFactor{
	{Category: CAT_ELECTRICITY, SubCategory: SUB_GRID, Factor: 0.82, Unit: "kWh",
		Description: "CO2 emissions from Indian grid electricity", Source: "India GHG Program / CEA 2023"},

	{Category: CAT_FUEL, SubCategory: SUB_DIESEL, Factor: 2.68, Unit: "liter",
		Description: "CO2 emissions from diesel combustion", Source: "IPCC 2006 Guidelines"},
	{Category: CAT_FUEL, SubCategory: SUB_PETROL, Factor: 2.31, Unit: "liter",
		Description: "CO2 emissions from petrol/gasoline combustion", Source: "IPCC 2006 Guidelines"},
	{Category: CAT_FUEL, SubCategory: SUB_LPG, Factor: 2.98, Unit: "kg",
		Description: "CO2 emissions from LPG combustion", Source: "IPCC 2006 Guidelines"},
	{Category: CAT_FUEL, SubCategory: SUB_CNG, Factor: 2.75, Unit: "kg",
		Description: "CO2 emissions from CNG combustion", Source: "IPCC 2006 Guidelines"},

	{Category: CAT_WATER, SubCategory: SUB_MUNICIPAL_WATER, Factor: 0.344, Unit: "kL",
		Description: "CO2 emissions from water treatment and distribution", Source: "Water Research Foundation"},

	{Category: CAT_WASTE, SubCategory: SUB_ORGANIC_WASTE, Factor: 0.58, Unit: "kg",
		Description: "CO2e emissions from organic waste decomposition", Source: "EPA WARM Model"},
	{Category: CAT_WASTE, SubCategory: SUB_PLASTIC_WASTE, Factor: 6.0, Unit: "kg",
		Description: "CO2e emissions from plastic waste (lifecycle)", Source: "EPA WARM Model"},
	{Category: CAT_WASTE, SubCategory: SUB_E_WASTE, Factor: 2.0, Unit: "kg",
		Description: "CO2e emissions from e-waste processing", Source: "Estimated"},
	{Category: CAT_WASTE, SubCategory: SUB_GENERAL_WASTE, Factor: 0.58, Unit: "kg",
		Description: "CO2e emissions from general mixed waste", Source: "EPA WARM Model"},
}

/* UPSERT THE STANDARD FACTOR TABLE BY (CATEGORY, SUB_CATEGORY) */
func SeedEmissionFactors(db *gorm.DB) (err error) {

	for _, seed := range EmissionFactorSeed {

		ef := EmissionFactor{}
		res := db.
			Where(EmissionFactor{Category: seed.Category, SubCategory: seed.SubCategory}).
			Assign(EmissionFactor{
				Factor:      seed.Factor,
				Unit:        seed.Unit,
				Description: seed.Description,
				Source:      seed.Source,
			}).
			FirstOrCreate(&ef)

		if res.Error != nil {
			return LogErr(res.Error)
		}
	}
	return
}

/* CURRENT FACTOR TABLE AS A SUB_CATEGORY -> FACTOR LOOKUP */
func EmissionFactorLookup(db *gorm.DB) (lookup map[string]float64, err error) {

	factors := []EmissionFactor{}
	if res := db.Find(&factors); res.Error != nil {
		err = res.Error
		return
	}

	lookup = make(map[string]float64, len(factors))
	for _, ef := range factors {
		lookup[ef.SubCategory] = ef.Factor
	}
	return
}

func GetEmissionFactorList() (factors []EmissionFactorResponse, err error) {

	efs := []EmissionFactor{}
	res := CET.DB.Order("category, sub_category").Find(&efs)
	if res.Error != nil {
		err = res.Error
		return
	}

	for i := range efs {
		factors = append(factors, efs[i].FilterFactorRecord())
	}
	return
}
