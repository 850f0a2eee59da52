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
	"github.com/google/uuid"

	"gorm.io/gorm"
)

/* DEPARTMENTS */
const (
	DEPT_HOSTEL    = "HOSTEL"
	DEPT_CANTEEN   = "CANTEEN"
	DEPT_ADMIN     = "ADMIN"
	DEPT_LABS      = "LABS"
	DEPT_TRANSPORT = "TRANSPORT"
)

var DepartmentDisplayNames = map[string]string{
	DEPT_HOSTEL:    "Hostel",
	DEPT_CANTEEN:   "Canteen",
	DEPT_ADMIN:     "Administration",
	DEPT_LABS:      "Laboratories",
	DEPT_TRANSPORT: "Transport",
}

/*
	CONSUMPTION RECORD

ONE INSTITUTE / DEPARTMENT / DATE; RAW QUANTITIES AS SUBMITTED PLUS THE
EMISSIONS DERIVED FROM THEM, FROZEN AT SAVE TIME FOR AUDIT STABILITY.
DATES ARE ISO YYYY-MM-DD STRINGS; LEXICAL ORDER IS CHRONOLOGICAL ORDER.
*/
type ConsumptionRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InstituteID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_institute_dept_date" json:"-"`
	Institute   Institute `gorm:"foreignKey:InstituteID" json:"-"`
	Department  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_record_institute_dept_date" json:"department"`
	Date        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_record_institute_dept_date" json:"date"`

	/* RAW CONSUMPTION */
	ElectricityKWH float64 `gorm:"default:0" json:"electricity_kwh"`
	DieselLiters   float64 `gorm:"default:0" json:"diesel_liters"`
	PetrolLiters   float64 `gorm:"default:0" json:"petrol_liters"`
	LPGKg          float64 `gorm:"default:0" json:"lpg_kg"`
	WaterKL        float64 `gorm:"default:0" json:"water_kl"`
	WasteKg        float64 `gorm:"default:0" json:"waste_kg"`

	/* DERIVED EMISSIONS - REWRITTEN ON EVERY SAVE, NEVER CLIENT-SUPPLIED */
	ElectricityEmissions float64 `gorm:"default:0" json:"electricity_emissions"`
	FuelEmissions        float64 `gorm:"default:0" json:"fuel_emissions"`
	WaterEmissions       float64 `gorm:"default:0" json:"water_emissions"`
	WasteEmissions       float64 `gorm:"default:0" json:"waste_emissions"`
	TotalEmissions       float64 `gorm:"default:0" json:"total_emissions"`

	CreatedAt int64 `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli" json:"updated_at"`
}

/* STORE-SIDE WRITE HOOK; KEEPS DERIVED FIELDS CONSISTENT WITH RAW FIELDS AND
THE FACTOR TABLE AT SAVE TIME REGARDLESS OF WHICH CODE PATH PERSISTS THE RECORD */
func (rec *ConsumptionRecord) BeforeSave(tx *gorm.DB) (err error) {

	lookup, err := EmissionFactorLookup(tx.Session(&gorm.Session{NewDB: true}))
	if err != nil {
		return err
	}

	rec.ApplyDerived(ComputeEmissions(rec.Raw(), lookup))
	return
}

func (rec *ConsumptionRecord) Raw() RawConsumption {
	return RawConsumption{
		ElectricityKWH: rec.ElectricityKWH,
		DieselLiters:   rec.DieselLiters,
		PetrolLiters:   rec.PetrolLiters,
		LPGKg:          rec.LPGKg,
		WaterKL:        rec.WaterKL,
		WasteKg:        rec.WasteKg,
	}
}

func (rec *ConsumptionRecord) ApplyDerived(d DerivedEmissions) {
	rec.ElectricityEmissions = d.Electricity
	rec.FuelEmissions = d.Fuel
	rec.WaterEmissions = d.Water
	rec.WasteEmissions = d.Waste
	rec.TotalEmissions = d.Total
}

type ConsumptionRecordInput struct {
	Department     string  `json:"department" validate:"required,oneof=HOSTEL CANTEEN ADMIN LABS TRANSPORT"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	ElectricityKWH float64 `json:"electricity_kwh" validate:"min=0"`
	DieselLiters   float64 `json:"diesel_liters" validate:"min=0"`
	PetrolLiters   float64 `json:"petrol_liters" validate:"min=0"`
	LPGKg          float64 `json:"lpg_kg" validate:"min=0"`
	WaterKL        float64 `json:"water_kl" validate:"min=0"`
	WasteKg        float64 `json:"waste_kg" validate:"min=0"`
}

/* PARTIAL UPDATE (PATCH); ONLY FIELDS PRESENT IN THE BODY ARE TOUCHED */
type ConsumptionRecordPatch struct {
	Department     *string  `json:"department" validate:"omitempty,oneof=HOSTEL CANTEEN ADMIN LABS TRANSPORT"`
	Date           *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ElectricityKWH *float64 `json:"electricity_kwh" validate:"omitempty,min=0"`
	DieselLiters   *float64 `json:"diesel_liters" validate:"omitempty,min=0"`
	PetrolLiters   *float64 `json:"petrol_liters" validate:"omitempty,min=0"`
	LPGKg          *float64 `json:"lpg_kg" validate:"omitempty,min=0"`
	WaterKL        *float64 `json:"water_kl" validate:"omitempty,min=0"`
	WasteKg        *float64 `json:"waste_kg" validate:"omitempty,min=0"`
}

type ConsumptionRecordResponse struct {
	ConsumptionRecord
	DepartmentDisplay string `json:"department_display"`
}

func (rec *ConsumptionRecord) FilterRecord() ConsumptionRecordResponse {
	return ConsumptionRecordResponse{
		ConsumptionRecord: *rec,
		DepartmentDisplay: DepartmentDisplayNames[rec.Department],
	}
}
