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
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("Consumption record not found")
var ErrRecordConflict = errors.New("A record for this department and date already exists")

/*
	CONSUMPTION RECORD STORE

ALL QUERIES ARE SCOPED BY THE OWNING INSTITUTE; A RECORD ID ALONE NEVER
GRANTS ACCESS. YEAR / MONTH FILTERS ARE OPTIONAL AND COMBINE WITH AND.
*/

/* DATES ARE ISO STRINGS SO PERIOD FILTERS REDUCE TO LIKE PATTERNS */
func datePeriodPattern(year, month int) string {
	switch {
	case year > 0 && month > 0:
		return fmt.Sprintf("%04d-%02d-%%", year, month)
	case year > 0:
		return fmt.Sprintf("%04d-%%", year)
	case month > 0:
		return fmt.Sprintf("%%-%02d-%%", month)
	}
	return ""
}

func GetConsumptionRecordList(instID uuid.UUID, year, month int) (recs []ConsumptionRecord, err error) {

	qry := CET.DB.Where("institute_id = ?", instID)
	if pattern := datePeriodPattern(year, month); pattern != "" {
		qry = qry.Where("date LIKE ?", pattern)
	}

	res := qry.Order("date DESC").Find(&recs)
	if res.Error != nil {
		err = fmt.Errorf("Failed to retrieve consumption records: %s", res.Error.Error())
	}
	return
}

func GetConsumptionRecord(instID uuid.UUID, recID uint) (rec ConsumptionRecord, err error) {

	res := CET.DB.Where("institute_id = ? AND id = ?", instID, recID).First(&rec)
	if res.Error != nil {
		/* NEVER LEAK WHETHER THE ID EXISTS UNDER ANOTHER INSTITUTE */
		err = ErrRecordNotFound
	}
	return
}

/* DERIVED FIELDS ARE COMPUTED BY THE ConsumptionRecord BeforeSave HOOK */
func CreateConsumptionRecord(instID uuid.UUID, input ConsumptionRecordInput) (rec ConsumptionRecord, err error) {

	rec = ConsumptionRecord{
		InstituteID:    instID,
		Department:     input.Department,
		Date:           input.Date,
		ElectricityKWH: input.ElectricityKWH,
		DieselLiters:   input.DieselLiters,
		PetrolLiters:   input.PetrolLiters,
		LPGKg:          input.LPGKg,
		WaterKL:        input.WaterKL,
		WasteKg:        input.WasteKg,
	}

	if res := CET.DB.Create(&rec); res.Error != nil {
		if isDuplicateKeyErr(res.Error) {
			err = ErrRecordConflict
		} else {
			err = fmt.Errorf("Failed to create consumption record: %s", res.Error.Error())
		}
	}
	return
}

/* FULL REPLACE (PUT); THE (INSTITUTE, DEPARTMENT, DATE) TRIPLE MAY MOVE,
BUT ONLY ONTO AN UNOCCUPIED KEY */
func UpdateConsumptionRecord(instID uuid.UUID, recID uint, input ConsumptionRecordInput) (rec ConsumptionRecord, err error) {

	if rec, err = GetConsumptionRecord(instID, recID); err != nil {
		return
	}

	rec.Department = input.Department
	rec.Date = input.Date
	rec.ElectricityKWH = input.ElectricityKWH
	rec.DieselLiters = input.DieselLiters
	rec.PetrolLiters = input.PetrolLiters
	rec.LPGKg = input.LPGKg
	rec.WaterKL = input.WaterKL
	rec.WasteKg = input.WasteKg

	err = saveConsumptionRecord(&rec)
	return
}

/* PARTIAL UPDATE (PATCH) */
func PatchConsumptionRecord(instID uuid.UUID, recID uint, patch ConsumptionRecordPatch) (rec ConsumptionRecord, err error) {

	if rec, err = GetConsumptionRecord(instID, recID); err != nil {
		return
	}

	if patch.Department != nil {
		rec.Department = *patch.Department
	}
	if patch.Date != nil {
		rec.Date = *patch.Date
	}
	if patch.ElectricityKWH != nil {
		rec.ElectricityKWH = *patch.ElectricityKWH
	}
	if patch.DieselLiters != nil {
		rec.DieselLiters = *patch.DieselLiters
	}
	if patch.PetrolLiters != nil {
		rec.PetrolLiters = *patch.PetrolLiters
	}
	if patch.LPGKg != nil {
		rec.LPGKg = *patch.LPGKg
	}
	if patch.WaterKL != nil {
		rec.WaterKL = *patch.WaterKL
	}
	if patch.WasteKg != nil {
		rec.WasteKg = *patch.WasteKg
	}

	err = saveConsumptionRecord(&rec)
	return
}

func saveConsumptionRecord(rec *ConsumptionRecord) (err error) {

	/* REJECT A MOVE ONTO AN OCCUPIED (INSTITUTE, DEPARTMENT, DATE) BEFORE WRITING;
	THE UNIQUE INDEX REMAINS THE BACKSTOP FOR CONCURRENT WRITERS */
	dupe := ConsumptionRecord{}
	res := CET.DB.
		Where("institute_id = ? AND department = ? AND date = ? AND id <> ?",
			rec.InstituteID, rec.Department, rec.Date, rec.ID).
		First(&dupe)
	if res.Error == nil {
		return ErrRecordConflict
	}
	if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("Failed to check record uniqueness: %s", res.Error.Error())
	}

	if res := CET.DB.Save(rec); res.Error != nil {
		if isDuplicateKeyErr(res.Error) {
			return ErrRecordConflict
		}
		return fmt.Errorf("Failed to save consumption record: %s", res.Error.Error())
	}
	return
}

func DeleteConsumptionRecord(instID uuid.UUID, recID uint) (err error) {

	rec, err := GetConsumptionRecord(instID, recID)
	if err != nil {
		return
	}

	if res := CET.DB.Delete(&rec); res.Error != nil {
		err = fmt.Errorf("Failed to delete consumption record: %s", res.Error.Error())
	}
	return
}
