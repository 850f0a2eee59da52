package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecordInput(dept, date string) ConsumptionRecordInput {
	return ConsumptionRecordInput{
		Department:     dept,
		Date:           date,
		ElectricityKWH: 100,
		DieselLiters:   10,
		PetrolLiters:   5,
		LPGKg:          2,
		WaterKL:        3,
		WasteKg:        20,
	}
}

func TestCreateRecordComputesDerivedFields(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	rec, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)

	assert.InDelta(t, 82.0, rec.ElectricityEmissions, 1e-9)
	assert.InDelta(t, 44.31, rec.FuelEmissions, 1e-9)
	assert.InDelta(t, 1.032, rec.WaterEmissions, 1e-9)
	assert.InDelta(t, 11.6, rec.WasteEmissions, 1e-9)
	assert.InDelta(t, 138.942, rec.TotalEmissions, 1e-9)

	/* DERIVED VALUES ARE PERSISTED, NOT JUST RETURNED */
	stored, err := GetConsumptionRecord(inst.ID, rec.ID)
	require.NoError(t, err)
	assert.InDelta(t, 138.942, stored.TotalEmissions, 1e-9)
}

func TestDuplicateRecordConflict(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	_, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_CANTEEN, "2024-02-01"))
	require.NoError(t, err)

	_, err = CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_CANTEEN, "2024-02-01"))
	assert.ErrorIs(t, err, ErrRecordConflict)

	/* SAME DATE, DIFFERENT DEPARTMENT IS FINE */
	_, err = CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_LABS, "2024-02-01"))
	assert.NoError(t, err)

	/* SAME TRIPLE UNDER ANOTHER INSTITUTE IS FINE */
	other := registerTestInstitute(t, "bluetech")
	_, err = CreateConsumptionRecord(other.ID, testRecordInput(DEPT_CANTEEN, "2024-02-01"))
	assert.NoError(t, err)
}

func TestUpdateRecomputesDerivedFields(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	rec, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)

	input := testRecordInput(DEPT_HOSTEL, "2024-01-15")
	input.ElectricityKWH = 200
	updated, err := UpdateConsumptionRecord(inst.ID, rec.ID, input)
	require.NoError(t, err)

	assert.InDelta(t, 164.0, updated.ElectricityEmissions, 1e-9)
	assert.InDelta(t, updated.ElectricityEmissions+updated.FuelEmissions+updated.WaterEmissions+updated.WasteEmissions,
		updated.TotalEmissions, 1e-9)
}

func TestUpdateOntoOccupiedTripleConflicts(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	_, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)
	rec, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-16"))
	require.NoError(t, err)

	_, err = UpdateConsumptionRecord(inst.ID, rec.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	assert.ErrorIs(t, err, ErrRecordConflict)
}

func TestFactorChangeDoesNotAlterStoredRecords(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	rec, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)
	require.InDelta(t, 138.942, rec.TotalEmissions, 1e-9)

	/* DOUBLE THE GRID FACTOR */
	res := CET.DB.Model(&EmissionFactor{}).
		Where("sub_category = ?", SUB_GRID).
		Update("factor", 1.64)
	require.NoError(t, res.Error)

	/* FROZEN SNAPSHOT: THE STORED RECORD IS UNCHANGED */
	stored, err := GetConsumptionRecord(inst.ID, rec.ID)
	require.NoError(t, err)
	assert.InDelta(t, 138.942, stored.TotalEmissions, 1e-9)

	/* A SAVE PICKS UP THE NEW FACTOR */
	updated, err := UpdateConsumptionRecord(inst.ID, rec.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)
	assert.InDelta(t, 164.0, updated.ElectricityEmissions, 1e-9)
}

func TestPatchTouchesOnlyProvidedFields(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	rec, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)

	kwh := 50.0
	patched, err := PatchConsumptionRecord(inst.ID, rec.ID, ConsumptionRecordPatch{ElectricityKWH: &kwh})
	require.NoError(t, err)

	assert.Equal(t, 50.0, patched.ElectricityKWH)
	assert.Equal(t, rec.DieselLiters, patched.DieselLiters)
	assert.Equal(t, rec.Date, patched.Date)
	assert.InDelta(t, 41.0, patched.ElectricityEmissions, 1e-9)
	assert.InDelta(t, rec.FuelEmissions, patched.FuelEmissions, 1e-9)
}

func TestRecordAccessIsScopedToOwner(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	owner := registerTestInstitute(t, "greentech")
	intruder := registerTestInstitute(t, "bluetech")

	rec, err := CreateConsumptionRecord(owner.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)

	_, err = GetConsumptionRecord(intruder.ID, rec.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = DeleteConsumptionRecord(intruder.ID, rec.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	/* STILL THERE FOR THE OWNER */
	_, err = GetConsumptionRecord(owner.ID, rec.ID)
	assert.NoError(t, err)
}

func TestDeleteRecord(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	rec, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, "2024-01-15"))
	require.NoError(t, err)

	require.NoError(t, DeleteConsumptionRecord(inst.ID, rec.ID))

	_, err = GetConsumptionRecord(inst.ID, rec.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordListOrderingAndPeriodFilters(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	inst := registerTestInstitute(t, "greentech")

	dates := []string{"2023-03-10", "2024-03-05", "2024-07-20", "2024-03-15"}
	for _, d := range dates {
		_, err := CreateConsumptionRecord(inst.ID, testRecordInput(DEPT_HOSTEL, d))
		require.NoError(t, err)
	}

	/* DEFAULT ORDER: MOST RECENT DATE FIRST */
	recs, err := GetConsumptionRecordList(inst.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "2024-07-20", recs[0].Date)
	assert.Equal(t, "2023-03-10", recs[3].Date)

	/* YEAR */
	recs, err = GetConsumptionRecordList(inst.ID, 2024, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	/* MONTH ONLY: THAT MONTH ACROSS ALL YEARS */
	recs, err = GetConsumptionRecordList(inst.ID, 0, 3)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	/* YEAR AND MONTH */
	recs, err = GetConsumptionRecordList(inst.ID, 2024, 3)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	registerTestInstitute(t, "greentech")

	_, err := RegisterInstitute(RegisterInstituteInput{
		Username:      "greentech",
		Email:         "other@example.edu",
		Password:      "green-campus-pw",
		InstituteName: "Other Institute",
	})
	assert.Error(t, err)
}

func TestLoginAndRefresh(t *testing.T) {
	setupTestDB(t)
	inst := registerTestInstitute(t, "greentech")

	ires, acc, ref, err := LoginInstitute(LoginInstituteInput{Username: "greentech", Password: "green-campus-pw"})
	require.NoError(t, err)
	assert.Equal(t, inst.ID, ires.ID)
	assert.NotEmpty(t, acc)
	assert.NotEmpty(t, ref)

	claims, err := GetClaimsFromTokenString(acc)
	require.NoError(t, err)
	assert.Equal(t, inst.ID.String(), claims["sub"])

	newAcc, err := RefreshAccessToken(ref)
	require.NoError(t, err)
	assert.NotEmpty(t, newAcc)

	/* GARBAGE IS REJECTED */
	_, err = RefreshAccessToken("not-a-token")
	assert.Error(t, err)

	_, _, _, err = LoginInstitute(LoginInstituteInput{Username: "greentech", Password: "wrong-password"})
	assert.Error(t, err)
}
