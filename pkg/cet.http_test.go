package pkg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method, target, token string, body interface{}) *http.Request {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func registerBody(username string) fiber.Map {
	return fiber.Map{
		"username":       username,
		"email":          username + "@example.edu",
		"password":       "green-campus-pw",
		"institute_name": "Test Institute of Technology",
		"city":           "Pune",
		"state":          "Maharashtra",
	}
}

func recordBody(dept, date string) fiber.Map {
	return fiber.Map{
		"department":      dept,
		"date":            date,
		"electricity_kwh": 100.0,
		"diesel_liters":   10.0,
		"petrol_liters":   5.0,
		"lpg_kg":          2.0,
		"water_kl":        3.0,
		"waste_kg":        20.0,
	}
}

/* REGISTER + LOGIN AGAINST THE LIVE ROUTES, RETURNS AN ACCESS TOKEN */
func loginTestInstitute(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	res, err := app.Test(jsonRequest(t, "POST", "/auth/register", "", registerBody(username)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	res, err = app.Test(jsonRequest(t, "POST", "/auth/login", "", fiber.Map{
		"username": username,
		"password": "green-campus-pw",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	body := struct {
		Status string `json:"status"`
		Acc    string `json:"acc"`
		Ref    string `json:"ref"`
	}{}
	decodeBody(t, res, &body)
	require.Equal(t, "success", body.Status)
	require.NotEmpty(t, body.Acc)
	require.NotEmpty(t, body.Ref)
	return body.Acc
}

func TestAuthEndpoints(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	app := NewApp()

	/* REGISTER */
	res, err := app.Test(jsonRequest(t, "POST", "/auth/register", "", registerBody("greentech")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	/* DUPLICATE USERNAME */
	res, err = app.Test(jsonRequest(t, "POST", "/auth/register", "", registerBody("greentech")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	/* SHORT PASSWORD FAILS VALIDATION */
	bad := registerBody("shortpw")
	bad["password"] = "short"
	res, err = app.Test(jsonRequest(t, "POST", "/auth/register", "", bad))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	/* WRONG PASSWORD */
	res, err = app.Test(jsonRequest(t, "POST", "/auth/login", "", fiber.Map{
		"username": "greentech",
		"password": "wrong-password",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	/* LOGIN + REFRESH */
	res, err = app.Test(jsonRequest(t, "POST", "/auth/login", "", fiber.Map{
		"username": "greentech",
		"password": "green-campus-pw",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	login := struct {
		Acc string `json:"acc"`
		Ref string `json:"ref"`
	}{}
	decodeBody(t, res, &login)

	res, err = app.Test(jsonRequest(t, "POST", "/auth/refresh", "", fiber.Map{
		"refresh": login.Ref,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	/* REFRESH WITH GARBAGE */
	res, err = app.Test(jsonRequest(t, "POST", "/auth/refresh", "", fiber.Map{
		"refresh": "not-a-token",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	/* PROFILE REQUIRES A TOKEN */
	res, err = app.Test(jsonRequest(t, "GET", "/auth/profile", "", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	res, err = app.Test(jsonRequest(t, "GET", "/auth/profile", login.Acc, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	profile := struct {
		Data struct {
			Institute InstituteResponse `json:"institute"`
		} `json:"data"`
	}{}
	decodeBody(t, res, &profile)
	assert.Equal(t, "greentech", profile.Data.Institute.Username)
}

func TestConsumptionEndpoints(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	app := NewApp()
	token := loginTestInstitute(t, app, "greentech")

	/* NO TOKEN */
	res, err := app.Test(jsonRequest(t, "GET", "/consumption/", "", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)

	/* CREATE COMPUTES DERIVED EMISSIONS SERVER-SIDE */
	res, err = app.Test(jsonRequest(t, "POST", "/consumption/", token, recordBody("HOSTEL", "2024-03-15")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	created := struct {
		Data struct {
			Record ConsumptionRecordResponse `json:"record"`
		} `json:"data"`
	}{}
	decodeBody(t, res, &created)
	recID := created.Data.Record.ID
	require.NotZero(t, recID)
	assert.InDelta(t, 138.942, created.Data.Record.TotalEmissions, 1e-9)
	assert.Equal(t, "Hostel", created.Data.Record.DepartmentDisplay)

	/* DUPLICATE (INSTITUTE, DEPARTMENT, DATE) */
	res, err = app.Test(jsonRequest(t, "POST", "/consumption/", token, recordBody("HOSTEL", "2024-03-15")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	/* UNKNOWN DEPARTMENT */
	res, err = app.Test(jsonRequest(t, "POST", "/consumption/", token, recordBody("FACTORY", "2024-03-16")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	/* MALFORMED DATE */
	res, err = app.Test(jsonRequest(t, "POST", "/consumption/", token, recordBody("LABS", "15-03-2024")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	/* GET / PATCH / DELETE BY ID */
	res, err = app.Test(jsonRequest(t, "GET", fmt.Sprintf("/consumption/%d", recID), token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(jsonRequest(t, "PATCH", fmt.Sprintf("/consumption/%d", recID), token, fiber.Map{
		"electricity_kwh": 200.0,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	patched := struct {
		Data struct {
			Record ConsumptionRecordResponse `json:"record"`
		} `json:"data"`
	}{}
	decodeBody(t, res, &patched)
	assert.InDelta(t, 164.0, patched.Data.Record.ElectricityEmissions, 1e-9)

	/* ANOTHER INSTITUTE CANNOT SEE THE RECORD */
	otherToken := loginTestInstitute(t, app, "bluetech")
	res, err = app.Test(jsonRequest(t, "GET", fmt.Sprintf("/consumption/%d", recID), otherToken, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	res, err = app.Test(jsonRequest(t, "DELETE", fmt.Sprintf("/consumption/%d", recID), token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res, err = app.Test(jsonRequest(t, "GET", fmt.Sprintf("/consumption/%d", recID), token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestDashboardAndReportEndpoints(t *testing.T) {
	setupTestDB(t)
	seedTestFactors(t)
	app := NewApp()
	token := loginTestInstitute(t, app, "greentech")

	res, err := app.Test(jsonRequest(t, "POST", "/consumption/", token, recordBody("HOSTEL", "2024-03-15")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	/* FACTOR TABLE */
	res, err = app.Test(jsonRequest(t, "GET", "/factors", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	factors := struct {
		Data struct {
			Factors []EmissionFactorResponse `json:"factors"`
		} `json:"data"`
	}{}
	decodeBody(t, res, &factors)
	assert.GreaterOrEqual(t, len(factors.Data.Factors), 10)

	/* STATS */
	res, err = app.Test(jsonRequest(t, "GET", "/dashboard/stats?year=2024&month=3", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	stats := DashboardStats{}
	decodeBody(t, res, &stats)
	assert.Equal(t, 1, stats.RecordCount)
	assert.InDelta(t, 138.94, stats.TotalEmissions, 1e-9)

	/* INVALID PERIOD */
	res, err = app.Test(jsonRequest(t, "GET", "/dashboard/stats?month=13", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	/* COMPARISON */
	res, err = app.Test(jsonRequest(t, "GET", "/dashboard/comparison", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	comparison := []DepartmentComparison{}
	decodeBody(t, res, &comparison)
	require.Len(t, comparison, 1)
	assert.Equal(t, DEPT_HOSTEL, comparison[0].Department)

	/* PDF REPORT */
	res, err = app.Test(jsonRequest(t, "GET", "/report/pdf", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "carbon_report_greentech_")

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	/* XLSX REPORT */
	res, err = app.Test(jsonRequest(t, "GET", "/report/xlsx", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Disposition"), ".xlsx")

	/* UNKNOWN ROUTE */
	res, err = app.Test(jsonRequest(t, "GET", "/no/such/path", token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
