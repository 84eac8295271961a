package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	auditrepository "github.com/smallbiznis/bizconf/internal/audit/repository"
	auditservice "github.com/smallbiznis/bizconf/internal/audit/service"
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
	"github.com/smallbiznis/bizconf/internal/calendar/editor"
	calendarrepository "github.com/smallbiznis/bizconf/internal/calendar/repository"
	calendarservice "github.com/smallbiznis/bizconf/internal/calendar/service"
	"github.com/smallbiznis/bizconf/internal/calendar/viewstate"
	"github.com/smallbiznis/bizconf/internal/clock"
	companyrepository "github.com/smallbiznis/bizconf/internal/company/repository"
	companyservice "github.com/smallbiznis/bizconf/internal/company/service"
	"github.com/smallbiznis/bizconf/internal/config"
	identityrepository "github.com/smallbiznis/bizconf/internal/identity/repository"
	identityservice "github.com/smallbiznis/bizconf/internal/identity/service"
	"github.com/smallbiznis/bizconf/internal/migration"
	referencerepository "github.com/smallbiznis/bizconf/internal/reference/repository"
	"github.com/smallbiznis/bizconf/internal/seed"
	taxonomyrepository "github.com/smallbiznis/bizconf/internal/taxonomy/repository"
	taxonomyservice "github.com/smallbiznis/bizconf/internal/taxonomy/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.RunMigrations(db))
	require.NoError(t, seed.EnsureReferenceData(db))

	log := zap.NewNop()
	fake := clock.NewFakeClock(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	refRepo := referencerepository.Provide()
	calendarSvc := calendarservice.New(calendarservice.Params{
		DB:       db,
		Log:      log,
		Repo:     calendarrepository.Provide(),
		Clock:    fake,
		Defaults: config.NewStaticCalendarConfigHolder(config.DefaultCalendarConfig()),
	})
	companySvc := companyservice.New(companyservice.Params{
		DB:      db,
		Log:     log,
		Repo:    companyrepository.Provide(),
		RefRepo: refRepo,
		Clock:   fake,
	})
	identitySvc := identityservice.New(identityservice.Params{
		DB:       db,
		Log:      log,
		Repo:     identityrepository.Provide(),
		Taxonomy: taxonomyrepository.Provide(),
		Clock:    fake,
	})
	taxonomySvc := taxonomyservice.New(taxonomyservice.Params{
		DB:    db,
		Log:   log,
		Repo:  taxonomyrepository.Provide(),
		Clock: fake,
	})
	auditSvc := auditservice.NewService(auditservice.Params{
		DB:    db,
		Log:   log,
		GenID: node,
		Repo:  auditrepository.Provide(),
		Clock: fake,
	})

	editors := editor.NewFactory(calendarSvc, draft.NewManager(log))
	overview := viewstate.NewLoader(viewstate.Params{
		DB:       db,
		Log:      log,
		Calendar: calendarSvc,
		Company:  companySvc,
		RefRepo:  refRepo,
	})

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	srv := NewServer(ServerParams{
		Gin:         engine,
		Cfg:         config.Config{},
		DB:          db,
		CalendarSvc: calendarSvc,
		CompanySvc:  companySvc,
		IdentitySvc: identitySvc,
		TaxonomySvc: taxonomySvc,
		AuditSvc:    auditSvc,
		RefRepo:     refRepo,
		Editors:     editors,
		Overview:    overview,
	})
	return srv, engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func companyPayload(code string) map[string]any {
	return map[string]any{
		"companyCode":          code,
		"companyName":          "Globex",
		"countryId":            "1",
		"currencyId":           "1",
		"timeZoneId":           "1",
		"fiscalYearStartMonth": 1,
	}
}

func createCompany(t *testing.T, engine *gin.Engine, code string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/admin/companies", companyPayload(code))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeBody(t, w)["data"].(map[string]any)
	return data["companyId"].(string)
}

func TestCompanyEndpoints(t *testing.T) {
	_, engine := newTestServer(t)

	id := createCompany(t, engine, "GLX-001")

	w := doJSON(t, engine, http.MethodGet, "/admin/companies/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "GLX-001", data["companyCode"])

	// Duplicate code conflicts.
	w = doJSON(t, engine, http.MethodPost, "/admin/companies", companyPayload("GLX-001"))
	assert.Equal(t, http.StatusConflict, w.Code)

	payload := companyPayload("GLX-001")
	payload["companyName"] = "Globex Corporation"
	w = doJSON(t, engine, http.MethodPut, "/admin/companies/"+id, payload)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Globex Corporation", data["companyName"])

	w = doJSON(t, engine, http.MethodDelete, "/admin/companies/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/admin/companies/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanyValidationErrorPayload(t *testing.T) {
	_, engine := newTestServer(t)

	payload := companyPayload("GLX-001")
	payload["fiscalYearStartMonth"] = 13
	w := doJSON(t, engine, http.MethodPost, "/admin/companies", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "validation_error", errObj["type"])
	fields := errObj["errors"].([]any)
	require.Len(t, fields, 1)
	first := fields[0].(map[string]any)
	assert.Equal(t, "invalid_fiscal_month", first["code"])
	assert.Equal(t, "fiscal_month", first["field"])
}

func TestBusinessDaysEndpoints(t *testing.T) {
	_, engine := newTestServer(t)
	id := createCompany(t, engine, "GLX-001")

	w := doJSON(t, engine, http.MethodGet, "/api/business-days?companyId="+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	days := decodeBody(t, w)["data"].([]any)
	require.Len(t, days, 7)

	// Missing companyId is a validation error.
	w = doJSON(t, engine, http.MethodGet, "/api/business-days", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Round-trip the set with Saturday flipped to working.
	var set []map[string]any
	for _, raw := range days {
		day := raw.(map[string]any)
		if day["dayOfWeek"] == "Saturday" {
			day["isWorkingDay"] = true
		}
		set = append(set, day)
	}
	w = doJSON(t, engine, http.MethodPut, "/api/business-days?companyId="+id, set)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// An incomplete set is rejected.
	w = doJSON(t, engine, http.MethodPut, "/api/business-days?companyId="+id, set[:5])
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHolidayEndpoints(t *testing.T) {
	_, engine := newTestServer(t)
	id := createCompany(t, engine, "GLX-001")

	w := doJSON(t, engine, http.MethodPost, "/api/business-holidays", map[string]any{
		"companyId":   id,
		"holidayDate": "2025-12-25",
		"holidayName": "Christmas",
		"isFullDay":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)["data"].(map[string]any)
	holidayID := created["businessHolidayId"].(string)

	w = doJSON(t, engine, http.MethodPut, "/api/business-holidays/"+holidayID, map[string]any{
		"companyId":   id,
		"holidayDate": "2025-12-26",
		"holidayName": "Boxing Day",
		"isFullDay":   true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/business-holidays/upcoming?companyId="+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	upcoming := decodeBody(t, w)["data"].([]any)
	require.Len(t, upcoming, 1)

	w = doJSON(t, engine, http.MethodDelete, "/api/business-holidays/"+holidayID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/business-holidays/"+holidayID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftSessionFlow(t *testing.T) {
	_, engine := newTestServer(t)
	id := createCompany(t, engine, "GLX-001")
	base := "/admin/companies/" + id + "/draft"

	// No session yet.
	w := doJSON(t, engine, http.MethodGet, base+"/state", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Opening a draft for a missing company fails.
	w = doJSON(t, engine, http.MethodPost, "/admin/companies/missing/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodPost, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, base+"/days/load", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, base+"/days/toggle", map[string]any{"index": 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, base+"/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, state["isDirty"])
	assert.Equal(t, false, state["canDeactivate"])

	w = doJSON(t, engine, http.MethodPost, base+"/days/save", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodGet, base+"/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, false, state["isDirty"])
	assert.Equal(t, true, state["canDeactivate"])

	w = doJSON(t, engine, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, engine, http.MethodGet, base+"/state", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftHolidayDialogFlow(t *testing.T) {
	_, engine := newTestServer(t)
	id := createCompany(t, engine, "GLX-001")
	base := "/admin/companies/" + id + "/draft"

	doJSON(t, engine, http.MethodPost, base, nil)
	doJSON(t, engine, http.MethodPost, base+"/holidays/load", nil)

	w := doJSON(t, engine, http.MethodPost, base+"/holidays/dialog", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	dialog := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, true, dialog["isNew"])
	requirement := dialog["timeRequirement"].(map[string]any)
	assert.Equal(t, true, requirement["cleared"])
	assert.Equal(t, false, requirement["required"])

	w = doJSON(t, engine, http.MethodPut, base+"/holidays/dialog/full-day", map[string]any{"isFullDay": false})
	require.Equal(t, http.StatusOK, w.Code)
	dialog = decodeBody(t, w)["data"].(map[string]any)
	requirement = dialog["timeRequirement"].(map[string]any)
	assert.Equal(t, true, requirement["required"])

	w = doJSON(t, engine, http.MethodPut, base+"/holidays/dialog", map[string]any{
		"holidayName": "Founders Day",
		"holidayDate": "2025-09-10",
		"holidayType": "Company",
		"startTime":   "10:00",
		"endTime":     "14:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, base+"/holidays/dialog/save", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	holidays := body["data"].([]any)
	require.Len(t, holidays, 1)
	dialog = body["dialog"].(map[string]any)
	assert.Equal(t, false, dialog["open"])
}

func TestAuditLogsRecordedForMutations(t *testing.T) {
	_, engine := newTestServer(t)
	id := createCompany(t, engine, "GLX-001")

	w := doJSON(t, engine, http.MethodPost, "/api/business-holidays", map[string]any{
		"companyId":   id,
		"holidayDate": "2025-12-25",
		"holidayName": "Christmas",
		"isFullDay":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/admin/audit-logs?action=business_holiday.create", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decodeBody(t, w)["auditLogs"].([]any)
	require.Len(t, logs, 1)
	entry := logs[0].(map[string]any)
	assert.Equal(t, "business_holiday.create", entry["action"])
	assert.Equal(t, "system", entry["actorType"])
}

func TestReferenceEndpoints(t *testing.T) {
	_, engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/admin/countries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	countries := decodeBody(t, w)["data"].([]any)
	assert.NotEmpty(t, countries)

	w = doJSON(t, engine, http.MethodGet, "/admin/currencies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	currencies := decodeBody(t, w)["data"].([]any)
	assert.NotEmpty(t, currencies)
}

func TestCompanyOverviewEndpoint(t *testing.T) {
	_, engine := newTestServer(t)
	id := createCompany(t, engine, "GLX-001")

	w := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/admin/companies/%s/overview", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "United States", data["countryName"])
	assert.Equal(t, "USD", data["currencyCode"])
	days := data["businessDays"].([]any)
	assert.Len(t, days, 7)
}
