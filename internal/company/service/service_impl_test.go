package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/company/domain"
	"github.com/smallbiznis/bizconf/internal/company/repository"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	referencerepository "github.com/smallbiznis/bizconf/internal/reference/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&referencedomain.Country{},
		&referencedomain.Currency{},
		&referencedomain.TimeZone{},
		&referencedomain.DateFormat{},
		&domain.Company{},
	))

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&referencedomain.Country{
		ID: "ctr-1", CountryCodeISO2: "US", CountryCodeISO3: "USA", CountryName: "United States",
		Status: "Active", CreatedAt: now, CreatedBy: "system",
	}).Error)
	require.NoError(t, db.Create(&referencedomain.Currency{
		ID: "cur-1", CurrencyCode: "USD", DecimalPlaces: 2, IsDefault: true,
		Status: "Active", CreatedAt: now, CreatedBy: "system",
	}).Error)
	require.NoError(t, db.Create(&referencedomain.TimeZone{
		ID: "tz-1", TimeZoneName: "America/New_York", GMTOffset: "-05:00",
		Status: "Active", CreatedAt: now, CreatedBy: "system",
	}).Error)
	require.NoError(t, db.Create(&referencedomain.DateFormat{
		ID: "df-1", FormatString: "dd/MM/yyyy", IsDefault: true,
		Status: "Active", CreatedAt: now, CreatedBy: "system",
	}).Error)

	svc := New(Params{
		DB:      db,
		Log:     zap.NewNop(),
		Repo:    repository.Provide(),
		RefRepo: referencerepository.Provide(),
		Clock:   clock.NewFakeClock(now),
	})
	return svc, db
}

func validRequest() domain.SaveCompanyRequest {
	return domain.SaveCompanyRequest{
		CompanyCode:          "CMP-001",
		CompanyName:          "Acme Corp",
		CountryID:            "ctr-1",
		CurrencyID:           "cur-1",
		TimeZoneID:           "tz-1",
		FiscalYearStartMonth: 1,
	}
}

func TestCreateCompany(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	company, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, company.ID)
	assert.Equal(t, "CMP-001", company.CompanyCode)
	assert.Equal(t, "Active", company.Status)
	assert.Equal(t, "system", company.CreatedBy)
}

func TestCreateCompanyValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	req.CompanyCode = ""
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	req = validRequest()
	req.CompanyName = "   "
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	req = validRequest()
	req.FiscalYearStartMonth = 13
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidFiscalMonth)

	req = validRequest()
	req.CountryID = "missing"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCountry)

	req = validRequest()
	req.CurrencyID = "missing"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)

	req = validRequest()
	req.TimeZoneID = "missing"
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeZone)

	req = validRequest()
	bad := "missing"
	req.DateFormatID = &bad
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidDateFormat)
}

func TestCreateCompanyCodeConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, domain.ErrCodeExists)
}

func TestUpdateCompanyPreservesCreatedStamp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CompanyName = "Acme Corporation"
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", updated.CompanyName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdateCompanyCodeConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.CompanyCode = "CMP-002"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	steal := validRequest()
	_, err = svc.Update(ctx, other.ID, steal)
	assert.ErrorIs(t, err, domain.ErrCodeExists)

	_, err = svc.Update(ctx, "missing", validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_ = first
}

func TestGetAndDeleteCompany(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestListCompaniesPagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	codes := []string{"CMP-001", "CMP-002", "CMP-003"}
	for _, code := range codes {
		req := validRequest()
		req.CompanyCode = code
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, domain.ListCompanyRequest{PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, first.Companies, 2)
	assert.True(t, first.HasMore)
	require.NotEmpty(t, first.NextPageToken)

	second, err := svc.List(ctx, domain.ListCompanyRequest{PageSize: 2, PageToken: first.NextPageToken})
	require.NoError(t, err)
	assert.Len(t, second.Companies, 1)
	assert.False(t, second.HasMore)
	assert.Empty(t, second.NextPageToken)
}

func TestListCompaniesFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	req = validRequest()
	req.CompanyCode = "CMP-002"
	req.CompanyName = "Globex"
	req.Status = "Inactive"
	_, err = svc.Create(ctx, req)
	require.NoError(t, err)

	byStatus, err := svc.List(ctx, domain.ListCompanyRequest{PageSize: 10, Status: "Inactive"})
	require.NoError(t, err)
	require.Len(t, byStatus.Companies, 1)
	assert.Equal(t, "Globex", byStatus.Companies[0].CompanyName)

	byName, err := svc.List(ctx, domain.ListCompanyRequest{PageSize: 10, Name: "Acme"})
	require.NoError(t, err)
	require.Len(t, byName.Companies, 1)
	assert.Equal(t, "Acme Corp", byName.Companies[0].CompanyName)
}
