package seed_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	"github.com/smallbiznis/bizconf/internal/migration"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	"github.com/smallbiznis/bizconf/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.RunMigrations(db))
	return db
}

func TestEnsureReferenceDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seed.EnsureReferenceData(db))

	var countries, currencies, timezones, formats int64
	require.NoError(t, db.Model(&referencedomain.Country{}).Count(&countries).Error)
	require.NoError(t, db.Model(&referencedomain.Currency{}).Count(&currencies).Error)
	require.NoError(t, db.Model(&referencedomain.TimeZone{}).Count(&timezones).Error)
	require.NoError(t, db.Model(&referencedomain.DateFormat{}).Count(&formats).Error)
	assert.NotZero(t, countries)
	assert.NotZero(t, currencies)
	assert.NotZero(t, timezones)
	assert.NotZero(t, formats)

	// Running again must not duplicate rows.
	require.NoError(t, seed.EnsureReferenceData(db))
	var again int64
	require.NoError(t, db.Model(&referencedomain.Country{}).Count(&again).Error)
	assert.Equal(t, countries, again)
}

func TestEnsureReferenceDataSingleDefaults(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, seed.EnsureReferenceData(db))

	var defaults int64
	require.NoError(t, db.Model(&referencedomain.Currency{}).Where("is_default = ?", true).Count(&defaults).Error)
	assert.EqualValues(t, 1, defaults)

	require.NoError(t, db.Model(&referencedomain.DateFormat{}).Where("is_default = ?", true).Count(&defaults).Error)
	assert.EqualValues(t, 1, defaults)
}

func TestEnsureDemoData(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, seed.EnsureReferenceData(db))
	require.NoError(t, seed.EnsureDemoData(db))
	require.NoError(t, seed.EnsureDemoData(db))

	var companies int64
	require.NoError(t, db.Model(&companydomain.Company{}).Count(&companies).Error)
	assert.EqualValues(t, 1, companies)

	var company companydomain.Company
	require.NoError(t, db.First(&company).Error)
	assert.Equal(t, seed.DemoCompanyCode, company.CompanyCode)
	assert.Equal(t, seed.DemoCompanyName, company.CompanyName)
}

func TestSeedRequiresDatabase(t *testing.T) {
	assert.Error(t, seed.EnsureReferenceData(nil))
	assert.Error(t, seed.EnsureDemoData(nil))
}
