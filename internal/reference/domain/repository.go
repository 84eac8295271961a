package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("not_found")
	ErrDuplicateEntry = errors.New("duplicate_entry")
)

type Repository interface {
	ListCountries(ctx context.Context, db *gorm.DB) ([]Country, error)
	FindCountryByID(ctx context.Context, db *gorm.DB, id string) (*Country, error)
	SaveCountry(ctx context.Context, db *gorm.DB, country *Country) error
	SoftDeleteCountry(ctx context.Context, db *gorm.DB, id string) error

	ListCurrencies(ctx context.Context, db *gorm.DB) ([]Currency, error)
	FindCurrencyByID(ctx context.Context, db *gorm.DB, id string) (*Currency, error)
	SaveCurrency(ctx context.Context, db *gorm.DB, currency *Currency) error
	SoftDeleteCurrency(ctx context.Context, db *gorm.DB, id string) error
	ClearDefaultCurrency(ctx context.Context, db *gorm.DB, exceptID string) error

	ListTimeZones(ctx context.Context, db *gorm.DB) ([]TimeZone, error)
	FindTimeZoneByID(ctx context.Context, db *gorm.DB, id string) (*TimeZone, error)
	SaveTimeZone(ctx context.Context, db *gorm.DB, timezone *TimeZone) error
	SoftDeleteTimeZone(ctx context.Context, db *gorm.DB, id string) error

	ListDateFormats(ctx context.Context, db *gorm.DB) ([]DateFormat, error)
	FindDateFormatByID(ctx context.Context, db *gorm.DB, id string) (*DateFormat, error)
	SaveDateFormat(ctx context.Context, db *gorm.DB, format *DateFormat) error
	SoftDeleteDateFormat(ctx context.Context, db *gorm.DB, id string) error
	ClearDefaultDateFormat(ctx context.Context, db *gorm.DB, exceptID string) error
}
