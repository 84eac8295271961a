package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/bizconf/internal/reference/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListCountries(ctx context.Context, db *gorm.DB) ([]domain.Country, error) {
	var countries []domain.Country
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("country_name asc").
		Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *repo) FindCountryByID(ctx context.Context, db *gorm.DB, id string) (*domain.Country, error) {
	var country domain.Country
	if err := findByID(ctx, db, id, &country); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *repo) SaveCountry(ctx context.Context, db *gorm.DB, country *domain.Country) error {
	return db.WithContext(ctx).Save(country).Error
}

func (r *repo) SoftDeleteCountry(ctx context.Context, db *gorm.DB, id string) error {
	return softDelete(ctx, db, &domain.Country{}, id)
}

func (r *repo) ListCurrencies(ctx context.Context, db *gorm.DB) ([]domain.Currency, error) {
	var currencies []domain.Currency
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("currency_code asc").
		Find(&currencies).Error
	if err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *repo) FindCurrencyByID(ctx context.Context, db *gorm.DB, id string) (*domain.Currency, error) {
	var currency domain.Currency
	if err := findByID(ctx, db, id, &currency); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &currency, nil
}

func (r *repo) SaveCurrency(ctx context.Context, db *gorm.DB, currency *domain.Currency) error {
	return db.WithContext(ctx).Save(currency).Error
}

func (r *repo) SoftDeleteCurrency(ctx context.Context, db *gorm.DB, id string) error {
	return softDelete(ctx, db, &domain.Currency{}, id)
}

func (r *repo) ClearDefaultCurrency(ctx context.Context, db *gorm.DB, exceptID string) error {
	return db.WithContext(ctx).
		Model(&domain.Currency{}).
		Where("id <> ?", exceptID).
		Update("is_default", false).Error
}

func (r *repo) ListTimeZones(ctx context.Context, db *gorm.DB) ([]domain.TimeZone, error) {
	var timezones []domain.TimeZone
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("time_zone_name asc").
		Find(&timezones).Error
	if err != nil {
		return nil, err
	}
	return timezones, nil
}

func (r *repo) FindTimeZoneByID(ctx context.Context, db *gorm.DB, id string) (*domain.TimeZone, error) {
	var timezone domain.TimeZone
	if err := findByID(ctx, db, id, &timezone); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &timezone, nil
}

func (r *repo) SaveTimeZone(ctx context.Context, db *gorm.DB, timezone *domain.TimeZone) error {
	return db.WithContext(ctx).Save(timezone).Error
}

func (r *repo) SoftDeleteTimeZone(ctx context.Context, db *gorm.DB, id string) error {
	return softDelete(ctx, db, &domain.TimeZone{}, id)
}

func (r *repo) ListDateFormats(ctx context.Context, db *gorm.DB) ([]domain.DateFormat, error) {
	var formats []domain.DateFormat
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("format_string asc").
		Find(&formats).Error
	if err != nil {
		return nil, err
	}
	return formats, nil
}

func (r *repo) FindDateFormatByID(ctx context.Context, db *gorm.DB, id string) (*domain.DateFormat, error) {
	var format domain.DateFormat
	if err := findByID(ctx, db, id, &format); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &format, nil
}

func (r *repo) SaveDateFormat(ctx context.Context, db *gorm.DB, format *domain.DateFormat) error {
	return db.WithContext(ctx).Save(format).Error
}

func (r *repo) SoftDeleteDateFormat(ctx context.Context, db *gorm.DB, id string) error {
	return softDelete(ctx, db, &domain.DateFormat{}, id)
}

func (r *repo) ClearDefaultDateFormat(ctx context.Context, db *gorm.DB, exceptID string) error {
	return db.WithContext(ctx).
		Model(&domain.DateFormat{}).
		Where("id <> ?", exceptID).
		Update("is_default", false).Error
}

func findByID(ctx context.Context, db *gorm.DB, id string, dest any) error {
	return db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(dest).Error
}

func softDelete(ctx context.Context, db *gorm.DB, model any, id string) error {
	return db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
