package repository

import (
	"context"

	"github.com/smallbiznis/bizconf/internal/calendar/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListDays(ctx context.Context, db *gorm.DB, companyID string) ([]domain.BusinessDay, error) {
	var days []domain.BusinessDay
	err := db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = ?", companyID, false).
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (r *repo) ReplaceDays(ctx context.Context, db *gorm.DB, companyID string, days []domain.BusinessDay) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&domain.BusinessDay{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

func (r *repo) ListHours(ctx context.Context, db *gorm.DB, companyID string) ([]domain.BusinessHours, error) {
	var shifts []domain.BusinessHours
	err := db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = ?", companyID, false).
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *repo) ReplaceHours(ctx context.Context, db *gorm.DB, companyID string, shifts []domain.BusinessHours) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", companyID).Delete(&domain.BusinessHours{}).Error; err != nil {
			return err
		}
		if len(shifts) == 0 {
			return nil
		}
		return tx.Create(&shifts).Error
	})
}

func (r *repo) ListHolidays(ctx context.Context, db *gorm.DB, companyID string) ([]domain.BusinessHoliday, error) {
	var holidays []domain.BusinessHoliday
	err := db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = ?", companyID, false).
		Order("holiday_date asc").
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *repo) FindHolidayByID(ctx context.Context, db *gorm.DB, id string) (*domain.BusinessHoliday, error) {
	var holiday domain.BusinessHoliday
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&holiday).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &holiday, nil
}

func (r *repo) UpsertHoliday(ctx context.Context, db *gorm.DB, holiday *domain.BusinessHoliday) error {
	return db.WithContext(ctx).Save(holiday).Error
}

func (r *repo) SoftDeleteHoliday(ctx context.Context, db *gorm.DB, id string) error {
	// Tombstone, not removal. Audit history stays in the table.
	return db.WithContext(ctx).
		Model(&domain.BusinessHoliday{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
