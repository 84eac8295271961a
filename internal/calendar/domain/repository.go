package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListDays(ctx context.Context, db *gorm.DB, companyID string) ([]BusinessDay, error)
	ReplaceDays(ctx context.Context, db *gorm.DB, companyID string, days []BusinessDay) error

	ListHours(ctx context.Context, db *gorm.DB, companyID string) ([]BusinessHours, error)
	ReplaceHours(ctx context.Context, db *gorm.DB, companyID string, shifts []BusinessHours) error

	ListHolidays(ctx context.Context, db *gorm.DB, companyID string) ([]BusinessHoliday, error)
	FindHolidayByID(ctx context.Context, db *gorm.DB, id string) (*BusinessHoliday, error)
	UpsertHoliday(ctx context.Context, db *gorm.DB, holiday *BusinessHoliday) error
	SoftDeleteHoliday(ctx context.Context, db *gorm.DB, id string) error
}
