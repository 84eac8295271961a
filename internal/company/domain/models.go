package domain

import "time"

// Company is the aggregate root owning the calendar collections.
type Company struct {
	ID                   string     `gorm:"primaryKey;column:id" json:"companyId"`
	CompanyCode          string     `gorm:"not null;uniqueIndex" json:"companyCode"`
	CompanyName          string     `gorm:"not null" json:"companyName"`
	CountryID            string     `gorm:"not null" json:"countryId"`
	CurrencyID           string     `gorm:"not null" json:"currencyId"`
	TimeZoneID           string     `gorm:"not null" json:"timeZoneId"`
	DateFormatID         *string    `json:"dateFormatId,omitempty"`
	Website              string     `json:"website,omitempty"`
	Address              string     `json:"address,omitempty"`
	LogoURL              string     `json:"logoUrl,omitempty"`
	FiscalYearStartMonth int        `gorm:"not null;default:1" json:"fiscalYearStartMonth"`
	Status               string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted            bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt            time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy            string     `gorm:"not null" json:"createdBy"`
	UpdatedAt            *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy            string     `json:"updatedBy,omitempty"`
}

func (Company) TableName() string { return "companies" }
