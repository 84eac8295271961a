package domain

import "time"

// Master reference data the company record points at. Plain CRUD with
// soft delete; currencies and date formats carry a single default flag.

type Country struct {
	ID              string     `gorm:"primaryKey;column:id" json:"countryId"`
	CountryCodeISO2 string     `gorm:"not null;uniqueIndex" json:"countryCodeISO2"`
	CountryCodeISO3 string     `gorm:"not null" json:"countryCodeISO3"`
	CountryName     string     `gorm:"not null" json:"countryName"`
	PhoneCode       string     `json:"phoneCode,omitempty"`
	Continent       string     `json:"continent,omitempty"`
	Status          string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted       bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt       time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy       string     `gorm:"not null" json:"createdBy"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy       string     `json:"updatedBy,omitempty"`
}

func (Country) TableName() string { return "countries" }

type Currency struct {
	ID             string     `gorm:"primaryKey;column:id" json:"currencyId"`
	CurrencyCode   string     `gorm:"not null;uniqueIndex" json:"currencyCode"`
	CurrencySymbol string     `json:"currencySymbol,omitempty"`
	DecimalPlaces  int        `gorm:"not null;default:2" json:"decimalPlaces"`
	IsDefault      bool       `gorm:"not null;default:false" json:"isDefault"`
	Status         string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted      bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt      time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy      string     `gorm:"not null" json:"createdBy"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy      string     `json:"updatedBy,omitempty"`
}

func (Currency) TableName() string { return "currencies" }

type TimeZone struct {
	ID           string     `gorm:"primaryKey;column:id" json:"timeZoneId"`
	TimeZoneName string     `gorm:"not null;uniqueIndex" json:"timeZoneName"`
	GMTOffset    string     `json:"gmtOffset,omitempty"`
	SupportsDST  bool       `gorm:"not null;default:false" json:"supportsDST"`
	Status       string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy    string     `gorm:"not null" json:"createdBy"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
}

func (TimeZone) TableName() string { return "timezones" }

type DateFormat struct {
	ID           string     `gorm:"primaryKey;column:id" json:"dateFormatId"`
	FormatString string     `gorm:"not null;uniqueIndex" json:"formatString"`
	Description  string     `json:"description,omitempty"`
	IsDefault    bool       `gorm:"not null;default:false" json:"isDefault"`
	Status       string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted    bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt    time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy    string     `gorm:"not null" json:"createdBy"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
}

func (DateFormat) TableName() string { return "date_formats" }
