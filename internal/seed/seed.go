package seed

import (
	"context"
	"errors"
	"time"

	calendardomain "github.com/smallbiznis/bizconf/internal/calendar/domain"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	identitydomain "github.com/smallbiznis/bizconf/internal/identity/domain"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"gorm.io/gorm"
)

const (
	seedActor = "system"

	demoCompanyID   = "1"
	demoCompanyCode = "CMP-001"
	demoCompanyName = "Acme Corp"

	adminUserID   = "1"
	adminUsername = "admin"
	adminEmail    = "admin@acmecorp.com"
)

var seedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// EnsureReferenceData seeds the master lookup tables. Safe to run on
// every start; existing rows are left alone.
func EnsureReferenceData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCountries(tx); err != nil {
			return err
		}
		if err := ensureCurrencies(tx); err != nil {
			return err
		}
		if err := ensureTimeZones(tx); err != nil {
			return err
		}
		return ensureDateFormats(tx)
	})
}

// EnsureDemoData seeds the demo company, admin user, base roles and the
// module taxonomy used by the permission screens.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureDemoCompany(tx); err != nil {
			return err
		}
		if err := ensureDemoCalendar(tx); err != nil {
			return err
		}
		if err := ensureModules(tx); err != nil {
			return err
		}
		if err := ensureRoles(tx); err != nil {
			return err
		}
		return ensureAdminUser(tx)
	})
}

func ensureCountries(tx *gorm.DB) error {
	countries := []referencedomain.Country{
		{ID: "1", CountryCodeISO2: "US", CountryCodeISO3: "USA", CountryName: "United States", PhoneCode: "+1", Continent: "North America"},
		{ID: "2", CountryCodeISO2: "IN", CountryCodeISO3: "IND", CountryName: "India", PhoneCode: "+91", Continent: "Asia"},
		{ID: "3", CountryCodeISO2: "GB", CountryCodeISO3: "GBR", CountryName: "United Kingdom", PhoneCode: "+44", Continent: "Europe"},
		{ID: "4", CountryCodeISO2: "CA", CountryCodeISO3: "CAN", CountryName: "Canada", PhoneCode: "+1", Continent: "North America"},
		{ID: "5", CountryCodeISO2: "AU", CountryCodeISO3: "AUS", CountryName: "Australia", PhoneCode: "+61", Continent: "Oceania"},
		{ID: "6", CountryCodeISO2: "DE", CountryCodeISO3: "DEU", CountryName: "Germany", PhoneCode: "+49", Continent: "Europe"},
		{ID: "7", CountryCodeISO2: "JP", CountryCodeISO3: "JPN", CountryName: "Japan", PhoneCode: "+81", Continent: "Asia"},
	}
	for i := range countries {
		countries[i].Status = "Active"
		countries[i].CreatedAt = seedTime
		countries[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &referencedomain.Country{}, "id = ?", countries[i].ID, &countries[i]); err != nil {
			return err
		}
	}
	return nil
}

func ensureCurrencies(tx *gorm.DB) error {
	currencies := []referencedomain.Currency{
		{ID: "1", CurrencyCode: "USD", CurrencySymbol: "$", DecimalPlaces: 2, IsDefault: true},
		{ID: "2", CurrencyCode: "AED", CurrencySymbol: "AED", DecimalPlaces: 2},
		{ID: "3", CurrencyCode: "EUR", CurrencySymbol: "EUR", DecimalPlaces: 2},
		{ID: "4", CurrencyCode: "GBP", CurrencySymbol: "GBP", DecimalPlaces: 2},
		{ID: "5", CurrencyCode: "INR", CurrencySymbol: "INR", DecimalPlaces: 2},
		{ID: "6", CurrencyCode: "JPY", CurrencySymbol: "JPY", DecimalPlaces: 0},
	}
	for i := range currencies {
		currencies[i].Status = "Active"
		currencies[i].CreatedAt = seedTime
		currencies[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &referencedomain.Currency{}, "id = ?", currencies[i].ID, &currencies[i]); err != nil {
			return err
		}
	}
	return nil
}

func ensureTimeZones(tx *gorm.DB) error {
	timezones := []referencedomain.TimeZone{
		{ID: "1", TimeZoneName: "America/New_York", GMTOffset: "-05:00", SupportsDST: true},
		{ID: "2", TimeZoneName: "Europe/London", GMTOffset: "+00:00", SupportsDST: true},
		{ID: "3", TimeZoneName: "Asia/Dubai", GMTOffset: "+04:00"},
		{ID: "4", TimeZoneName: "Asia/Kolkata", GMTOffset: "+05:30"},
		{ID: "5", TimeZoneName: "Asia/Tokyo", GMTOffset: "+09:00"},
	}
	for i := range timezones {
		timezones[i].Status = "Active"
		timezones[i].CreatedAt = seedTime
		timezones[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &referencedomain.TimeZone{}, "id = ?", timezones[i].ID, &timezones[i]); err != nil {
			return err
		}
	}
	return nil
}

func ensureDateFormats(tx *gorm.DB) error {
	formats := []referencedomain.DateFormat{
		{ID: "1", FormatString: "dd/MM/yyyy", Description: "Day first", IsDefault: true},
		{ID: "2", FormatString: "MM/dd/yyyy", Description: "Month first"},
		{ID: "3", FormatString: "yyyy-MM-dd", Description: "ISO"},
		{ID: "4", FormatString: "dd-MMM-yyyy", Description: "Abbreviated month"},
	}
	for i := range formats {
		formats[i].Status = "Active"
		formats[i].CreatedAt = seedTime
		formats[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &referencedomain.DateFormat{}, "id = ?", formats[i].ID, &formats[i]); err != nil {
			return err
		}
	}
	return nil
}

func ensureDemoCompany(tx *gorm.DB) error {
	dateFormatID := "1"
	company := companydomain.Company{
		ID:                   demoCompanyID,
		CompanyCode:          demoCompanyCode,
		CompanyName:          demoCompanyName,
		CountryID:            "1",
		CurrencyID:           "1",
		TimeZoneID:           "1",
		DateFormatID:         &dateFormatID,
		Website:              "https://www.acmecorp.com",
		Address:              "123 Acme Way, Business City, US",
		FiscalYearStartMonth: 1,
		Status:               "Active",
		CreatedAt:            seedTime,
		CreatedBy:            seedActor,
	}
	return firstOrCreate(tx, &companydomain.Company{}, "id = ?", company.ID, &company)
}

// ensureDemoCalendar seeds the standard week so the editors open on
// populated data instead of synthesized defaults.
func ensureDemoCalendar(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&calendardomain.BusinessDay{}).
		Where("company_id = ?", demoCompanyID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range calendardomain.DaysOfWeek {
		weekend := calendardomain.IsWeekendDay(name)
		day := calendardomain.BusinessDay{
			ID:           "day-" + name,
			CompanyID:    demoCompanyID,
			DayOfWeek:    name,
			IsWorkingDay: !weekend,
			IsWeekend:    weekend,
			Status:       "Active",
			CreatedAt:    seedTime,
			CreatedBy:    seedActor,
		}
		if weekend {
			day.Remarks = "Weekend"
		}
		if err := tx.Create(&day).Error; err != nil {
			return err
		}

		if weekend {
			continue
		}
		shift := calendardomain.BusinessHours{
			ID:             "shift-" + name,
			CompanyID:      demoCompanyID,
			DayOfWeek:      name,
			ShiftName:      "Standard",
			StartTime:      "09:00",
			EndTime:        "17:00",
			IsWorkingShift: true,
			Status:         "Active",
			CreatedAt:      seedTime,
			CreatedBy:      seedActor,
		}
		if err := tx.Create(&shift).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureModules(tx *gorm.DB) error {
	modules := []taxonomydomain.Module{
		{ID: "1", ModuleKey: "DASHBOARD", ModuleName: "Dashboard"},
		{ID: "2", ModuleKey: "ADMIN", ModuleName: "Administration"},
		{ID: "3", ModuleKey: "USER_MGMT", ModuleName: "User Management"},
		{ID: "4", ModuleKey: "ROLE_MGMT", ModuleName: "Role Management"},
		{ID: "5", ModuleKey: "SETTINGS", ModuleName: "Settings"},
		{ID: "6", ModuleKey: "AUDIT", ModuleName: "Audit"},
	}
	for i := range modules {
		modules[i].Status = taxonomydomain.StatusActive
		modules[i].CreatedAt = seedTime
		modules[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &taxonomydomain.Module{}, "id = ?", modules[i].ID, &modules[i]); err != nil {
			return err
		}
	}

	subs := []taxonomydomain.SubModule{
		{ID: "1", ModuleID: "5", SubModuleKey: "COMPANY_SETUP", SubModuleName: "Company Setup"},
		{ID: "2", ModuleID: "5", SubModuleKey: "BUSINESS_CALENDAR", SubModuleName: "Business Calendar"},
		{ID: "3", ModuleID: "3", SubModuleKey: "USER_LIST", SubModuleName: "Users"},
	}
	for i := range subs {
		subs[i].Status = taxonomydomain.StatusActive
		subs[i].CreatedAt = seedTime
		subs[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &taxonomydomain.SubModule{}, "id = ?", subs[i].ID, &subs[i]); err != nil {
			return err
		}
	}
	return nil
}

func ensureRoles(tx *gorm.DB) error {
	roles := []identitydomain.Role{
		{ID: "1", RoleName: "Super Admin", Description: "Full access"},
		{ID: "2", RoleName: "Accountant", Description: "Finance screens"},
		{ID: "3", RoleName: "Viewer", Description: "Read only"},
	}
	for i := range roles {
		roles[i].Status = identitydomain.StatusActive
		roles[i].CreatedAt = seedTime
		roles[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &identitydomain.Role{}, "id = ?", roles[i].ID, &roles[i]); err != nil {
			return err
		}
	}

	perms := []identitydomain.Permission{
		{ID: "1", PermissionKey: "SETTINGS_VIEW", PermissionName: "View Settings", ModuleID: "5"},
		{ID: "2", PermissionKey: "SETTINGS_EDIT", PermissionName: "Edit Settings", ModuleID: "5"},
		{ID: "3", PermissionKey: "USER_VIEW", PermissionName: "View Users", ModuleID: "3"},
		{ID: "4", PermissionKey: "AUDIT_VIEW", PermissionName: "View Audit Logs", ModuleID: "6"},
	}
	for i := range perms {
		perms[i].CreatedAt = seedTime
		perms[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &identitydomain.Permission{}, "id = ?", perms[i].ID, &perms[i]); err != nil {
			return err
		}
	}

	assignments := []identitydomain.RolePermission{
		{ID: "1", RoleID: "1", PermissionID: "1"},
		{ID: "2", RoleID: "1", PermissionID: "2"},
		{ID: "3", RoleID: "1", PermissionID: "3"},
		{ID: "4", RoleID: "1", PermissionID: "4"},
		{ID: "5", RoleID: "3", PermissionID: "1"},
	}
	for i := range assignments {
		assignments[i].CreatedAt = seedTime
		assignments[i].CreatedBy = seedActor
		if err := firstOrCreate(tx, &identitydomain.RolePermission{}, "id = ?", assignments[i].ID, &assignments[i]); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(tx *gorm.DB) error {
	admin := identitydomain.User{
		ID:        adminUserID,
		Username:  adminUsername,
		Email:     adminEmail,
		FirstName: "System",
		LastName:  "Administrator",
		Status:    identitydomain.StatusActive,
		CreatedAt: seedTime,
		CreatedBy: seedActor,
	}
	if err := firstOrCreate(tx, &identitydomain.User{}, "id = ?", admin.ID, &admin); err != nil {
		return err
	}

	assignment := identitydomain.UserRole{
		ID:        "1",
		UserID:    adminUserID,
		RoleID:    "1",
		CreatedAt: seedTime,
		CreatedBy: seedActor,
	}
	return firstOrCreate(tx, &identitydomain.UserRole{}, "id = ?", assignment.ID, &assignment)
}

func firstOrCreate(tx *gorm.DB, model any, query string, arg any, value any) error {
	var count int64
	if err := tx.Model(model).Where(query, arg).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(value).Error
}
