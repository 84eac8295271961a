package migration

import (
	auditdomain "github.com/smallbiznis/bizconf/internal/audit/domain"
	calendardomain "github.com/smallbiznis/bizconf/internal/calendar/domain"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	identitydomain "github.com/smallbiznis/bizconf/internal/identity/domain"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"gorm.io/gorm"
)

// RunMigrations creates the schema. The store is in memory, so the
// schema is rebuilt on every start and versioned migrations would have
// nothing to version.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&referencedomain.Country{},
		&referencedomain.Currency{},
		&referencedomain.TimeZone{},
		&referencedomain.DateFormat{},
		&companydomain.Company{},
		&calendardomain.BusinessDay{},
		&calendardomain.BusinessHours{},
		&calendardomain.BusinessHoliday{},
		&identitydomain.User{},
		&identitydomain.UserRole{},
		&identitydomain.Role{},
		&identitydomain.RolePermission{},
		&identitydomain.Permission{},
		&taxonomydomain.Module{},
		&taxonomydomain.SubModule{},
		&auditdomain.AuditLog{},
	)
}
