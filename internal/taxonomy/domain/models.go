package domain

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Module groups the permission taxonomy; submodules hang off a module
// and are tombstoned together with it.
type Module struct {
	ID         string     `gorm:"primaryKey;column:id" json:"moduleId"`
	ModuleKey  string     `gorm:"not null;uniqueIndex" json:"moduleKey"`
	ModuleName string     `gorm:"not null" json:"moduleName"`
	Status     string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted  bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt  time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy  string     `gorm:"not null" json:"createdBy"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy  string     `json:"updatedBy,omitempty"`
}

func (Module) TableName() string { return "modules" }

type SubModule struct {
	ID            string     `gorm:"primaryKey;column:id" json:"subModuleId"`
	ModuleID      string     `gorm:"not null;index" json:"moduleId"`
	SubModuleKey  string     `gorm:"not null;uniqueIndex" json:"subModuleKey"`
	SubModuleName string     `gorm:"not null" json:"subModuleName"`
	Status        string     `gorm:"not null;default:Active" json:"status"`
	IsDeleted     bool       `gorm:"not null;default:false" json:"isDeleted"`
	CreatedAt     time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy     string     `gorm:"not null" json:"createdBy"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy     string     `json:"updatedBy,omitempty"`
}

func (SubModule) TableName() string { return "submodules" }
