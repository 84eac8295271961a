package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidKey    = errors.New("invalid_key")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidModule = errors.New("invalid_module")
	ErrKeyExists     = errors.New("key_exists")
	ErrNotFound      = errors.New("not_found")
)

type SaveModuleRequest struct {
	ModuleKey  string `json:"moduleKey"`
	ModuleName string `json:"moduleName"`
	Status     string `json:"status"`
}

type SaveSubModuleRequest struct {
	ModuleID      string `json:"moduleId"`
	SubModuleKey  string `json:"subModuleKey"`
	SubModuleName string `json:"subModuleName"`
	Status        string `json:"status"`
}

type Service interface {
	ListModules(ctx context.Context) ([]Module, error)
	CreateModule(ctx context.Context, req SaveModuleRequest) (*Module, error)
	UpdateModule(ctx context.Context, id string, req SaveModuleRequest) (*Module, error)
	// DeleteModule tombstones the module and every submodule under it.
	DeleteModule(ctx context.Context, id string) error

	ListSubModules(ctx context.Context, moduleID string) ([]SubModule, error)
	CreateSubModule(ctx context.Context, req SaveSubModuleRequest) (*SubModule, error)
	UpdateSubModule(ctx context.Context, id string, req SaveSubModuleRequest) (*SubModule, error)
	DeleteSubModule(ctx context.Context, id string) error
}
