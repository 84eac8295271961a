package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("taxonomy.service"),
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) ListModules(ctx context.Context) ([]domain.Module, error) {
	return s.repo.ListModules(ctx, s.db)
}

func (s *Service) CreateModule(ctx context.Context, req domain.SaveModuleRequest) (*domain.Module, error) {
	key, name, status, err := validateModuleFields(req.ModuleKey, req.ModuleName, req.Status)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindModuleByKey(ctx, s.db, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrKeyExists
	}

	module := &domain.Module{
		ID:         uuid.NewString(),
		ModuleKey:  key,
		ModuleName: name,
		Status:     status,
		CreatedAt:  s.clock.Now(),
		CreatedBy:  "system",
	}
	if err := s.repo.SaveModule(ctx, s.db, module); err != nil {
		return nil, err
	}

	s.log.Info("module created", zap.String("module_key", key))
	return module, nil
}

func (s *Service) UpdateModule(ctx context.Context, id string, req domain.SaveModuleRequest) (*domain.Module, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	module, err := s.repo.FindModuleByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, domain.ErrNotFound
	}

	key, name, status, err := validateModuleFields(req.ModuleKey, req.ModuleName, req.Status)
	if err != nil {
		return nil, err
	}

	if key != module.ModuleKey {
		conflict, err := s.repo.FindModuleByKey(ctx, s.db, key)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, domain.ErrKeyExists
		}
	}

	module.ModuleKey = key
	module.ModuleName = name
	module.Status = status
	updated := s.clock.Now()
	module.UpdatedAt = &updated
	module.UpdatedBy = "system"

	if err := s.repo.SaveModule(ctx, s.db, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *Service) DeleteModule(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	module, err := s.repo.FindModuleByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if module == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.SoftDeleteModuleTree(ctx, s.db, id); err != nil {
		return err
	}

	s.log.Info("module deleted", zap.String("module_id", id))
	return nil
}

func (s *Service) ListSubModules(ctx context.Context, moduleID string) ([]domain.SubModule, error) {
	return s.repo.ListSubModules(ctx, s.db, strings.TrimSpace(moduleID))
}

func (s *Service) CreateSubModule(ctx context.Context, req domain.SaveSubModuleRequest) (*domain.SubModule, error) {
	key, name, status, err := validateModuleFields(req.SubModuleKey, req.SubModuleName, req.Status)
	if err != nil {
		return nil, err
	}

	module, err := s.repo.FindModuleByID(ctx, s.db, strings.TrimSpace(req.ModuleID))
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, domain.ErrInvalidModule
	}

	existing, err := s.repo.FindSubModuleByKey(ctx, s.db, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrKeyExists
	}

	sub := &domain.SubModule{
		ID:            uuid.NewString(),
		ModuleID:      module.ID,
		SubModuleKey:  key,
		SubModuleName: name,
		Status:        status,
		CreatedAt:     s.clock.Now(),
		CreatedBy:     "system",
	}
	if err := s.repo.SaveSubModule(ctx, s.db, sub); err != nil {
		return nil, err
	}

	s.log.Info("submodule created",
		zap.String("module_id", module.ID),
		zap.String("sub_module_key", key),
	)
	return sub, nil
}

func (s *Service) UpdateSubModule(ctx context.Context, id string, req domain.SaveSubModuleRequest) (*domain.SubModule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	sub, err := s.repo.FindSubModuleByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}

	key, name, status, err := validateModuleFields(req.SubModuleKey, req.SubModuleName, req.Status)
	if err != nil {
		return nil, err
	}

	if moduleID := strings.TrimSpace(req.ModuleID); moduleID != "" && moduleID != sub.ModuleID {
		module, err := s.repo.FindModuleByID(ctx, s.db, moduleID)
		if err != nil {
			return nil, err
		}
		if module == nil {
			return nil, domain.ErrInvalidModule
		}
		sub.ModuleID = module.ID
	}

	if key != sub.SubModuleKey {
		conflict, err := s.repo.FindSubModuleByKey(ctx, s.db, key)
		if err != nil {
			return nil, err
		}
		if conflict != nil && conflict.ID != id {
			return nil, domain.ErrKeyExists
		}
	}

	sub.SubModuleKey = key
	sub.SubModuleName = name
	sub.Status = status
	updated := s.clock.Now()
	sub.UpdatedAt = &updated
	sub.UpdatedBy = "system"

	if err := s.repo.SaveSubModule(ctx, s.db, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) DeleteSubModule(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	sub, err := s.repo.FindSubModuleByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}

	return s.repo.SoftDeleteSubModule(ctx, s.db, id)
}

func validateModuleFields(key, name, status string) (string, string, string, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > 50 {
		return "", "", "", domain.ErrInvalidKey
	}

	name = strings.TrimSpace(name)
	if name == "" || len(name) > 150 {
		return "", "", "", domain.ErrInvalidName
	}

	status = strings.TrimSpace(status)
	if status == "" {
		status = domain.StatusActive
	}
	if status != domain.StatusActive && status != domain.StatusInactive {
		return "", "", "", domain.ErrInvalidStatus
	}

	return key, name, status, nil
}
