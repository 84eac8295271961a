package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/identity/domain"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Repo     domain.Repository
	Taxonomy taxonomydomain.Repository
	Clock    clock.Clock
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	repo     domain.Repository
	taxonomy taxonomydomain.Repository
	clock    clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("identity.service"),
		repo:     p.Repo,
		taxonomy: p.Taxonomy,
		clock:    p.Clock,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if err := s.attachRoles(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	user, err := s.repo.FindUserByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.attachRoles(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, req domain.SaveUserRequest) (*domain.User, error) {
	username, email, status, err := validateUserFields(req)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindUserByUsername(ctx, s.db, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameExists
	}
	if existing, err := s.repo.FindUserByEmail(ctx, s.db, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailExists
	}

	now := s.clock.Now()
	user := &domain.User{
		ID:          uuid.NewString(),
		Username:    username,
		Email:       email,
		FirstName:   strings.TrimSpace(req.FirstName),
		MiddleName:  strings.TrimSpace(req.MiddleName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Status:      status,
		CreatedAt:   now,
		CreatedBy:   "system",
	}
	if err := s.repo.SaveUser(ctx, s.db, user); err != nil {
		return nil, err
	}
	if err := s.replaceUserRoles(ctx, user.ID, req.Roles, now); err != nil {
		return nil, err
	}
	user.Roles = req.Roles

	s.log.Info("user created", zap.String("username", username))
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req domain.SaveUserRequest) (*domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	user, err := s.repo.FindUserByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	username, email, status, err := validateUserFields(req)
	if err != nil {
		return nil, err
	}

	if username != user.Username {
		if conflict, err := s.repo.FindUserByUsername(ctx, s.db, username); err != nil {
			return nil, err
		} else if conflict != nil && conflict.ID != id {
			return nil, domain.ErrUsernameExists
		}
	}
	if email != user.Email {
		if conflict, err := s.repo.FindUserByEmail(ctx, s.db, email); err != nil {
			return nil, err
		} else if conflict != nil && conflict.ID != id {
			return nil, domain.ErrEmailExists
		}
	}

	now := s.clock.Now()
	user.Username = username
	user.Email = email
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.MiddleName = strings.TrimSpace(req.MiddleName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	user.Status = status
	user.UpdatedAt = &now
	user.UpdatedBy = "system"

	if err := s.repo.SaveUser(ctx, s.db, user); err != nil {
		return nil, err
	}
	if err := s.replaceUserRoles(ctx, user.ID, req.Roles, now); err != nil {
		return nil, err
	}
	user.Roles = req.Roles
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	user, err := s.repo.FindUserByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return s.repo.SoftDeleteUser(ctx, s.db, id)
}

func (s *Service) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.repo.ListRoles(ctx, s.db)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if err := s.attachPermissions(ctx, &roles[i]); err != nil {
			return nil, err
		}
	}
	return roles, nil
}

func (s *Service) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	role, err := s.repo.FindRoleByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.attachPermissions(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) CreateRole(ctx context.Context, req domain.SaveRoleRequest) (*domain.Role, error) {
	name := strings.TrimSpace(req.RoleName)
	if name == "" || len(name) > 100 {
		return nil, domain.ErrInvalidRoleName
	}

	if existing, err := s.repo.FindRoleByName(ctx, s.db, name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrRoleNameExists
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusActive
	}

	now := s.clock.Now()
	role := &domain.Role{
		ID:          uuid.NewString(),
		RoleName:    name,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		CreatedAt:   now,
		CreatedBy:   "system",
	}
	if err := s.repo.SaveRole(ctx, s.db, role); err != nil {
		return nil, err
	}
	if err := s.replaceRolePermissions(ctx, role.ID, req.Permissions, now); err != nil {
		return nil, err
	}
	role.Permissions = req.Permissions

	s.log.Info("role created", zap.String("role_name", name))
	return role, nil
}

func (s *Service) UpdateRole(ctx context.Context, id string, req domain.SaveRoleRequest) (*domain.Role, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	role, err := s.repo.FindRoleByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.RoleName)
	if name == "" || len(name) > 100 {
		return nil, domain.ErrInvalidRoleName
	}
	if name != role.RoleName {
		if conflict, err := s.repo.FindRoleByName(ctx, s.db, name); err != nil {
			return nil, err
		} else if conflict != nil && conflict.ID != id {
			return nil, domain.ErrRoleNameExists
		}
	}

	now := s.clock.Now()
	role.RoleName = name
	role.Description = strings.TrimSpace(req.Description)
	if status := strings.TrimSpace(req.Status); status != "" {
		role.Status = status
	}
	role.UpdatedAt = &now
	role.UpdatedBy = "system"

	if err := s.repo.SaveRole(ctx, s.db, role); err != nil {
		return nil, err
	}
	if err := s.replaceRolePermissions(ctx, role.ID, req.Permissions, now); err != nil {
		return nil, err
	}
	role.Permissions = req.Permissions
	return role, nil
}

func (s *Service) DeleteRole(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	role, err := s.repo.FindRoleByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	return s.repo.SoftDeleteRole(ctx, s.db, id)
}

func (s *Service) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	return s.repo.ListPermissions(ctx, s.db)
}

func (s *Service) CreatePermission(ctx context.Context, req domain.SavePermissionRequest) (*domain.Permission, error) {
	key, name, err := validatePermissionFields(req)
	if err != nil {
		return nil, err
	}

	module, err := s.taxonomy.FindModuleByID(ctx, s.db, strings.TrimSpace(req.ModuleID))
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, domain.ErrInvalidModule
	}

	if existing, err := s.repo.FindPermissionByKey(ctx, s.db, key); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrPermissionKeyExists
	}

	perm := &domain.Permission{
		ID:             uuid.NewString(),
		PermissionKey:  key,
		PermissionName: name,
		ModuleID:       module.ID,
		CreatedAt:      s.clock.Now(),
		CreatedBy:      "system",
	}
	if err := s.repo.SavePermission(ctx, s.db, perm); err != nil {
		return nil, err
	}

	s.log.Info("permission created", zap.String("permission_key", key))
	return perm, nil
}

func (s *Service) UpdatePermission(ctx context.Context, id string, req domain.SavePermissionRequest) (*domain.Permission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	perm, err := s.repo.FindPermissionByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, domain.ErrNotFound
	}

	key, name, err := validatePermissionFields(req)
	if err != nil {
		return nil, err
	}

	if key != perm.PermissionKey {
		if conflict, err := s.repo.FindPermissionByKey(ctx, s.db, key); err != nil {
			return nil, err
		} else if conflict != nil && conflict.ID != id {
			return nil, domain.ErrPermissionKeyExists
		}
	}

	if moduleID := strings.TrimSpace(req.ModuleID); moduleID != "" && moduleID != perm.ModuleID {
		module, err := s.taxonomy.FindModuleByID(ctx, s.db, moduleID)
		if err != nil {
			return nil, err
		}
		if module == nil {
			return nil, domain.ErrInvalidModule
		}
		perm.ModuleID = module.ID
	}

	now := s.clock.Now()
	perm.PermissionKey = key
	perm.PermissionName = name
	perm.UpdatedAt = &now
	perm.UpdatedBy = "system"

	if err := s.repo.SavePermission(ctx, s.db, perm); err != nil {
		return nil, err
	}
	return perm, nil
}

func (s *Service) DeletePermission(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrInvalidID
	}

	perm, err := s.repo.FindPermissionByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if perm == nil {
		return domain.ErrNotFound
	}
	return s.repo.SoftDeletePermission(ctx, s.db, id)
}

func (s *Service) attachRoles(ctx context.Context, user *domain.User) error {
	assignments, err := s.repo.ListUserRoles(ctx, s.db, user.ID)
	if err != nil {
		return err
	}
	roles := make([]string, 0, len(assignments))
	for _, a := range assignments {
		roles = append(roles, a.RoleID)
	}
	user.Roles = roles
	return nil
}

func (s *Service) attachPermissions(ctx context.Context, role *domain.Role) error {
	assignments, err := s.repo.ListRolePermissions(ctx, s.db, role.ID)
	if err != nil {
		return err
	}
	perms := make([]string, 0, len(assignments))
	for _, a := range assignments {
		perms = append(perms, a.PermissionID)
	}
	role.Permissions = perms
	return nil
}

func (s *Service) replaceUserRoles(ctx context.Context, userID string, roleIDs []string, now time.Time) error {
	assignments := make([]domain.UserRole, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		roleID = strings.TrimSpace(roleID)
		if roleID == "" {
			continue
		}
		role, err := s.repo.FindRoleByID(ctx, s.db, roleID)
		if err != nil {
			return err
		}
		if role == nil {
			return domain.ErrNotFound
		}
		assignments = append(assignments, domain.UserRole{
			ID:        uuid.NewString(),
			UserID:    userID,
			RoleID:    role.ID,
			CreatedAt: now,
			CreatedBy: "system",
		})
	}
	return s.repo.ReplaceUserRoles(ctx, s.db, userID, assignments)
}

func (s *Service) replaceRolePermissions(ctx context.Context, roleID string, permIDs []string, now time.Time) error {
	assignments := make([]domain.RolePermission, 0, len(permIDs))
	for _, permID := range permIDs {
		permID = strings.TrimSpace(permID)
		if permID == "" {
			continue
		}
		perm, err := s.repo.FindPermissionByID(ctx, s.db, permID)
		if err != nil {
			return err
		}
		if perm == nil {
			return domain.ErrNotFound
		}
		assignments = append(assignments, domain.RolePermission{
			ID:           uuid.NewString(),
			RoleID:       roleID,
			PermissionID: perm.ID,
			CreatedAt:    now,
			CreatedBy:    "system",
		})
	}
	return s.repo.ReplaceRolePermissions(ctx, s.db, roleID, assignments)
}

func validateUserFields(req domain.SaveUserRequest) (string, string, string, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || len(username) > 50 {
		return "", "", "", domain.ErrInvalidUsername
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return "", "", "", domain.ErrInvalidEmail
	}

	if strings.TrimSpace(req.FirstName) == "" {
		return "", "", "", domain.ErrInvalidName
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusActive
	}
	if !domain.IsValidUserStatus(status) {
		return "", "", "", domain.ErrInvalidStatus
	}

	return username, email, status, nil
}

func validatePermissionFields(req domain.SavePermissionRequest) (string, string, error) {
	key := strings.TrimSpace(req.PermissionKey)
	if key == "" || len(key) > 100 {
		return "", "", domain.ErrInvalidPermissionKey
	}

	name := strings.TrimSpace(req.PermissionName)
	if name == "" || len(name) > 150 {
		return "", "", domain.ErrInvalidName
	}

	return key, name, nil
}
