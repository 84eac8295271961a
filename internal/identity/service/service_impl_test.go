package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/bizconf/internal/clock"
	"github.com/smallbiznis/bizconf/internal/identity/domain"
	"github.com/smallbiznis/bizconf/internal/identity/repository"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	taxonomyrepository "github.com/smallbiznis/bizconf/internal/taxonomy/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.UserRole{},
		&domain.Role{},
		&domain.RolePermission{},
		&domain.Permission{},
		&taxonomydomain.Module{},
		&taxonomydomain.SubModule{},
	))

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&taxonomydomain.Module{
		ID: "mod-1", ModuleKey: "SETTINGS", ModuleName: "Settings",
		Status: taxonomydomain.StatusActive, CreatedAt: now, CreatedBy: "system",
	}).Error)

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Repo:     repository.Provide(),
		Taxonomy: taxonomyrepository.Provide(),
		Clock:    clock.NewFakeClock(now),
	})
	return svc, db
}

func userRequest() domain.SaveUserRequest {
	return domain.SaveUserRequest{
		Username:  "jdoe",
		Email:     "JDoe@Example.com",
		FirstName: "Jordan",
		LastName:  "Doe",
	}
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, userRequest())
	require.NoError(t, err)
	assert.Equal(t, "jdoe@example.com", user.Email)
	assert.Equal(t, domain.StatusActive, user.Status)
	assert.NotEmpty(t, user.ID)
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := userRequest()
	req.Username = ""
	_, err := svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	req = userRequest()
	req.Email = "not-an-email"
	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	req = userRequest()
	req.FirstName = ""
	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	req = userRequest()
	req.Status = "Frozen"
	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreateUserUniqueness(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, userRequest())
	require.NoError(t, err)

	dup := userRequest()
	dup.Email = "other@example.com"
	_, err = svc.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrUsernameExists)

	dup = userRequest()
	dup.Username = "other"
	_, err = svc.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestUserRoleAssignmentReplacesSet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	admin, err := svc.CreateRole(ctx, domain.SaveRoleRequest{RoleName: "Admin"})
	require.NoError(t, err)
	viewer, err := svc.CreateRole(ctx, domain.SaveRoleRequest{RoleName: "Viewer"})
	require.NoError(t, err)

	req := userRequest()
	req.Roles = []string{admin.ID, viewer.ID}
	user, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{admin.ID, viewer.ID}, user.Roles)

	req.Roles = []string{viewer.ID}
	updated, err := svc.UpdateUser(ctx, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, []string{viewer.ID}, updated.Roles)

	req.Roles = []string{"missing"}
	_, err = svc.UpdateUser(ctx, user.ID, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUserTombstones(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, userRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))
	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRoleLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	perm, err := svc.CreatePermission(ctx, domain.SavePermissionRequest{
		PermissionKey:  "SETTINGS_VIEW",
		PermissionName: "View Settings",
		ModuleID:       "mod-1",
	})
	require.NoError(t, err)

	role, err := svc.CreateRole(ctx, domain.SaveRoleRequest{
		RoleName:    "Viewer",
		Permissions: []string{perm.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{perm.ID}, role.Permissions)

	_, err = svc.CreateRole(ctx, domain.SaveRoleRequest{RoleName: "Viewer"})
	assert.ErrorIs(t, err, domain.ErrRoleNameExists)

	updated, err := svc.UpdateRole(ctx, role.ID, domain.SaveRoleRequest{
		RoleName: "Read Only",
	})
	require.NoError(t, err)
	assert.Equal(t, "Read Only", updated.RoleName)

	require.NoError(t, svc.DeleteRole(ctx, role.ID))
	_, err = svc.GetRole(ctx, role.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPermissionRequiresKnownModule(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePermission(ctx, domain.SavePermissionRequest{
		PermissionKey:  "GHOST_VIEW",
		PermissionName: "View Ghosts",
		ModuleID:       "missing",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidModule)

	_, err = svc.CreatePermission(ctx, domain.SavePermissionRequest{
		PermissionKey: "",
		ModuleID:      "mod-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPermissionKey)
}

func TestPermissionKeyUniqueness(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePermission(ctx, domain.SavePermissionRequest{
		PermissionKey:  "SETTINGS_VIEW",
		PermissionName: "View Settings",
		ModuleID:       "mod-1",
	})
	require.NoError(t, err)

	_, err = svc.CreatePermission(ctx, domain.SavePermissionRequest{
		PermissionKey:  "SETTINGS_VIEW",
		PermissionName: "Duplicate",
		ModuleID:       "mod-1",
	})
	assert.ErrorIs(t, err, domain.ErrPermissionKeyExists)

	perms, err := svc.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Len(t, perms, 1)
}
