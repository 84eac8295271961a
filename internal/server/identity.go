package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	identitydomain "github.com/smallbiznis/bizconf/internal/identity/domain"
)

func (s *Server) registerIdentityRoutes(admin *gin.RouterGroup) {
	admin.GET("/users", s.ListUsers)
	admin.POST("/users", s.CreateUser)
	admin.GET("/users/:id", s.GetUser)
	admin.PUT("/users/:id", s.UpdateUser)
	admin.DELETE("/users/:id", s.DeleteUser)

	admin.GET("/roles", s.ListRoles)
	admin.POST("/roles", s.CreateRole)
	admin.GET("/roles/:id", s.GetRole)
	admin.PUT("/roles/:id", s.UpdateRole)
	admin.DELETE("/roles/:id", s.DeleteRole)

	admin.GET("/permissions", s.ListPermissions)
	admin.POST("/permissions", s.CreatePermission)
	admin.PUT("/permissions/:id", s.UpdatePermission)
	admin.DELETE("/permissions/:id", s.DeletePermission)
}

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.identitySvc.ListUsers(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (s *Server) GetUser(c *gin.Context) {
	user, err := s.identitySvc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) CreateUser(c *gin.Context) {
	var req identitydomain.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.identitySvc.CreateUser(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "user.create", "user", &user.ID, map[string]any{"username": user.Username})
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

func (s *Server) UpdateUser(c *gin.Context) {
	var req identitydomain.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.identitySvc.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "user.update", "user", &user.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) DeleteUser(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.identitySvc.DeleteUser(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "user.delete", "user", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListRoles(c *gin.Context) {
	roles, err := s.identitySvc.ListRoles(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": roles})
}

func (s *Server) GetRole(c *gin.Context) {
	role, err := s.identitySvc.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": role})
}

func (s *Server) CreateRole(c *gin.Context) {
	var req identitydomain.SaveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	role, err := s.identitySvc.CreateRole(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "role.create", "role", &role.ID, map[string]any{"role_name": role.RoleName})
	c.JSON(http.StatusCreated, gin.H{"data": role})
}

func (s *Server) UpdateRole(c *gin.Context) {
	var req identitydomain.SaveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	role, err := s.identitySvc.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "role.update", "role", &role.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": role})
}

func (s *Server) DeleteRole(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.identitySvc.DeleteRole(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "role.delete", "role", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListPermissions(c *gin.Context) {
	perms, err := s.identitySvc.ListPermissions(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": perms})
}

func (s *Server) CreatePermission(c *gin.Context) {
	var req identitydomain.SavePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	perm, err := s.identitySvc.CreatePermission(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "permission.create", "permission", &perm.ID, map[string]any{"permission_key": perm.PermissionKey})
	c.JSON(http.StatusCreated, gin.H{"data": perm})
}

func (s *Server) UpdatePermission(c *gin.Context) {
	var req identitydomain.SavePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	perm, err := s.identitySvc.UpdatePermission(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "permission.update", "permission", &perm.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": perm})
}

func (s *Server) DeletePermission(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.identitySvc.DeletePermission(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "permission.delete", "permission", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
