package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
)

func (s *Server) registerTaxonomyRoutes(admin *gin.RouterGroup) {
	admin.GET("/modules", s.ListModules)
	admin.POST("/modules", s.CreateModule)
	admin.PUT("/modules/:id", s.UpdateModule)
	admin.DELETE("/modules/:id", s.DeleteModule)

	admin.GET("/submodules", s.ListSubModules)
	admin.POST("/submodules", s.CreateSubModule)
	admin.PUT("/submodules/:id", s.UpdateSubModule)
	admin.DELETE("/submodules/:id", s.DeleteSubModule)
}

func (s *Server) ListModules(c *gin.Context) {
	modules, err := s.taxonomySvc.ListModules(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": modules})
}

func (s *Server) CreateModule(c *gin.Context) {
	var req taxonomydomain.SaveModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	module, err := s.taxonomySvc.CreateModule(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "module.create", "module", &module.ID, map[string]any{"module_key": module.ModuleKey})
	c.JSON(http.StatusCreated, gin.H{"data": module})
}

func (s *Server) UpdateModule(c *gin.Context) {
	var req taxonomydomain.SaveModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	module, err := s.taxonomySvc.UpdateModule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "module.update", "module", &module.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": module})
}

// DeleteModule tombstones the module and cascades to its submodules.
func (s *Server) DeleteModule(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.taxonomySvc.DeleteModule(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "module.delete", "module", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListSubModules(c *gin.Context) {
	subs, err := s.taxonomySvc.ListSubModules(c.Request.Context(), c.Query("moduleId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": subs})
}

func (s *Server) CreateSubModule(c *gin.Context) {
	var req taxonomydomain.SaveSubModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sub, err := s.taxonomySvc.CreateSubModule(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "submodule.create", "submodule", &sub.ID, map[string]any{"sub_module_key": sub.SubModuleKey})
	c.JSON(http.StatusCreated, gin.H{"data": sub})
}

func (s *Server) UpdateSubModule(c *gin.Context) {
	var req taxonomydomain.SaveSubModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	sub, err := s.taxonomySvc.UpdateSubModule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "submodule.update", "submodule", &sub.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": sub})
}

func (s *Server) DeleteSubModule(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.taxonomySvc.DeleteSubModule(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "submodule.delete", "submodule", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
