package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	"github.com/smallbiznis/bizconf/pkg/db/pagination"
)

func (s *Server) ListCompanies(c *gin.Context) {
	var page pagination.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.companySvc.List(c.Request.Context(), companydomain.ListCompanyRequest{
		PageToken: page.PageToken,
		PageSize:  page.PageSize,
		Status:    strings.TrimSpace(c.Query("status")),
		Name:      strings.TrimSpace(c.Query("name")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) CreateCompany(c *gin.Context) {
	var req companydomain.SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	company, err := s.companySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, company.ID, "company.create", "company", &company.ID, map[string]any{
		"company_code": company.CompanyCode,
	})
	c.JSON(http.StatusCreated, gin.H{"data": company})
}

func (s *Server) GetCompany(c *gin.Context) {
	company, err := s.companySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (s *Server) UpdateCompany(c *gin.Context) {
	var req companydomain.SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	company, err := s.companySvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, company.ID, "company.update", "company", &company.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (s *Server) DeleteCompany(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.companySvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, id, "company.delete", "company", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetCompanyOverview returns the read-only merged view. Lookups that
// have not resolved keep their placeholder value.
func (s *Server) GetCompanyOverview(c *gin.Context) {
	store, err := s.overview.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": store.Snapshot()})
}
