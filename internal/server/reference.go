package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
)

func (s *Server) registerReferenceRoutes(admin *gin.RouterGroup) {
	admin.GET("/countries", s.ListCountries)
	admin.POST("/countries", s.SaveCountry)
	admin.DELETE("/countries/:id", s.DeleteCountry)

	admin.GET("/currencies", s.ListCurrencies)
	admin.POST("/currencies", s.SaveCurrency)
	admin.DELETE("/currencies/:id", s.DeleteCurrency)

	admin.GET("/timezones", s.ListTimeZones)
	admin.POST("/timezones", s.SaveTimeZone)
	admin.DELETE("/timezones/:id", s.DeleteTimeZone)

	admin.GET("/date-formats", s.ListDateFormats)
	admin.POST("/date-formats", s.SaveDateFormat)
	admin.DELETE("/date-formats/:id", s.DeleteDateFormat)
}

func (s *Server) ListCountries(c *gin.Context) {
	countries, err := s.refRepo.ListCountries(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": countries})
}

func (s *Server) SaveCountry(c *gin.Context) {
	var country referencedomain.Country
	if err := c.ShouldBindJSON(&country); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(country.CountryName) == "" || strings.TrimSpace(country.CountryCodeISO2) == "" {
		AbortWithError(c, newValidationError("countryName", "invalid_country", "invalid country"))
		return
	}
	prepareReferenceRecord(&country.ID, &country.Status, &country.CreatedBy)

	if err := s.refRepo.SaveCountry(c.Request.Context(), s.db, &country); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "reference.country.save", "country", &country.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": country})
}

func (s *Server) DeleteCountry(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.refRepo.SoftDeleteCountry(c.Request.Context(), s.db, id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "reference.country.delete", "country", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListCurrencies(c *gin.Context) {
	currencies, err := s.refRepo.ListCurrencies(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": currencies})
}

// SaveCurrency persists one currency; when it carries the default flag
// the previous default is cleared in the same request.
func (s *Server) SaveCurrency(c *gin.Context) {
	var currency referencedomain.Currency
	if err := c.ShouldBindJSON(&currency); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(currency.CurrencyCode) == "" {
		AbortWithError(c, newValidationError("currencyCode", "invalid_currency", "invalid currency"))
		return
	}
	prepareReferenceRecord(&currency.ID, &currency.Status, &currency.CreatedBy)

	if err := s.refRepo.SaveCurrency(c.Request.Context(), s.db, &currency); err != nil {
		AbortWithError(c, err)
		return
	}
	if currency.IsDefault {
		if err := s.refRepo.ClearDefaultCurrency(c.Request.Context(), s.db, currency.ID); err != nil {
			AbortWithError(c, err)
			return
		}
	}

	s.recordAudit(c, "", "reference.currency.save", "currency", &currency.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": currency})
}

func (s *Server) DeleteCurrency(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.refRepo.SoftDeleteCurrency(c.Request.Context(), s.db, id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "reference.currency.delete", "currency", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListTimeZones(c *gin.Context) {
	timezones, err := s.refRepo.ListTimeZones(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": timezones})
}

func (s *Server) SaveTimeZone(c *gin.Context) {
	var timezone referencedomain.TimeZone
	if err := c.ShouldBindJSON(&timezone); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(timezone.TimeZoneName) == "" {
		AbortWithError(c, newValidationError("timeZoneName", "invalid_time_zone", "invalid time zone"))
		return
	}
	prepareReferenceRecord(&timezone.ID, &timezone.Status, &timezone.CreatedBy)

	if err := s.refRepo.SaveTimeZone(c.Request.Context(), s.db, &timezone); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "reference.timezone.save", "timezone", &timezone.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": timezone})
}

func (s *Server) DeleteTimeZone(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.refRepo.SoftDeleteTimeZone(c.Request.Context(), s.db, id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "reference.timezone.delete", "timezone", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListDateFormats(c *gin.Context) {
	formats, err := s.refRepo.ListDateFormats(c.Request.Context(), s.db)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": formats})
}

func (s *Server) SaveDateFormat(c *gin.Context) {
	var format referencedomain.DateFormat
	if err := c.ShouldBindJSON(&format); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(format.FormatString) == "" {
		AbortWithError(c, newValidationError("formatString", "invalid_date_format", "invalid date format"))
		return
	}
	prepareReferenceRecord(&format.ID, &format.Status, &format.CreatedBy)

	if err := s.refRepo.SaveDateFormat(c.Request.Context(), s.db, &format); err != nil {
		AbortWithError(c, err)
		return
	}
	if format.IsDefault {
		if err := s.refRepo.ClearDefaultDateFormat(c.Request.Context(), s.db, format.ID); err != nil {
			AbortWithError(c, err)
			return
		}
	}

	s.recordAudit(c, "", "reference.date_format.save", "date_format", &format.ID, nil)
	c.JSON(http.StatusOK, gin.H{"data": format})
}

func (s *Server) DeleteDateFormat(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.refRepo.SoftDeleteDateFormat(c.Request.Context(), s.db, id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "reference.date_format.delete", "date_format", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func prepareReferenceRecord(id, status, createdBy *string) {
	if strings.TrimSpace(*id) == "" {
		*id = uuid.NewString()
	}
	if strings.TrimSpace(*status) == "" {
		*status = "Active"
	}
	if strings.TrimSpace(*createdBy) == "" {
		*createdBy = "system"
	}
}
