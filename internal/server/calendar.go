package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	calendardomain "github.com/smallbiznis/bizconf/internal/calendar/domain"
)

func companyIDQuery(c *gin.Context) (string, bool) {
	companyID := strings.TrimSpace(c.Query("companyId"))
	if companyID == "" {
		AbortWithError(c, newValidationError("companyId", "invalid_company", "companyId is required"))
		return "", false
	}
	return companyID, true
}

func (s *Server) GetBusinessDays(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}

	days, err := s.calendarSvc.LoadBusinessDays(c.Request.Context(), companyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": days})
}

// PutBusinessDays replaces the full seven-entry set. The companyId is
// carried by the entries themselves, matching the replace-all contract.
func (s *Server) PutBusinessDays(c *gin.Context) {
	var days []calendardomain.BusinessDay
	if err := c.ShouldBindJSON(&days); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	companyID := strings.TrimSpace(c.Query("companyId"))
	if companyID == "" && len(days) > 0 {
		companyID = strings.TrimSpace(days[0].CompanyID)
	}

	saved, err := s.calendarSvc.SaveBusinessDays(c.Request.Context(), companyID, days)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, companyID, "business_days.replace", "business_days", nil, map[string]any{
		"working_days": calendardomain.CountWorkingDays(saved),
	})
	c.JSON(http.StatusOK, gin.H{"data": saved})
}

func (s *Server) GetBusinessHours(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}

	hours, err := s.calendarSvc.LoadBusinessHours(c.Request.Context(), companyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": hours})
}

func (s *Server) PutBusinessHours(c *gin.Context) {
	var shifts []calendardomain.BusinessHours
	if err := c.ShouldBindJSON(&shifts); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	companyID := strings.TrimSpace(c.Query("companyId"))
	if companyID == "" && len(shifts) > 0 {
		companyID = strings.TrimSpace(shifts[0].CompanyID)
	}

	saved, err := s.calendarSvc.SaveBusinessHours(c.Request.Context(), companyID, shifts)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, companyID, "business_hours.replace", "business_hours", nil, map[string]any{
		"working_shifts": len(saved),
	})
	c.JSON(http.StatusOK, gin.H{"data": saved})
}

func (s *Server) GetBusinessHolidays(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}

	holidays, err := s.calendarSvc.ListHolidays(c.Request.Context(), companyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": holidays})
}

func (s *Server) GetUpcomingHolidays(c *gin.Context) {
	companyID, ok := companyIDQuery(c)
	if !ok {
		return
	}

	holidays, err := s.calendarSvc.UpcomingHolidays(c.Request.Context(), companyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": holidays})
}

type holidayRequest struct {
	CompanyID   string  `json:"companyId"`
	HolidayDate string  `json:"holidayDate"`
	HolidayName string  `json:"holidayName"`
	HolidayType string  `json:"holidayType"`
	CountryID   *string `json:"countryId"`
	IsFullDay   bool    `json:"isFullDay"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}

func (s *Server) PostBusinessHoliday(c *gin.Context) {
	s.saveHoliday(c, "")
}

func (s *Server) PutBusinessHoliday(c *gin.Context) {
	s.saveHoliday(c, strings.TrimSpace(c.Param("id")))
}

func (s *Server) saveHoliday(c *gin.Context, id string) {
	var req holidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	holiday, err := s.calendarSvc.SaveHoliday(c.Request.Context(), calendardomain.SaveHolidayRequest{
		ID:          id,
		CompanyID:   req.CompanyID,
		HolidayDate: req.HolidayDate,
		HolidayName: req.HolidayName,
		HolidayType: req.HolidayType,
		CountryID:   req.CountryID,
		IsFullDay:   req.IsFullDay,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status := http.StatusOK
	action := "business_holiday.update"
	if id == "" {
		status = http.StatusCreated
		action = "business_holiday.create"
	}

	s.recordAudit(c, holiday.CompanyID, action, "business_holiday", &holiday.ID, map[string]any{
		"holiday_date": holiday.HolidayDate,
		"holiday_name": holiday.HolidayName,
	})
	c.JSON(status, gin.H{"data": holiday})
}

func (s *Server) DeleteBusinessHoliday(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.calendarSvc.DeleteHoliday(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, "", "business_holiday.delete", "business_holiday", &id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
