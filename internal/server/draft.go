package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Draft-session routes back the tabbed editing flow: one session per
// company, three tab editors over a shared form state, and a
// canDeactivate answer for the route-leave guard.
func (s *Server) registerDraftRoutes(admin *gin.RouterGroup) {
	draft := admin.Group("/companies/:id/draft")
	{
		draft.POST("", s.OpenDraft)
		draft.GET("/state", s.GetDraftState)
		draft.DELETE("", s.CloseDraft)

		draft.POST("/days/load", s.DraftDaysLoad)
		draft.GET("/days", s.DraftDays)
		draft.POST("/days/toggle", s.DraftDaysToggle)
		draft.POST("/days/preset", s.DraftDaysPreset)
		draft.PUT("/days/remarks", s.DraftDaysRemarks)
		draft.POST("/days/save", s.DraftDaysSave)

		draft.POST("/hours/load", s.DraftHoursLoad)
		draft.GET("/hours", s.DraftHours)
		draft.PUT("/hours/:index", s.DraftHoursUpdate)
		draft.GET("/hours/validate", s.DraftHoursValidate)
		draft.POST("/hours/save", s.DraftHoursSave)

		draft.POST("/holidays/load", s.DraftHolidaysLoad)
		draft.GET("/holidays", s.DraftHolidays)
		draft.GET("/holidays/upcoming", s.DraftHolidaysUpcoming)
		draft.POST("/holidays/dialog", s.DraftHolidayDialogOpen)
		draft.PUT("/holidays/dialog", s.DraftHolidayDialogUpdate)
		draft.PUT("/holidays/dialog/full-day", s.DraftHolidayDialogFullDay)
		draft.POST("/holidays/dialog/save", s.DraftHolidayDialogSave)
		draft.DELETE("/holidays/:holidayId", s.DraftHolidayDelete)
	}
}

func (s *Server) OpenDraft(c *gin.Context) {
	companyID := strings.TrimSpace(c.Param("id"))

	// Verify the company exists before handing out a session.
	if _, err := s.companySvc.GetByID(c.Request.Context(), companyID); err != nil {
		AbortWithError(c, err)
		return
	}

	session := s.editors.Open(companyID)
	c.JSON(http.StatusOK, gin.H{"data": session.State.Snapshot()})
}

func (s *Server) GetDraftState(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.State.Snapshot()})
}

func (s *Server) CloseDraft(c *gin.Context) {
	s.editors.Close(strings.TrimSpace(c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

func (s *Server) DraftDaysLoad(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Days.Load(c.Request.Context(), session.CompanyID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Days.Days()})
}

func (s *Server) DraftDays(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":                session.Days.Days(),
		"workingDaysCount":    session.Days.WorkingDaysCount(),
		"nonWorkingDaysCount": session.Days.NonWorkingDaysCount(),
	})
}

type dayIndexRequest struct {
	Index int `json:"index"`
}

func (s *Server) DraftDaysToggle(c *gin.Context) {
	var req dayIndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Days.ToggleWorkingDay(req.Index); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Days.Days()})
}

type presetRequest struct {
	Preset string `json:"preset"`
}

func (s *Server) DraftDaysPreset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Days.ApplyPreset(req.Preset); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Days.Days()})
}

type remarksRequest struct {
	Index   int    `json:"index"`
	Remarks string `json:"remarks"`
}

func (s *Server) DraftDaysRemarks(c *gin.Context) {
	var req remarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Days.SetRemarks(req.Index, req.Remarks); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Days.Days()})
}

func (s *Server) DraftDaysSave(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Days.Save(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, session.CompanyID, "business_days.replace", "business_days", nil, map[string]any{
		"working_days": session.Days.WorkingDaysCount(),
	})
	c.JSON(http.StatusOK, gin.H{"data": session.Days.Days()})
}

func (s *Server) DraftHoursLoad(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Hours.Load(c.Request.Context(), session.CompanyID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Hours.Shifts()})
}

func (s *Server) DraftHours(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  session.Hours.Shifts(),
		"stats": session.Hours.Stats(),
	})
}

func (s *Server) DraftHoursUpdate(c *gin.Context) {
	index, err := pathIndex(c, "index")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var edit shiftEditRequest
	if err := c.ShouldBindJSON(&edit); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Hours.UpdateShift(index, edit.toEdit()); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       session.Hours.Shifts(),
		"validation": session.Hours.Validate(),
	})
}

func (s *Server) DraftHoursValidate(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Hours.Validate()})
}

func (s *Server) DraftHoursSave(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Hours.Save(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, session.CompanyID, "business_hours.replace", "business_hours", nil, map[string]any{
		"stats": session.Hours.Stats(),
	})
	c.JSON(http.StatusOK, gin.H{"data": session.Hours.Shifts()})
}

func (s *Server) DraftHolidaysLoad(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Holidays.Load(c.Request.Context(), session.CompanyID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Holidays.Holidays()})
}

func (s *Server) DraftHolidays(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   session.Holidays.Holidays(),
		"counts": session.Holidays.Counts(),
		"dialog": session.Holidays.Dialog(),
	})
}

func (s *Server) DraftHolidaysUpcoming(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	upcoming, err := session.Holidays.Upcoming(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": upcoming})
}

type dialogOpenRequest struct {
	HolidayID string `json:"holidayId"`
}

// DraftHolidayDialogOpen opens the modal: with a holidayId it edits the
// existing record, without one it starts a new full-day Public holiday.
func (s *Server) DraftHolidayDialogOpen(c *gin.Context) {
	var req dialogOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if strings.TrimSpace(req.HolidayID) == "" {
		err = session.Holidays.OpenAdd()
	} else {
		err = session.Holidays.OpenEdit(strings.TrimSpace(req.HolidayID))
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Holidays.Dialog()})
}

type dialogFieldsRequest struct {
	HolidayName string  `json:"holidayName"`
	HolidayDate string  `json:"holidayDate"`
	HolidayType string  `json:"holidayType"`
	CountryID   *string `json:"countryId"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
}

func (s *Server) DraftHolidayDialogUpdate(c *gin.Context) {
	var req dialogFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Holidays.SetFields(req.HolidayName, req.HolidayDate, req.HolidayType, req.CountryID, req.StartTime, req.EndTime); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Holidays.Dialog()})
}

type fullDayRequest struct {
	IsFullDay bool `json:"isFullDay"`
}

func (s *Server) DraftHolidayDialogFullDay(c *gin.Context) {
	var req fullDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Holidays.SetFullDay(req.IsFullDay); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": session.Holidays.Dialog()})
}

func (s *Server) DraftHolidayDialogSave(c *gin.Context) {
	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Holidays.Save(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, session.CompanyID, "business_holiday.save", "business_holiday", nil, nil)
	c.JSON(http.StatusOK, gin.H{
		"data":   session.Holidays.Holidays(),
		"dialog": session.Holidays.Dialog(),
	})
}

func (s *Server) DraftHolidayDelete(c *gin.Context) {
	holidayID := strings.TrimSpace(c.Param("holidayId"))

	session, err := s.editors.Get(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if err := session.Holidays.Delete(c.Request.Context(), holidayID); err != nil {
		AbortWithError(c, err)
		return
	}

	s.recordAudit(c, session.CompanyID, "business_holiday.delete", "business_holiday", &holidayID, nil)
	c.JSON(http.StatusOK, gin.H{"data": session.Holidays.Holidays()})
}
