package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/bizconf/internal/calendar/editor"
)

type shiftEditRequest struct {
	ShiftName      string `json:"shiftName"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	IsWorkingShift bool   `json:"isWorkingShift"`
	Remarks        string `json:"remarks"`
}

func (r shiftEditRequest) toEdit() editor.ShiftEdit {
	return editor.ShiftEdit{
		ShiftName:      r.ShiftName,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		IsWorkingShift: r.IsWorkingShift,
		Remarks:        r.Remarks,
	}
}

func pathIndex(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Param(name))
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newValidationError(name, "invalid_index", "invalid index")
	}
	return index, nil
}
