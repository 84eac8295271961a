package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	calendardomain "github.com/smallbiznis/bizconf/internal/calendar/domain"
	"github.com/smallbiznis/bizconf/internal/calendar/draft"
	"github.com/smallbiznis/bizconf/internal/calendar/editor"
	companydomain "github.com/smallbiznis/bizconf/internal/company/domain"
	identitydomain "github.com/smallbiznis/bizconf/internal/identity/domain"
	referencedomain "github.com/smallbiznis/bizconf/internal/reference/domain"
	taxonomydomain "github.com/smallbiznis/bizconf/internal/taxonomy/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func classifyErrorForLog(err error) (string, string) {
	_, payload := mapError(err)
	code := payload.Type
	if len(payload.Errors) > 0 {
		code = payload.Errors[0].Code
	}
	return payload.Type, code
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isCalendarValidationError(err),
		isCompanyValidationError(err),
		isIdentityValidationError(err),
		isTaxonomyValidationError(err),
		isEditorValidationError(err):
		return true
	default:
		return false
	}
}

func isCalendarValidationError(err error) bool {
	switch {
	case errors.Is(err, calendardomain.ErrInvalidCompany),
		errors.Is(err, calendardomain.ErrInvalidDaySet),
		errors.Is(err, calendardomain.ErrInvalidDay),
		errors.Is(err, calendardomain.ErrInvalidTime),
		errors.Is(err, calendardomain.ErrInvalidTimeRange),
		errors.Is(err, calendardomain.ErrInvalidHolidayID),
		errors.Is(err, calendardomain.ErrInvalidHolidayName),
		errors.Is(err, calendardomain.ErrInvalidHolidayType),
		errors.Is(err, calendardomain.ErrInvalidHolidayDate),
		errors.Is(err, calendardomain.ErrMissingTimes):
		return true
	default:
		return false
	}
}

func isCompanyValidationError(err error) bool {
	switch {
	case errors.Is(err, companydomain.ErrInvalidID),
		errors.Is(err, companydomain.ErrInvalidCode),
		errors.Is(err, companydomain.ErrInvalidName),
		errors.Is(err, companydomain.ErrInvalidCountry),
		errors.Is(err, companydomain.ErrInvalidCurrency),
		errors.Is(err, companydomain.ErrInvalidTimeZone),
		errors.Is(err, companydomain.ErrInvalidDateFormat),
		errors.Is(err, companydomain.ErrInvalidFiscalMonth):
		return true
	default:
		return false
	}
}

func isIdentityValidationError(err error) bool {
	switch {
	case errors.Is(err, identitydomain.ErrInvalidID),
		errors.Is(err, identitydomain.ErrInvalidUsername),
		errors.Is(err, identitydomain.ErrInvalidEmail),
		errors.Is(err, identitydomain.ErrInvalidName),
		errors.Is(err, identitydomain.ErrInvalidStatus),
		errors.Is(err, identitydomain.ErrInvalidRoleName),
		errors.Is(err, identitydomain.ErrInvalidPermissionKey),
		errors.Is(err, identitydomain.ErrInvalidModule):
		return true
	default:
		return false
	}
}

func isTaxonomyValidationError(err error) bool {
	switch {
	case errors.Is(err, taxonomydomain.ErrInvalidID),
		errors.Is(err, taxonomydomain.ErrInvalidKey),
		errors.Is(err, taxonomydomain.ErrInvalidName),
		errors.Is(err, taxonomydomain.ErrInvalidStatus),
		errors.Is(err, taxonomydomain.ErrInvalidModule):
		return true
	default:
		return false
	}
}

func isEditorValidationError(err error) bool {
	switch {
	case errors.Is(err, editor.ErrValidationFail),
		errors.Is(err, editor.ErrInvalidIndex),
		errors.Is(err, editor.ErrUnknownPreset),
		errors.Is(err, editor.ErrNotLoaded),
		errors.Is(err, editor.ErrDialogClosed):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, companydomain.ErrCodeExists),
		errors.Is(err, identitydomain.ErrUsernameExists),
		errors.Is(err, identitydomain.ErrEmailExists),
		errors.Is(err, identitydomain.ErrRoleNameExists),
		errors.Is(err, identitydomain.ErrPermissionKeyExists),
		errors.Is(err, taxonomydomain.ErrKeyExists),
		errors.Is(err, referencedomain.ErrDuplicateEntry):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, calendardomain.ErrNotFound),
		errors.Is(err, companydomain.ErrNotFound),
		errors.Is(err, identitydomain.ErrNotFound),
		errors.Is(err, taxonomydomain.ErrNotFound),
		errors.Is(err, referencedomain.ErrNotFound),
		errors.Is(err, draft.ErrNoSession),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
