package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope. Success stays false so the
// frontend can branch on one field for both outcomes.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error"`
}

// HandleError writes err as a JSON error response. Non-AppError values are
// wrapped as internal errors so raw error text never leaks to clients.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	httpCode := appErr.HTTPCode
	if httpCode == 0 {
		httpCode = http.StatusInternalServerError
	}

	c.JSON(httpCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// AsAppError attempts to unwrap err into an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
