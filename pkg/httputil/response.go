// Package httputil provides HTTP utility functions.
package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/diasutsman/open-music-api/pkg/cache"
	"github.com/diasutsman/open-music-api/pkg/errors"
)

// DataSourceHeader reports whether a read was served from the cache
// or from the backing store. Diagnostic only.
const DataSourceHeader = "X-Data-Source"

// Response represents a standard API response.
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

// ErrorInfo represents error information in the response.
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a successful response.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		RequestID: GetRequestID(c),
	})
}

// CreatedResponse sends a 201 response for a newly created resource.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		RequestID: GetRequestID(c),
	})
}

// MessageResponse sends a successful response carrying only a message.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		RequestID: GetRequestID(c),
	})
}

// SourcedResponse sends a successful read response and reports the
// value's provenance in the X-Data-Source header.
func SourcedResponse(c *gin.Context, data interface{}, source cache.Source) {
	c.Header(DataSourceHeader, string(source))
	SuccessResponse(c, data)
}

// ErrorResponse sends an error response.
func ErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.Error)
	if !ok {
		// Unknown error - treat as internal error
		appErr = errors.ErrInternal.WithError(err)
	}

	c.JSON(appErr.HTTPStatus, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		RequestID: GetRequestID(c),
	})
}

// GetRequestID retrieves or generates a request ID.
func GetRequestID(c *gin.Context) string {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return requestID
}

// GetUserID retrieves the authenticated user ID from context.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if userID == nil {
		return ""
	}
	return userID.(string)
}

// BindAndValidate binds and validates request data.
func BindAndValidate(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return errors.ErrValidation.WithError(err)
	}
	return nil
}
