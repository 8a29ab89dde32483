// errors.go - Maps service errors to HTTP responses

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dress-suggestion-backend/middleware"
	"dress-suggestion-backend/service"
)

const (
	pingTimeout       = 2 * time.Second
	msgInternal       = "Internal Server Error"
	msgInvalidRequest = "Invalid request body."
	msgNoFiles        = "No files were uploaded."
	msgTooManyFiles   = "Only one file may be uploaded."
	msgFileTooLarge   = "File too large."
)

// Response is the body of every account and upload endpoint
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// statusFor picks the HTTP status for a service error. Lookup misses, conflicts
// and bad credentials are ordinary business answers and keep 200.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindNotFound, service.KindConflict, service.KindUnauthorized:
		return http.StatusOK
	case service.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {success:false, message}. Infrastructure causes are logged, never returned.
func (h *Handler) respondError(c *gin.Context, err error) {
	kind := service.KindOf(err)
	message := msgInternal

	var se *service.Error
	if errors.As(err, &se) && kind != service.KindInfrastructure {
		message = se.Message
	}
	if kind == service.KindInfrastructure {
		h.logFailure(c, err)
	}
	c.JSON(statusFor(kind), Response{Success: false, Message: message})
}

// respondTextError is used by the list endpoints, which answer failures in plain text.
func (h *Handler) respondTextError(c *gin.Context, err error) {
	h.logFailure(c, err)
	c.String(http.StatusInternalServerError, msgInternal)
}

func (h *Handler) logFailure(c *gin.Context, err error) {
	_ = c.Error(err) // Attach to the context for the access log
	h.log.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.RequestID(c),
		"path":       c.Request.URL.Path,
	}).Error("request failed")
}
