package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mesto-be/internal/apperr"
	"mesto-be/internal/models"
)

// InternalMessage is sent for every Internal error regardless of its cause.
const InternalMessage = "An error occurred on the server"

var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindForbidden:    http.StatusForbidden,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindConflict:     http.StatusConflict,
	apperr.KindInternal:     http.StatusInternalServerError,
}

// Classify maps err onto its status code and response body.
func Classify(err error) (int, models.ErrorResponse) {
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind == apperr.KindInternal {
		return http.StatusInternalServerError, models.ErrorResponse{
			Kind:    apperr.KindInternal.String(),
			Message: InternalMessage,
		}
	}

	status, ok := statusByKind[ae.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return status, models.ErrorResponse{
		Kind:    ae.Kind.String(),
		Message: ae.Message,
	}
}

// ErrorHandler renders the last error attached to the context once the rest
// of the chain has run. It must be installed before any handler that can
// fail, and it is the only place an error status is written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := Classify(err)
		if status == http.StatusInternalServerError {
			logrus.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.FullPath(),
				"error":  err.Error(),
			}).Error("Request failed")
		}
		c.JSON(status, body)
	}
}

// Recovery converts panics into Internal errors for ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.Error(apperr.Internal(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}

// NotFoundHandler answers any route that is not registered.
func NotFoundHandler(c *gin.Context) {
	c.Error(apperr.NotFound("Requested resource not found"))
}
