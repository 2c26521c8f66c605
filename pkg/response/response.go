// Package response is the single translation point between service results
// and the HTTP wire contract: error envelope, pagination envelope, status
// mapping.
package response

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "bookshop/pkg/errors"
)

// CorrelationIDKey is the gin context key under which the correlation id
// middleware stores the per-request id.
const CorrelationIDKey = "correlation_id"

// ErrorBody is the uniform error envelope. Internal causes are never
// serialized; clients get the correlation id to quote instead.
type ErrorBody struct {
	Timestamp     time.Time `json:"timestamp"`
	Status        int       `json:"status"`
	Errors        []string  `json:"errors"`
	CorrelationID string    `json:"correlationId,omitempty"`
}

// Page is the pagination envelope for every list endpoint.
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
}

// NewPage wraps a page of content with its metadata. number is 0-based.
func NewPage(content interface{}, total int64, number, size int) *Page {
	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}
	return &Page{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        number,
		Size:          size,
	}
}

// Error renders err as the uniform envelope and aborts the request.
// The internal cause is logged server-side with the correlation id.
func Error(c *gin.Context, err error) {
	appErr := apperrors.Get(err)
	status := apperrors.HTTPStatus(appErr.Kind)
	correlationID := c.GetString(CorrelationIDKey)

	if appErr.Err != nil {
		logrus.WithFields(logrus.Fields{
			"correlation_id": correlationID,
			"status":         status,
			"path":           c.FullPath(),
		}).WithError(appErr.Err).Error(appErr.Message)
	}

	message := appErr.Message
	if appErr.Kind == apperrors.KindInternal {
		// Internal messages may describe infrastructure; clients get a
		// generic line.
		message = "internal server error"
	}

	c.AbortWithStatusJSON(status, ErrorBody{
		Timestamp:     time.Now().UTC(),
		Status:        status,
		Errors:        []string{message},
		CorrelationID: correlationID,
	})
}

// ValidationError renders a 400 with one line per violation.
func ValidationError(c *gin.Context, messages ...string) {
	status := apperrors.HTTPStatus(apperrors.KindValidation)
	c.AbortWithStatusJSON(status, ErrorBody{
		Timestamp:     time.Now().UTC(),
		Status:        status,
		Errors:        messages,
		CorrelationID: c.GetString(CorrelationIDKey),
	})
}
