package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookshop/pkg/response"
)

const correlationHeader = "X-Correlation-Id"

// CorrelationID assigns every request an id that links the error envelope
// to the server-side log lines. An id supplied by the caller is kept.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(response.CorrelationIDKey, id)
		c.Header(correlationHeader, id)
		c.Next()
	}
}
