package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"efectivio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLogger tags every request with an id and writes one access line per
// request through logrus.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if user, ok := CurrentUser(c); ok {
			fields["user_id"] = user.ID
		}
		entry := log.WithFields(fields)

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("[http] request")
		case status >= http.StatusBadRequest:
			entry.Warn("[http] request")
		default:
			entry.Info("[http] request")
		}
	}
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

var errInternal = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)

// Recovery turns a panic into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.WithFields(log.Fields{
					"request_id": RequestID(c),
					"panic":      fmt.Sprint(recovered),
					"stack":      string(debug.Stack()),
				}).Error("[http] recovered from panic")
				c.AbortWithStatusJSON(errInternal.HTTPStatus, errInternal.ToHTTPError())
			}
		}()
		c.Next()
	}
}
