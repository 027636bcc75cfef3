package middleware

import (
	"net/http"
	"time"

	"crypto-wallet-client/internal/core/ports"
	"crypto-wallet-client/pkg/apperror"
	"crypto-wallet-client/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CtxRequestID is the gin context key carrying the request id.
const CtxRequestID = "request_id"

// RequestID assigns every request a uuid, exposed in the response envelope
// and the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set(CtxRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs every local UI request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("ui request")
	}
}

// Recovery creates a panic recovery middleware. No controller failure is
// ever fatal to the process.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal client error",
				})
			}
		}()
		c.Next()
	}
}

// RequireSession rejects requests while the session is Unauthenticated.
func RequireSession(session ports.SessionController) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Identity() == nil {
			response.Error(c, apperror.ErrNotAuthenticated())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests unless the decoded identity carries the
// admin role. The backend enforces this again on every admin call; this
// guard just keeps the UI honest.
func RequireAdmin(session ports.SessionController) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Identity().IsAdmin() {
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}
		c.Next()
	}
}
