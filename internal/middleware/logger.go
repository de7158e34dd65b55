package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

func LoggerMiddleware(zapLogger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if account, ok := CurrentAccount(c); ok {
			fields = append(fields, zap.Uint64("user_id", account.ID))
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			zapLogger.Error("HTTP request", fields...)
		case status >= 400:
			zapLogger.Warn("HTTP request", fields...)
		default:
			zapLogger.Info("HTTP request", fields...)
		}
	}
}
