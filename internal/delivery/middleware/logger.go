package middleware

import (
	"log/slog"
	"time"

	deliverycontext "enrollsync/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs one line per request with latency and status.
type LoggerMiddleware struct {
	logger *slog.Logger
}

// NewLoggerMiddleware creates a new request logging middleware
func NewLoggerMiddleware(logger *slog.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
	}
}

// Handle logs the request after the handler chain completes
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		attrs := []any{
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Int("status", c.Response().Status),
			slog.Duration("latency", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
			logger.Error("Request failed", attrs...)

			return err
		}

		logger.Info("Request completed", attrs...)

		return nil
	}
}
