package middleware

import (
	"log/slog"
	"time"

	"kanakku/config"
	deliverycontext "kanakku/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs every request in debug mode and only failed requests otherwise.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle runs the handler, renders its error so the final status is known, and logs the request.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}
	if logLevel == slog.LevelInfo && !m.debug {
		return
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		fields = append(fields, slog.String("uid", identity.UID))
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
