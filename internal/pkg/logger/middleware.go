package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every HTTP request with latency and status.
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("remote_ip", c.RealIP()),
			}
			if requestID, ok := c.Get("request_id").(string); ok {
				fields = append(fields, String("request_id", requestID))
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case res.Status >= 500:
				zl.Error("Server error", fields...)
			case res.Status >= 400:
				zl.Warn("Client error", fields...)
			default:
				zl.Info("Request processed", fields...)
			}

			return err
		}
	}
}
