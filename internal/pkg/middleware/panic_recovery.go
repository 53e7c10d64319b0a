package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// reports the panic to New Relic when a transaction is active.
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zl.Error("Panic recovered",
						logger.Err(err),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)

					if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
						txn.NoticeError(err)
					}

					_ = utils.InternalServerErrorResponse(c, "")
				}
			}()

			return next(c)
		}
	}
}
