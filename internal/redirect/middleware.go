package redirect

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Middleware answers 301 to Target for every request whose path is in the
// table and passes all other requests through untouched. Register it with
// echo's Pre so it runs before routing.
func Middleware(table *Table, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if !table.Contains(path) {
				return next(c)
			}
			logger.Info("redirecting dormant url",
				zap.String("path", path),
				zap.String("target", Target))
			return c.Redirect(http.StatusMovedPermanently, Target)
		}
	}
}
