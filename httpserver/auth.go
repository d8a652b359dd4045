package httpserver

import (
	"catalog/auth"

	"github.com/labstack/echo/v4"
)

// requireAdmin enforces the role policy before a mutating handler runs.
// Denial short-circuits the request without any service or store access.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role := c.Request().Header.Get(auth.RoleHeader)
		if err := s.Policy.Authorize(role); err != nil {
			return err
		}
		return next(c)
	}
}
