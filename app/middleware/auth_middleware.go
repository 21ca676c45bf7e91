// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/app/services"
	"github.com/hye2gold/Salendar/utils"
)

// AdminAuthMiddleware guards the admin surface with the session cookie
type AdminAuthMiddleware struct {
	sessionService services.SessionService
}

// NewAdminAuthMiddleware creates a new admin authentication middleware
func NewAdminAuthMiddleware(sessionService services.SessionService) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		sessionService: sessionService,
	}
}

// RequireSession validates the admin session cookie. API paths answer with
// 401 JSON; page paths redirect to the login page instead.
func (m *AdminAuthMiddleware) RequireSession() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(utils.AdminSessionCookie)
		if token == "" || m.sessionService.ValidateSession(token) != nil {
			if isAPIPath(c.Path()) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
					Success: false,
					Message: "Admin session is required",
					Error: dto.ErrorDetail{
						Code: "UNAUTHORIZED",
					},
				})
			}
			return c.Redirect().To("/admin/login")
		}

		return c.Next()
	}
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}
