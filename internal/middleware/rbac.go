package middleware

import (
	"github.com/gofiber/fiber/v2"
)

func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func RequireAnyRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		hasPermission := false
		for _, role := range roles {
			if user.HasRole(role) {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !hasPermission(user.Role, permission) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func hasPermission(role, permission string) bool {
	permissions := map[string]map[string]bool{
		"patient": {
			"submit_daily_log":   true,
			"view_own_logs":      true,
			"view_notifications": true,
			"view_documents":     true,
			"book_consultation":  true,
		},
		"clinician": {
			"submit_daily_log":     true,
			"view_own_logs":        true,
			"view_notifications":   true,
			"view_documents":       true,
			"book_consultation":    true,
			"view_patients":        true,
			"manage_patients":      true,
			"view_alerts":          true,
			"acknowledge_alerts":   true,
			"create_prescription":  true,
			"manage_consultations": true,
			"upload_documents":     true,
			"view_dashboard":       true,
		},
		"admin": {
			"submit_daily_log":     true,
			"view_own_logs":        true,
			"view_notifications":   true,
			"view_documents":       true,
			"book_consultation":    true,
			"view_patients":        true,
			"manage_patients":      true,
			"view_alerts":          true,
			"acknowledge_alerts":   true,
			"create_prescription":  true,
			"manage_consultations": true,
			"upload_documents":     true,
			"view_dashboard":       true,
			"assign_roles":         true,
			"view_audit_logs":      true,
			"system_configuration": true,
		},
	}

	if rolePermissions, exists := permissions[role]; exists {
		return rolePermissions[permission]
	}
	return false
}

func GetCurrentUserRole(c *fiber.Ctx) string {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.Role
}

func IsAdmin(c *fiber.Ctx) bool {
	return GetCurrentUserRole(c) == "admin"
}

func IsClinician(c *fiber.Ctx) bool {
	role := GetCurrentUserRole(c)
	return role == "clinician" || role == "admin"
}
