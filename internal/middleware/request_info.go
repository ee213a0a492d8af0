package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	ClientIPContextKey  = "client_ip"
	UserAgentContextKey = "user_agent"
)

// RequestInfo stores the client IP and User-Agent in locals so audit
// logging can pick them up without re-parsing headers. CF-Connecting-IP
// takes precedence when the app sits behind Cloudflare.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			ip = c.Get("X-Forwarded-For")
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(ClientIPContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}

func GetClientIP(c *fiber.Ctx) string {
	ip, ok := c.Locals(ClientIPContextKey).(string)
	if !ok {
		return ""
	}
	return ip
}

func GetUserAgent(c *fiber.Ctx) string {
	ua, ok := c.Locals(UserAgentContextKey).(string)
	if !ok {
		return ""
	}
	return ua
}
