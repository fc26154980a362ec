package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const localsUID = "uid"

// requireAuth verifies the bearer token and stashes the user id in
// the request locals for handlers to read via currentUID.
func (s *Server) requireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return fail(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		uid, err := s.tokens.Verify(token)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(localsUID, uid)
		return c.Next()
	}
}

func currentUID(c *fiber.Ctx) string {
	uid, _ := c.Locals(localsUID).(string)
	return uid
}

// requestLogger logs one line per request with status and latency.
func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.logger.Printf("%s %s %d %s",
			c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start).Round(time.Millisecond))
		return err
	}
}
