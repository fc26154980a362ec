package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codeace-app/codeace/internal/catalog"
)

func (s *Server) handleListProblems(c *fiber.Ctx) error {
	problems := catalog.Filter(
		s.problems.Problems(),
		c.Query("topic"),
		catalog.Difficulty(c.Query("difficulty")),
		c.Query("search"),
	)
	return ok(c, fiber.StatusOK, problems)
}

func (s *Server) handleGetProblem(c *fiber.Ctx) error {
	problem, err := s.problems.Get(c.Params("id"))
	if err != nil {
		var unknown *catalog.ErrUnknownProblem
		if errors.As(err, &unknown) {
			return fail(c, fiber.StatusNotFound, "unknown problem")
		}
		return err
	}
	return ok(c, fiber.StatusOK, problem)
}
