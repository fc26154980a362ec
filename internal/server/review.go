package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codeace-app/codeace/internal/llm"
)

type reviewRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type reviewResponse struct {
	Feedback string `json:"feedback"`
}

func (s *Server) handleReview(c *fiber.Ctx) error {
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	ctx := llm.WithUser(c.Context(), currentUID(c))
	feedback, err := s.reviewer.Review(ctx, req.Code, req.Language)
	if err != nil {
		var rateLimit *llm.ErrRateLimit
		if errors.As(err, &rateLimit) {
			return fail(c, fiber.StatusTooManyRequests, "review service is busy, try again shortly")
		}
		var unavailable *llm.ErrProviderUnavailable
		if errors.As(err, &unavailable) {
			return fail(c, fiber.StatusBadGateway, "review service unavailable")
		}
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	return ok(c, fiber.StatusOK, reviewResponse{Feedback: feedback})
}
