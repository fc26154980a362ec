package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/codeace-app/codeace/internal/progress"
)

func (s *Server) handleGetProgress(c *fiber.Ctx) error {
	user, err := s.users.ByUID(c.Context(), currentUID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, user.Progress)
}

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	user, err := s.users.ByUID(c.Context(), currentUID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, user.Progress.Profile)
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	var patch progress.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := s.users.UpdateProgress(c.Context(), currentUID(c), func(snap progress.Snapshot) (progress.Snapshot, error) {
		return progress.UpdateProfile(snap, patch)
	})
	if err != nil {
		if errors.Is(err, progress.ErrBadInput) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	return ok(c, fiber.StatusOK, user.Progress.Profile)
}

func (s *Server) handleUpdateSetting(c *fiber.Ctx) error {
	var body struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	key := c.Params("key")
	user, err := s.users.UpdateProgress(c.Context(), currentUID(c), func(snap progress.Snapshot) (progress.Snapshot, error) {
		return progress.UpdateSetting(snap, key, body.Value)
	})
	if err != nil {
		if errors.Is(err, progress.ErrBadInput) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return err
	}
	return ok(c, fiber.StatusOK, user.Progress.Settings)
}
