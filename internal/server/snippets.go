package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/codeace-app/codeace/internal/store"
)

type snippetRequest struct {
	Title    string `json:"title"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

func (r *snippetRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "title is required"
	}
	if r.Code == "" {
		return "code is required"
	}
	if r.Language == "" {
		r.Language = "plaintext"
	}
	return ""
}

func (s *Server) handleListSnippets(c *fiber.Ctx) error {
	snippets, err := s.snippets.ByUser(c.Context(), currentUID(c))
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, snippets)
}

func (s *Server) handleAddSnippet(c *fiber.Ctx) error {
	var req snippetRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}

	now := time.Now().UTC()
	snip := &store.Snippet{
		ID:        uuid.NewString(),
		UID:       currentUID(c),
		Title:     req.Title,
		Language:  req.Language,
		Code:      req.Code,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.snippets.Add(c.Context(), snip); err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, snip)
}

func (s *Server) handleUpdateSnippet(c *fiber.Ctx) error {
	var req snippetRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if msg := req.validate(); msg != "" {
		return fail(c, fiber.StatusBadRequest, msg)
	}

	err := s.snippets.Update(c.Context(), currentUID(c), c.Params("id"), req.Title, req.Language, req.Code)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, nil)
}

func (s *Server) handleDeleteSnippet(c *fiber.Ctx) error {
	if err := s.snippets.Delete(c.Context(), currentUID(c), c.Params("id")); err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, nil)
}
