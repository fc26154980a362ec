package server

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codeace-app/codeace/internal/identity"
	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/store"
)

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type userView struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

func viewOf(u *store.User) userView {
	return userView{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

func (s *Server) handleSignUp(c *fiber.Ctx) error {
	var req signUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fail(c, fiber.StatusBadRequest, "a valid email is required")
	}
	if req.DisplayName == "" {
		req.DisplayName = strings.SplitN(req.Email, "@", 2)[0]
	}

	hash, err := identity.HashPassword(req.Password)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now().UTC()
	user := &store.User{
		UID:          identity.NewUID(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		CreatedAt:    now,
		LastLoginAt:  now,
		Progress:     progress.NewSnapshot(),
	}
	if err := s.users.Create(c.Context(), user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return fail(c, fiber.StatusConflict, "email already registered")
		}
		return err
	}

	token, err := s.tokens.Issue(user.UID)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusCreated, authResponse{Token: token, User: viewOf(user)})
}

func (s *Server) handleSignIn(c *fiber.Ctx) error {
	var req signInRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.ByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fail(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		return err
	}

	if err := identity.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return fail(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if err := s.users.TouchLogin(c.Context(), user.UID, time.Now().UTC()); err != nil {
		s.logger.Printf("touch login for %s: %v", user.UID, err)
	}

	token, err := s.tokens.Issue(user.UID)
	if err != nil {
		return err
	}
	return ok(c, fiber.StatusOK, authResponse{Token: token, User: viewOf(user)})
}
