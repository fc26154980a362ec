// Package server exposes the CodeAce REST API: auth, the problem
// catalog, attempt submission, AI review, snippets and the
// leaderboard. Handlers stay thin; all progress semantics live in the
// progress package and all persistence behind the store repos.
package server

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/config"
	"github.com/codeace-app/codeace/internal/grader"
	"github.com/codeace-app/codeace/internal/identity"
	"github.com/codeace-app/codeace/internal/review"
	"github.com/codeace-app/codeace/internal/store"
)

// Server wires the HTTP surface to its collaborators.
type Server struct {
	app    *fiber.App
	logger *log.Logger

	users    store.UserRepo
	snippets store.SnippetRepo
	events   store.EventRepo
	problems catalog.Catalog
	reviewer *review.Service
	grader   grader.Grader
	tokens   *identity.TokenIssuer
}

// Deps carries the collaborators a Server needs. Repos are interfaces
// so handler tests can run against in-memory fakes.
type Deps struct {
	Config   *config.Config
	Users    store.UserRepo
	Snippets store.SnippetRepo
	Events   store.EventRepo
	Problems catalog.Catalog
	Reviewer *review.Service
	Grader   grader.Grader
	Logger   *log.Logger
}

// New builds a Server with routes and middleware registered.
func New(d Deps) *Server {
	s := &Server{
		logger:   d.Logger,
		users:    d.Users,
		snippets: d.Snippets,
		events:   d.Events,
		problems: d.Problems,
		reviewer: d.Reviewer,
		grader:   d.Grader,
		tokens:   identity.NewTokenIssuer(d.Config.JWTSecret, d.Config.TokenTTL),
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "CodeAce",
		ErrorHandler: s.errorHandler,
	})
	s.app.Use(s.requestLogger())
	s.routes()

	return s
}

// App exposes the fiber app, mainly for tests via app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves the API on the given port until the app is shut down.
func (s *Server) Listen(port string) error {
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Post("/auth/signup", s.handleSignUp)
	api.Post("/auth/signin", s.handleSignIn)

	api.Get("/problems", s.handleListProblems)
	api.Get("/problems/:id", s.handleGetProblem)

	auth := api.Group("", s.requireAuth())
	auth.Get("/progress", s.handleGetProgress)
	auth.Post("/attempts", s.handleSubmitAttempt)
	auth.Post("/review", s.handleReview)
	auth.Get("/profile", s.handleGetProfile)
	auth.Put("/profile", s.handleUpdateProfile)
	auth.Put("/settings/:key", s.handleUpdateSetting)
	auth.Get("/leaderboard", s.handleLeaderboard)

	snippets := auth.Group("/snippets")
	snippets.Get("/", s.handleListSnippets)
	snippets.Post("/", s.handleAddSnippet)
	snippets.Put("/:id", s.handleUpdateSnippet)
	snippets.Delete("/:id", s.handleDeleteSnippet)
}

// errorHandler maps errors that escape handlers to JSON envelopes.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fail(c, fe.Code, fe.Message)
	}
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "not found")
	}
	s.logger.Printf("unhandled error: %v", err)
	return fail(c, fiber.StatusInternalServerError, "internal error")
}
