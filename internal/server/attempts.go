package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/grader"
	"github.com/codeace-app/codeace/internal/llm"
	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/store"
)

type attemptRequest struct {
	ProblemID string `json:"problemId"`
	Code      string `json:"code"`
	Language  string `json:"language"`

	// WithFeedback asks for AI review of the submission in the same
	// response. Feedback is best effort; a provider failure never
	// blocks the recorded attempt.
	WithFeedback bool `json:"withFeedback"`
}

type attemptResponse struct {
	Verdict      grader.Verdict    `json:"verdict"`
	XPAwarded    int               `json:"xpAwarded"`
	NewlySolved  bool              `json:"newlySolved"`
	BadgesEarned []progress.Badge  `json:"badgesEarned"`
	Progress     progress.Snapshot `json:"progress"`
	Feedback     string            `json:"feedback,omitempty"`
}

// handleSubmitAttempt grades a submission and folds the result into
// the user's progress snapshot under the revision guard. The attempt
// is appended to the event log either way.
func (s *Server) handleSubmitAttempt(c *fiber.Ctx) error {
	var req attemptRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Code == "" {
		return fail(c, fiber.StatusBadRequest, "code is required")
	}

	problem, err := s.problems.Get(req.ProblemID)
	if err != nil {
		var unknown *catalog.ErrUnknownProblem
		if errors.As(err, &unknown) {
			return fail(c, fiber.StatusNotFound, "unknown problem")
		}
		return err
	}

	verdict, err := s.grader.Grade(c.Context(), problem, req.Code)
	if err != nil {
		return err
	}

	uid := currentUID(c)
	now := time.Now().UTC()

	var result progress.AttemptResult
	user, err := s.users.UpdateProgress(c.Context(), uid, func(snap progress.Snapshot) (progress.Snapshot, error) {
		r, err := progress.RecordAttempt(snap, problem, verdict, now)
		if err != nil {
			return snap, err
		}
		result = r
		return r.Snapshot, nil
	})
	if err != nil {
		return err
	}

	event := store.AttemptEventData{
		UID:         uid,
		ProblemID:   problem.ID,
		Verdict:     string(verdict),
		XPAwarded:   result.XPAwarded,
		NewlySolved: result.NewlySolved,
	}
	if err := s.events.AppendAttempt(c.Context(), event); err != nil {
		s.logger.Printf("append attempt event for %s: %v", uid, err)
	}

	resp := attemptResponse{
		Verdict:      verdict,
		XPAwarded:    result.XPAwarded,
		NewlySolved:  result.NewlySolved,
		BadgesEarned: result.BadgesEarned,
		Progress:     user.Progress,
	}

	if req.WithFeedback {
		feedback, err := s.reviewer.Review(llm.WithUser(c.Context(), uid), req.Code, req.Language)
		if err != nil {
			s.logger.Printf("attempt feedback for %s: %v", uid, err)
		} else {
			resp.Feedback = feedback
		}
	}

	return ok(c, fiber.StatusOK, resp)
}
