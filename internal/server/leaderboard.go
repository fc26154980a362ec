package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultLeaderboardSize = 20

type leaderboardEntry struct {
	Rank        int    `json:"rank"`
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	TotalXP     int    `json:"xp"`
	Solved      int    `json:"solved"`
	Streak      int    `json:"streak"`
}

func (s *Server) handleLeaderboard(c *fiber.Ctx) error {
	limit := defaultLeaderboardSize
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			return fail(c, fiber.StatusBadRequest, "limit must be between 1 and 100")
		}
		limit = n
	}

	users, err := s.users.Leaderboard(c.Context(), limit)
	if err != nil {
		return err
	}

	entries := make([]leaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, leaderboardEntry{
			Rank:        i + 1,
			UID:         u.UID,
			DisplayName: u.DisplayName,
			TotalXP:     u.Progress.TotalXP,
			Solved:      u.Progress.SolvedCount(),
			Streak:      u.Progress.Streak.Current,
		})
	}
	return ok(c, fiber.StatusOK, entries)
}
