package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/grader"
	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/store"
)

var submitCmd = &cobra.Command{
	Use:   "submit <problem-id> [file]",
	Short: "Grade a solution and record the attempt",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("user")

		problem, err := catalog.Default().Get(args[0])
		if err != nil {
			return err
		}

		var code []byte
		if len(args) == 2 {
			code, err = os.ReadFile(args[1])
		} else {
			code, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("read code: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		user, err := localUser(ctx, s.Users(), email, true)
		if err != nil {
			return err
		}

		verdict, err := grader.Demo{}.Grade(ctx, problem, string(code))
		if err != nil {
			return fmt.Errorf("grade submission: %w", err)
		}

		var result progress.AttemptResult
		_, err = s.Users().UpdateProgress(ctx, user.UID, func(snap progress.Snapshot) (progress.Snapshot, error) {
			r, err := progress.RecordAttempt(snap, problem, verdict, time.Now().UTC())
			if err != nil {
				return snap, err
			}
			result = r
			return r.Snapshot, nil
		})
		if err != nil {
			return err
		}

		if err := s.Events().AppendAttempt(ctx, store.AttemptEventData{
			UID:         user.UID,
			ProblemID:   problem.ID,
			Verdict:     string(verdict),
			XPAwarded:   result.XPAwarded,
			NewlySolved: result.NewlySolved,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record attempt event: %v\n", err)
		}

		switch {
		case verdict != grader.Correct:
			fmt.Printf("%s: incorrect, no XP awarded\n", problem.Title)
		case result.NewlySolved:
			fmt.Printf("%s: correct! +%d XP\n", problem.Title, result.XPAwarded)
		default:
			fmt.Printf("%s: correct (already solved, streak updated)\n", problem.Title)
		}
		for _, badge := range result.BadgesEarned {
			fmt.Printf("badge earned: %s\n", badge)
		}
		return nil
	},
}

func init() {
	submitCmd.Flags().StringP("user", "u", "", "Account email to record the attempt against")
}
