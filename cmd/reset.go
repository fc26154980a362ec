package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeace-app/codeace/internal/progress"
	"github.com/codeace-app/codeace/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset an account's progress to a fresh snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("user")
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset discards all XP, streaks and badges; re-run with --force to confirm")
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
		user, err := localUser(ctx, s.Users(), email, false)
		if err != nil {
			return err
		}

		_, err = s.Users().UpdateProgress(ctx, user.UID, func(old progress.Snapshot) (progress.Snapshot, error) {
			fresh := progress.NewSnapshot()
			// Identity survives a reset; only the ledger starts over.
			fresh.Profile = old.Profile
			fresh.Settings = old.Settings
			return fresh, nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("Progress for %s has been reset.\n", user.Email)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("user", "u", "", "Account email to reset")
	resetCmd.Flags().Bool("force", false, "Actually perform the reset")
}
