package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeace-app/codeace/internal/llm"
	"github.com/codeace-app/codeace/internal/review"
	"github.com/codeace-app/codeace/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Get AI feedback on a piece of code",
	Long:  "Sends the given file (or stdin when no file is given) to the configured model and prints the feedback.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("lang")

		var code []byte
		var err error
		if len(args) == 1 {
			code, err = os.ReadFile(args[0])
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

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}
		provider, err := llm.NewProvider(cmd.Context(), cfg, s.Events())
		if err != nil {
			return fmt.Errorf("init LLM provider: %w", err)
		}

		svc := review.NewService(provider, review.DefaultConfig())
		ctx := llm.WithUser(cmd.Context(), "cli")
		feedback, err := svc.Review(ctx, string(code), language)
		if err != nil {
			return err
		}

		fmt.Println(feedback)
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("lang", "javascript", "Language of the code under review")
}
