package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codeace-app/codeace/internal/catalog"
	"github.com/codeace-app/codeace/internal/config"
	"github.com/codeace-app/codeace/internal/grader"
	"github.com/codeace-app/codeace/internal/llm"
	"github.com/codeace-app/codeace/internal/review"
	"github.com/codeace-app/codeace/internal/server"
	"github.com/codeace-app/codeace/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CodeAce API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			if err := store.EnsureDir(p); err != nil {
				return err
			}
			cfg.DBPath = p
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := log.New(os.Stderr, "codeace ", log.LstdFlags)

		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, st.Events())
		if err != nil {
			return fmt.Errorf("init LLM provider: %w", err)
		}

		srv := server.New(server.Deps{
			Config:   cfg,
			Users:    st.Users(),
			Snippets: st.Snippets(),
			Events:   st.Events(),
			Problems: catalog.Default(),
			Reviewer: review.NewService(provider, review.DefaultConfig()),
			Grader:   grader.Demo{},
			Logger:   logger,
		})

		pruner := server.StartPruner(st.Events(), cfg.EventRetention, logger)
		defer pruner.Stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Listen(cfg.ServerPort)
		}()
		logger.Printf("listening on :%s (db %s)", cfg.ServerPort, cfg.DBPath)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Printf("received %s, shutting down", sig)
			return srv.Shutdown()
		}
	},
}
