package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/studyhall/internal/api"
	"github.com/abhisek/studyhall/internal/app"
	"github.com/abhisek/studyhall/internal/auth"
	"github.com/abhisek/studyhall/internal/config"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/spf13/cobra"
)

// runApp resolves config and token, opens the journal, and launches the
// TUI. A broken journal is not fatal: the session still works, history is
// just unavailable.
func runApp(cmd *cobra.Command, courseSlug string) error {
	client, learner, err := buildClient()
	if err != nil {
		return err
	}

	opts := app.Options{
		Client:     client,
		Learner:    learner,
		CourseSlug: courseSlug,
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve journal path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: journal unavailable: %v\n", err)
	} else {
		defer st.Close()
		repo, err := st.EventRepo()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: journal unavailable: %v\n", err)
		} else {
			opts.EventRepo = repo
		}
	}

	return app.Run(opts)
}

// buildClient loads config, resolves the API token (env first, then the
// token file), and returns the API client plus the learner display name.
func buildClient() (*api.Client, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	token := cfg.Token
	if token == "" {
		token, err = auth.LoadToken()
		if err != nil {
			return nil, "", err
		}
	}

	learner := ""
	if token != "" {
		if id, err := auth.IdentityFromToken(token); err == nil {
			learner = id.DisplayName()
		}
	}

	client := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Token:   token,
		Timeout: cfg.Timeout,
	})
	return client, learner, nil
}
