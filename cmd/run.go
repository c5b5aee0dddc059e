package cmd

import (
	"fmt"
	"os"

	"github.com/gfranca/mestre/internal/app"
	"github.com/gfranca/mestre/internal/examinfo"
	"github.com/gfranca/mestre/internal/llm"
	"github.com/gfranca/mestre/internal/questiongen"
	"github.com/gfranca/mestre/internal/store"
	"github.com/gfranca/mestre/internal/study"
	"github.com/gfranca/mestre/internal/workspace"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ws := workspace.Load(ctx, st.WorkspaceRepo())
	opts := app.Options{Workspace: ws}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Exams = examinfo.NewService(provider, examinfo.DefaultConfig())
		opts.Questions = questiongen.NewService(provider, questiongen.DefaultConfig())
		opts.Study = study.NewService(provider, study.DefaultConfig())
	}

	return app.Run(opts)
}
