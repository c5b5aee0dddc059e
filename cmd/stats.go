package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfranca/mestre/internal/history"
	"github.com/gfranca/mestre/internal/store"
	"github.com/gfranca/mestre/internal/workspace"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ws := workspace.Load(context.Background(), s.WorkspaceRepo())
		if len(ws.Records) == 0 {
			fmt.Println("No saved exams yet. Run `mestre` and research one.")
			return nil
		}

		fmt.Printf("%-40s  %8s  %8s  %9s\n", "Exam", "Sessions", "Wrong Qs", "Accuracy")
		fmt.Println(strings.Repeat("─", 72))

		for _, rec := range ws.Records {
			sessions := ws.SessionsFor(rec.Title)
			title := rec.Title
			if len(title) > 40 {
				title = title[:40]
			}
			fmt.Printf("%-40s  %8d  %8d  %8d%%\n",
				title,
				len(sessions),
				len(history.WrongQuestionIDs(sessions)),
				history.OverallAccuracy(sessions),
			)
		}

		all := ws.AllSessions()
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-40s  %8d  %8d  %8d%%\n",
			"TOTAL", len(all), len(history.WrongQuestionIDs(all)), history.OverallAccuracy(all))
		return nil
	},
}
