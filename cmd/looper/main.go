// Command looper is the terminal client for the daily puzzle: it renders
// today's board, records solves into a local activity store, and syncs
// solved days against the score service when logged in.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"logic-looper-backend/internal/activity"
	"logic-looper-backend/internal/cloudsync"
	"logic-looper-backend/internal/puzzle"
)

var (
	dataDir   string
	dateFlag  string
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "looper",
	Short: "Play the Logic Looper daily puzzle from the terminal",
	Long: `looper generates the deterministic daily puzzle, tracks your solves
and streak in a local data directory, and optionally syncs solved days
to a Logic Looper score server.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultDir := ".logic-looper"
	if home, err := os.UserHomeDir(); err == nil {
		defaultDir = filepath.Join(home, ".logic-looper")
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDir, "directory for local progress data")
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "puzzle date (YYYY-MM-DD), defaults to today")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "score server base URL")

	rootCmd.AddCommand(todayCmd, hintCmd, solveCmd, streakCmd, loginCmd, syncCmd, resetCmd)
}

func openTracker() (*activity.Tracker, error) {
	store, err := activity.NewFileStore(dataDir)
	if err != nil {
		return nil, err
	}
	return activity.NewTracker(store), nil
}

func puzzleDate() string {
	if dateFlag != "" {
		return dateFlag
	}
	return puzzle.Today(time.Now())
}

func tokenPath() string {
	return filepath.Join(dataDir, "token")
}

func loadToken() string {
	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func newReconciler(tracker *activity.Tracker) *cloudsync.Reconciler {
	return cloudsync.NewReconciler(serverURL, tracker, loadToken)
}

func renderPuzzle(p *puzzle.Puzzle) string {
	var b strings.Builder

	cell := func(v *int) string {
		if v == nil {
			return "__"
		}
		return fmt.Sprintf("%d", *v)
	}

	switch p.Type {
	case puzzle.TypeSequence:
		b.WriteString("Find the missing number in the sequence:\n\n  ")
		parts := make([]string, len(p.Cells))
		for i, v := range p.Cells {
			parts[i] = cell(v)
		}
		b.WriteString(strings.Join(parts, "  "))
		b.WriteString("\n")
	case puzzle.TypePatternGrid:
		b.WriteString("Find the missing number in the grid:\n\n")
		for row := 0; row < 3; row++ {
			b.WriteString("  ")
			for col := 0; col < 3; col++ {
				b.WriteString(fmt.Sprintf("%4s", cell(p.Cells[row*3+col])))
			}
			b.WriteString("\n")
		}
		b.WriteString("\nOptions: ")
		parts := make([]string, len(p.Options))
		for i, o := range p.Options {
			parts[i] = fmt.Sprintf("%d", o)
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nDifficulty: %d/3\n", p.Difficulty))
	return b.String()
}
