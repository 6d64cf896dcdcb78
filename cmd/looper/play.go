package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"logic-looper-backend/internal/activity"
	"logic-looper-backend/internal/models"
	"logic-looper-backend/internal/puzzle"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the daily puzzle and start the timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := openTracker()
		if err != nil {
			return err
		}

		date := puzzleDate()
		p := puzzle.Daily(date)

		fmt.Printf("Logic Looper %s\n\n", date)
		fmt.Print(renderPuzzle(p))

		if a, ok := tracker.Activity()[date]; ok && a.Solved {
			fmt.Printf("\nAlready solved today: %d points.\n", a.Score)
			return nil
		}

		state := tracker.State(date)
		if state == nil {
			state = &models.GameState{}
		}
		if !state.TimerStarted {
			now := time.Now().UnixMilli()
			state.TimerStarted = true
			state.StartTime = &now
			if err := tracker.SaveState(date, state); err != nil {
				return err
			}
			fmt.Println("\nTimer started. Answer with: looper solve <number>")
		} else {
			fmt.Printf("\nTimer running, %d of %d hints used.\n", state.HintsUsed, models.MaxHintsPerDay)
		}
		return nil
	},
}

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Reveal a hint for the daily puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := openTracker()
		if err != nil {
			return err
		}

		date := puzzleDate()
		state := tracker.State(date)
		if state == nil {
			state = &models.GameState{}
		}

		if state.Completed {
			fmt.Println("Puzzle already completed, no hints needed.")
			return nil
		}
		if activity.RemainingHints(state.HintsUsed) == 0 {
			fmt.Printf("No hints left (%d per day).\n", models.MaxHintsPerDay)
			return nil
		}

		hint := puzzle.Hint(puzzle.Daily(date))
		state.HintsUsed++
		state.HintsRevealed = append(state.HintsRevealed, hint)
		if err := tracker.SaveState(date, state); err != nil {
			return err
		}

		fmt.Println(hint)
		fmt.Printf("%d hint(s) remaining.\n", activity.RemainingHints(state.HintsUsed))
		return nil
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <answer>",
	Short: "Submit an answer for the daily puzzle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answer, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("answer must be a number: %v", err)
		}

		tracker, err := openTracker()
		if err != nil {
			return err
		}

		date := puzzleDate()
		p := puzzle.Daily(date)

		if !puzzle.Validate(p, answer) {
			fmt.Println("Not quite. Try again!")
			return nil
		}

		state := tracker.State(date)
		if state == nil {
			state = &models.GameState{}
		}

		timeTaken := 0
		if state.StartTime != nil {
			timeTaken = int(time.Now().UnixMilli()-*state.StartTime) / 1000
		}

		score := puzzle.Score(timeTaken, state.HintsUsed, p.Difficulty)
		if err := tracker.RecordResult(date, activity.Result{
			Solved:     true,
			Score:      score,
			TimeTaken:  timeTaken,
			Difficulty: p.Difficulty,
			HintsUsed:  state.HintsUsed,
		}); err != nil {
			return err
		}

		state.CurrentAnswer = &answer
		state.Completed = true
		if err := tracker.SaveState(date, state); err != nil {
			return err
		}

		fmt.Printf("Correct! %d points (%ds, %d hints, difficulty %d).\n",
			score, timeTaken, state.HintsUsed, p.Difficulty)
		fmt.Printf("Current streak: %d day(s).\n", tracker.Streak(date))

		// Best-effort: push in the background, never block the player.
		rec := newReconciler(tracker)
		done := make(chan struct{})
		go func() {
			defer close(done)
			rec.Push(cmd.Context())
		}()
		select {
		case <-done:
		case <-time.After(3 * time.Second):
		}
		return nil
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your current streak and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := openTracker()
		if err != nil {
			return err
		}

		date := puzzleDate()
		m := tracker.Activity()

		solved := 0
		total := 0
		for _, a := range m {
			if a.Solved {
				solved++
				total += a.Score
			}
		}

		fmt.Printf("Streak: %d day(s)\n", activity.Streak(m, date))
		fmt.Printf("Puzzles solved: %d\n", solved)
		fmt.Printf("Total points: %d\n", total)
		return nil
	},
}
