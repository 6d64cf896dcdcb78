package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	resetConfirm  bool
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "confirm wiping all local progress")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the score server and store the sync credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{
			"email":    loginEmail,
			"password": loginPassword,
		})
		if err != nil {
			return err
		}

		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Post(serverURL+"/api/auth/login", "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("login request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("login rejected (status %d)", resp.StatusCode)
		}

		var out struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Token == "" {
			return fmt.Errorf("unexpected login response")
		}

		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(tokenPath(), []byte(out.Token), 0o600); err != nil {
			return fmt.Errorf("failed to store token: %v", err)
		}

		fmt.Println("Logged in. Solved days will sync automatically.")
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push solved days to the server and pull unseen remote days",
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := openTracker()
		if err != nil {
			return err
		}

		rec := newReconciler(tracker)
		push, pull := rec.Sync(cmd.Context())

		fmt.Printf("push: %s\n", push)
		fmt.Printf("pull: %s\n", pull)

		if push.Failed() || pull.Failed() {
			return fmt.Errorf("sync incomplete")
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all local progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("refusing to wipe local progress without --yes")
		}

		tracker, err := openTracker()
		if err != nil {
			return err
		}
		if err := tracker.Reset(); err != nil {
			return err
		}

		fmt.Println("Local progress cleared.")
		return nil
	},
}
