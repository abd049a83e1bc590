package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/app"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/credential"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/session"
)

func main() {
	configPath := flag.String("config", model.DefaultConfigPath(), "path to the config file")
	serverURL := flag.String("server", "", "override the configured server URL")
	flag.Parse()

	if err := run(*configPath, *serverURL); err != nil {
		fmt.Fprintf(os.Stderr, "taskify: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, serverURL string) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
		// The override becomes the new default for later runs.
		if err := model.SaveConfig(configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "taskify: saving config: %v\n", err)
		}
	}

	client := api.NewClient(
		cfg.ServerURL,
		time.Duration(cfg.RequestTimeoutSec)*time.Second,
	)

	sess := session.New(client, &credential.Store{})

	// Try to pick up where the last run left off; a stale or missing
	// token just means the login view shows first.
	resumeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	sess.Resume(resumeCtx)
	cancel()

	program := tea.NewProgram(
		app.New(client, sess, cfg),
		tea.WithAltScreen(),
	)

	_, err = program.Run()
	return err
}
