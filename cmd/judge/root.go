package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Shivenrastogi59/hackathon-evaluation/cmd/judge/internal"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/api"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/config"
	"github.com/Shivenrastogi59/hackathon-evaluation/internal/tui"
)

var (
	configPath string
	verbose    bool
	force      bool
)

// NewRootCmd creates the root command for the judge binary.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Terminal evaluation panel for hackathon judging",
		Long: `judge is a terminal UI for hackathon judges. It lists the teams
assigned to you, shows each team's submission details alongside the
automated presentation analysis, and collects your scores and feedback.

The judge credential is read from the config file or the JUDGE_API_TOKEN
environment variable. There is no anonymous mode: without a credential the
program refuses to start.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default ~/.judge/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&force, "force", false, "skip the terminal check")

	return cmd
}

// runTUI wires configuration, the API client and the logger, then hands the
// terminal to Bubble Tea until the judge quits.
func runTUI(ctx context.Context) error {
	// A local .env is a convenience for development setups.
	_ = godotenv.Load()

	if !force && !term.IsTerminal(int(os.Stdout.Fd())) {
		return internal.NewNotTTYError()
	}

	path := configPath
	if path == "" {
		path = config.DefaultConfigPath(config.DefaultHomeDir())
	}

	loader := config.NewConfigLoader(config.NewValidator())
	cfg, err := loader.LoadWithDefaults(path)
	if err != nil {
		return internal.NewConfigError(err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, closeLog, err := setupLogger(cfg.Logging)
	if err != nil {
		return internal.NewConfigError(fmt.Errorf("open log file: %w", err))
	}
	defer closeLog()

	client, err := api.NewHTTPClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	}, api.WithLogger(logger))
	if err != nil {
		return internal.NewConfigError(err)
	}

	logger.Info("starting judge panel",
		"base_url", cfg.API.BaseURL,
		"round", cfg.Judging.Round,
	)

	app := tui.NewApp(tui.AppConfig{
		Client: client,
		Round:  cfg.Judging.Round,
		Logger: logger,
	})

	program := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		return err
	}
	return nil
}

// setupLogger opens the log file and builds the slog logger. The TUI owns
// the terminal, so logs never go to stdout or stderr.
func setupLogger(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}

	level := parseLevel(cfg.Level)
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler), func() { _ = file.Close() }, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Execute runs the root command with signal-aware cancellation.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		return internal.HandleError(err)
	}
	return internal.ExitOK
}
