// cmd/roster/main.go
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/roster/internal/config"
	"github.com/rusenback/roster/internal/gateway"
	"github.com/rusenback/roster/internal/logging"
	"github.com/rusenback/roster/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath   string
	verbose      bool
	userID       int
	directoryURL string
	chatURL      string
	timeout      time.Duration

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Browse people, teams and hashtags, and ask the directory assistant",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd)

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.File, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&userID, "user", 0, "user id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&directoryURL, "directory-url", "", "directory gateway base URL")
	rootCmd.PersistentFlags().StringVar(&chatURL, "chat-url", "", "chat gateway base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout")

	rootCmd.AddCommand(askCmd)
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("user") {
		cfg.User.ID = userID
	}
	if flags.Changed("directory-url") {
		cfg.Gateway.DirectoryURL = directoryURL
	}
	if flags.Changed("chat-url") {
		cfg.Gateway.ChatURL = chatURL
	}
	if flags.Changed("timeout") {
		cfg.Gateway.Timeout = timeout
	}
}

func newClient() (*gateway.Client, error) {
	client, err := gateway.NewClient(cfg.GatewayConfig(), logger.Named("gateway"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway client: %w", err)
	}
	return client, nil
}

func runTUI() error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	m := tui.NewModel(client, tui.Options{
		UserID:       cfg.User.ID,
		CardHeight:   cfg.UI.CardHeight,
		CardMinWidth: cfg.UI.CardMinWidth,
		Logger:       logger.Named("tui"),
	})
	logger.Info("starting roster", zap.Int("user_id", cfg.User.ID), zap.String("directory", cfg.Gateway.DirectoryURL))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
