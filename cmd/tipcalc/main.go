package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/h0rv/tipcalc/internal/config"
	"github.com/h0rv/tipcalc/internal/logging"
	"github.com/h0rv/tipcalc/internal/money"
	"github.com/h0rv/tipcalc/internal/store"
	"github.com/h0rv/tipcalc/internal/tui"
)

var (
	// CLI flags
	configFlag string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tipcalc",
		Short: "Terminal tip calculator",
		Long: `tipcalc splits a bill and tip between a party of people.

Enter the bill amount, pick a preset tip or type a custom percentage, and set
the number of people. The tip and total per person update as you type.

Configuration is read from tipcalc.yaml (or .toml/.json) in the current
directory or ~/.config/tipcalc, from TIPCALC_* environment variables, and
from the flags below, in increasing order of precedence.`,
		RunE:          runForm,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define CLI flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "Path to a config file")
	pf.String("locale", "", "Locale for currency formatting (e.g. en-US, ru-RU)")
	pf.String("currency", "", "ISO 4217 currency code (e.g. USD, RUB)")
	pf.StringSlice("presets", nil, "Preset tip percentages (e.g. 5,10,15,20,25)")
	pf.Float64("max-bill", 0, "Warn when the bill exceeds this amount")
	pf.Int64("max-party-count", 0, "Warn when the party exceeds this many people")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-file", "", "Write logs to this file")
	pf.Duration("toast-duration", 0, "How long notifications stay visible")

	rootCmd.AddCommand(newCalcCmd(), newConfigCmd())
	return rootCmd
}

// loadConfig resolves configuration for cmd and builds the currency formatter.
// It also returns the config file used, if any.
func loadConfig(cmd *cobra.Command) (*config.Config, *money.Formatter, string, error) {
	cfg, used, err := config.Load(configFlag, cmd.Flags())
	if err != nil {
		return nil, nil, "", err
	}

	formatter, err := money.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to create currency formatter: %w", err)
	}

	return cfg, formatter, used, nil
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, formatter, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The form owns the terminal, so logs go to a file or nowhere.
	var logger *slog.Logger
	if cfg.LogFile != "" {
		var f *os.File
		logger, f, err = logging.SetupFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		logger = logging.Setup(io.Discard, cfg.LogLevel)
	}

	queue := &store.NotificationQueue{}
	session := store.New(
		store.WithLimits(cfg.Limits()),
		store.WithNotifier(queue),
		store.WithLogger(logger),
	)

	app := tui.NewFormModel(session, queue, formatter, tui.FormOptions{
		Presets:       cfg.Presets,
		LinkURL:       cfg.LinkURL,
		ToastDuration: cfg.ToastDuration,
	})

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
