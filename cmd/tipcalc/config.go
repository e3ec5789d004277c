package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after applying defaults, the config file,
TIPCALC_* environment variables and flags.

Examples:
  tipcalc config
  TIPCALC_CURRENCY=EUR tipcalc config --locale de-DE`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, formatter, used, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := struct {
		File   string      `yaml:"file,omitempty"`
		Sample string      `yaml:"sample"`
		Config interface{} `yaml:"config"`
	}{
		File:   used,
		Sample: formatter.Format(1234.5),
		Config: cfg,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
