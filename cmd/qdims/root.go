// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Each is also a flag and a QDIMS_* environment
// variable (dashes become underscores).
const (
	keyConfig        = "config"
	keyOutput        = "output"
	keyLogLevel      = "log-level"
	keyEnforceSquare = "enforce-square"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// app carries the per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

// newRootCmd builds the command tree around v. Tests pass a fresh viper
// instance so invocations never share configuration.
func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "qdims",
		Short: "Inspect dims specifications of quantum objects",
		Long: `qdims classifies dims specifications and computes the index permutation
between their hierarchical form and the row-major tensor layout.

Specifications and index trees are YAML or JSON sequences, e.g. '[[2, 3], [1]]'.

Configuration sources (highest precedence first):
  1. command line flags
  2. QDIMS_* environment variables (QDIMS_OUTPUT, QDIMS_LOG_LEVEL, ...)
  3. qdims.yaml in the working directory or $HOME/.config/qdims`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (default: qdims.yaml in . or $HOME/.config/qdims)")
	pf.StringP(keyOutput, "o", outputText, "output format: text or yaml")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		a.classifyCmd(),
		a.permCmd(),
		a.shapeCmd(),
		a.projectCmd(),
		a.removeCmd(),
	)

	return root
}

// setup resolves configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("QDIMS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.readConfig(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("invalid %s %q: %w", keyLogLevel, a.v.GetString(keyLogLevel), err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	switch out := a.v.GetString(keyOutput); out {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("invalid %s %q: want %s or %s", keyOutput, out, outputText, outputYAML)
	}

	a.logger.Debug("configuration resolved",
		slog.String("config", a.v.ConfigFileUsed()),
		slog.String("output", a.v.GetString(keyOutput)),
		slog.String("command", cmd.Name()),
	)

	return nil
}

// readConfig loads an explicit --config file, or the first qdims.yaml
// found on the search path. A missing default file is not an error.
func (a *app) readConfig() error {
	if cfg := a.v.GetString(keyConfig); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfg, err)
		}
		return nil
	}

	a.v.SetConfigName("qdims")
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	a.v.AddConfigPath("$HOME/.config/qdims")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}
