// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelkit/main.go
// Summary: Entry point for the texelkit command line tool.
// Usage: texelkit color '#A3C' FF8800 | texelkit decode teams.yaml --key teams

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texelkit/config"
	"github.com/framegrace/texelkit/internal/logging"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "texelkit",
		Short:         "Hex color codec and permissive document decoder",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := opts.logLevel
			if !cmd.Flags().Changed("log-level") {
				level = config.System().GetString(config.SectionLog, config.KeyLevel, level)
			}
			logger, err := logging.New(level)
			if err != nil {
				return err
			}
			logging.Set(logger)
			if err := config.Err(); err != nil {
				logger.Sugar().Warnf("Config: using defaults: %v", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.L().Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newColorCmd(), newDecodeCmd())
	return cmd
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "texelkit: %v\n", err)
		os.Exit(1)
	}
}
