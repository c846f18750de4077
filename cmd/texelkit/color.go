// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelkit/color.go
// Summary: The color subcommand parses hex colors and prints their channels.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelkit/config"
	"github.com/framegrace/texelkit/hexcolor"
	"github.com/framegrace/texelkit/stringx"
)

type colorOptions struct {
	alpha    bool
	fallback string
	swatch   bool
}

func newColorCmd() *cobra.Command {
	opts := &colorOptions{}
	cmd := &cobra.Command{
		Use:   "color <hex>...",
		Short: "Parse hex colors (#RGB, #RGBA, #RRGGBB, #RRGGBBAA)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.System()
			if !cmd.Flags().Changed("alpha") {
				opts.alpha = cfg.GetBool(config.SectionColor, config.KeyIncludeAlpha, opts.alpha)
			}
			opts.swatch = cfg.GetBool(config.SectionColor, config.KeySwatch, true) && isTerminal(cmd.OutOrStdout())
			return runColor(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.alpha, "alpha", false, "include the alpha channel in hex output")
	cmd.Flags().StringVar(&opts.fallback, "default", "", "color used when an argument does not parse")
	return cmd
}

func runColor(out, errOut io.Writer, args []string, opts *colorOptions) error {
	var fallback *hexcolor.Color
	if opts.fallback != "" {
		c, err := hexcolor.Parse(opts.fallback)
		if err != nil {
			return fmt.Errorf("--default: %w", err)
		}
		fallback = &c
	}

	width := 0
	for _, arg := range args {
		width = max(width, stringx.Width(arg))
	}

	failed := 0
	for _, arg := range args {
		c, err := hexcolor.Parse(arg)
		note := ""
		if err != nil {
			if fallback == nil {
				fmt.Fprintf(errOut, "%s: %v\n", arg, err)
				failed++
				continue
			}
			c = *fallback
			note = "  (default)"
		}

		ch, _ := c.Channels()
		fmt.Fprintf(out, "%s  %-9s  %3d %3d %3d %3d",
			stringx.PadRight(arg, width), c.Hex(opts.alpha), ch.Red, ch.Green, ch.Blue, ch.Alpha)
		if opts.swatch {
			fmt.Fprintf(out, "  %s", swatch(c))
		}
		fmt.Fprintf(out, "%s\n", note)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d colors invalid", failed, len(args))
	}
	return nil
}

// swatch renders c as a truecolor block labeled with its hex value.
func swatch(c hexcolor.Color) string {
	bg, _ := c.Channels()
	fg := hexcolor.White
	if c.IsLight() {
		fg = hexcolor.Black
	}
	fc, _ := fg.Channels()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm %s \x1b[0m",
		fc.Red, fc.Green, fc.Blue, bg.Red, bg.Green, bg.Blue, c.Hex(false))
}
