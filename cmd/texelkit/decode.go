// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelkit/decode.go
// Summary: The decode subcommand loads a JSON or YAML document and prints the
// records of one array, skipping elements that do not decode.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelkit/config"
	"github.com/framegrace/texelkit/decode"
	"github.com/framegrace/texelkit/hexcolor"
	"github.com/framegrace/texelkit/stringx"
)

// record is one row of a decoded document.
type record struct {
	Name    string         `json:"name"`
	Value   int            `json:"value"`
	Enabled bool           `json:"enabled"`
	Color   hexcolor.Color `json:"color"`
}

// DecodeValue reads name (required), value (int, default 0), enabled
// (bool, default false) and color (hex, default clear).
func (r *record) DecodeValue(k decode.Keyed) error {
	name, err := k.String("name")
	if err != nil {
		return err
	}
	r.Name = name

	if k.Has("value") {
		if r.Value, err = k.Int("value"); err != nil {
			return err
		}
	}
	if k.Has("enabled") {
		if r.Enabled, err = k.Bool("enabled"); err != nil {
			return err
		}
	}

	r.Color = hexcolor.Clear
	if k.Has("color") {
		s, err := k.String("color")
		if err != nil {
			return err
		}
		if r.Color, err = hexcolor.Parse(s); err != nil {
			return fmt.Errorf("%s: %w", k.KeyPath("color"), err)
		}
	}
	return nil
}

type decodeOptions struct {
	key    string
	alpha  bool
	asJSON bool
}

func newDecodeCmd() *cobra.Command {
	opts := &decodeOptions{}
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Leniently decode an array of records from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.System()
			if !cmd.Flags().Changed("key") {
				opts.key = cfg.GetString(config.SectionDecode, config.KeyArray, opts.key)
			}
			opts.alpha = cfg.GetBool(config.SectionColor, config.KeyIncludeAlpha, false)

			doc, err := decode.ReadFile(args[0])
			if err != nil {
				return err
			}
			return runDecode(cmd.OutOrStdout(), cmd.ErrOrStderr(), doc, opts)
		},
	}
	cmd.Flags().StringVar(&opts.key, "key", "items", "key of the array to decode; empty when the document is the array")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print records as indented JSON instead of a table")
	return cmd
}

func runDecode(out, errOut io.Writer, doc decode.Value, opts *decodeOptions) error {
	var (
		seq decode.Seq
		err error
	)
	if opts.key == "" {
		seq, err = decode.AsSeq(doc, "")
	} else {
		var root decode.Keyed
		if root, err = decode.AsKeyed(doc, ""); err == nil {
			seq, err = root.Seq(opts.key)
		}
	}
	if err != nil {
		return err
	}

	skipped := 0
	records := decode.LenientInto[record](seq, decode.OnSkip(func(path string, err error) {
		skipped++
		fmt.Fprintf(errOut, "skipped %s: %v\n", path, err)
	}))

	if opts.asJSON {
		fmt.Fprintln(out, decode.PrettyJSON(records))
	} else {
		writeTable(out, []string{"NAME", "VALUE", "ENABLED", "COLOR"}, tableRows(records, opts.alpha))
	}
	if skipped > 0 {
		fmt.Fprintf(errOut, "%d of %d items skipped\n", skipped, seq.Len())
	}
	return nil
}

func tableRows(records []record, alpha bool) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.Value),
			strconv.FormatBool(r.Enabled),
			r.Color.Hex(alpha),
		})
	}
	return rows
}

// writeTable prints rows in columns aligned by display width.
func writeTable(out io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = stringx.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], stringx.Width(cell))
		}
	}

	line := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			if i == len(cells)-1 {
				padded[i] = cell
				continue
			}
			padded[i] = stringx.PadRight(cell, widths[i])
		}
		fmt.Fprintln(out, strings.Join(padded, "  "))
	}
	line(header)
	for _, row := range rows {
		line(row)
	}
}
