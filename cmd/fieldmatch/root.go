// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fieldmatch

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/fieldmatch"
)

type options struct {
	patternsFile  string
	selectionFile string
	outputFile    string
	streams       []string
	matched       bool
	unmatched     bool
	ignoreUnused  bool
	debug         bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "fieldmatch <catalog.json>",
		Short:         "Select fields in a Singer catalog using git-style pattern matching",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.patternsFile, "patterns", "p", "",
		"select fields matching a git-style patterns file")
	flags.StringVarP(&opts.selectionFile, "config", "c", "",
		"select fields from a YAML selection file (patterns + options)")
	flags.StringVarP(&opts.outputFile, "output", "o", "",
		"write output to path instead of stdout")
	flags.StringArrayVarP(&opts.streams, "stream", "s", nil,
		"select every field of the named stream (repeatable)")
	flags.BoolVarP(&opts.matched, "matched", "m", false,
		"instead of catalog, produce list of matched fields")
	flags.BoolVarP(&opts.unmatched, "unmatched", "u", false,
		"instead of catalog, produce list of unmatched fields")
	flags.BoolVar(&opts.ignoreUnused, "ignore-unused-patterns", false,
		"suppress requirement that every pattern matches some field(s)")
	flags.BoolVar(&opts.debug, "debug", false,
		"enable verbose logging to stderr")

	cmd.MarkFlagsMutuallyExclusive("matched", "unmatched")
	cmd.MarkFlagsMutuallyExclusive("patterns", "config")

	return cmd
}

func run(cmd *cobra.Command, catalogPath string, opts *options) error {
	log := newLogger(opts.debug)

	patterns, err := collectPatterns(opts)
	if err != nil {
		return err
	}

	if len(patterns) == 0 {
		patterns = fieldmatch.DefaultPatterns()
	}

	catalog, err := fieldmatch.LoadCatalogFile(catalogPath)
	if err != nil {
		return err
	}

	res := fieldmatch.MatchCatalog(patterns, catalog)
	log.Debug("catalog matched",
		"streams", len(catalog.Streams),
		"patterns", len(patterns),
		"matched", len(res.Matched),
		"unmatched", len(res.Unmatched),
		"unused", len(res.Unused),
	)

	if !opts.ignoreUnused {
		if err := res.CheckUnused(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		out = f
	}

	switch {
	case opts.matched:
		return fieldmatch.ProduceMatched(out, res)
	case opts.unmatched:
		return fieldmatch.ProduceUnmatched(out, res)
	default:
		return fieldmatch.ProduceCatalog(out, catalog, res)
	}
}

// collectPatterns merges stream shorthand with the pattern source, keeping
// shorthand first so a patterns file can still negate whole-stream selects.
func collectPatterns(opts *options) ([]fieldmatch.Pattern, error) {
	sets := make([][]fieldmatch.Pattern, 0, 2)

	if len(opts.streams) > 0 {
		sets = append(sets, fieldmatch.StreamPatterns(opts.streams))
	}

	switch {
	case opts.selectionFile != "":
		selection, err := fieldmatch.LoadSelectionFile(opts.selectionFile)
		if err != nil {
			return nil, err
		}

		patterns, err := selection.Compile()
		if err != nil {
			return nil, err
		}

		if selection.IgnoreUnused {
			opts.ignoreUnused = true
		}

		sets = append(sets, patterns)

	case opts.patternsFile != "":
		patterns, err := fieldmatch.LoadPatternsFile(opts.patternsFile)
		if err != nil {
			return nil, err
		}

		sets = append(sets, patterns)
	}

	return fieldmatch.MergePatterns(sets...), nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
