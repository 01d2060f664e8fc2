// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-upset/upset"
	"github.com/kballard/go-shellquote"
)

// settings is a parsed command line.
type settings struct {
	opts upset.Options

	input  string // path of the input table, or "-"
	sqlite string // path of a SQLite database to query instead
	query  string
	sep    byte

	out     string
	html    bool
	indent  bool
	table   bool
	show    []string // visible sets for -table; nil for all
	summary bool
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ", ")
}

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

// parseArgs parses the command line args. Options come from, in
// increasing priority, upset.DefaultOptions, the -config file and the
// flags given explicitly. indent is the default of -indent.
func parseArgs(args []string, indent bool, stderr io.Writer) (*settings, error) {
	fs := flag.NewFlagSet("upsetplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := upset.DefaultOptions()
	var (
		flagSets        = fs.String("sets", "", "shell-quoted `list` of indicator columns (default: all numeric columns)")
		flagAbbre       = fs.String("abbre", "", "shell-quoted `list` of set labels, one per set")
		flagSortBy      = fs.String("sort-by", string(def.SortBy), "sort intersections by `key` (frequency or degree)")
		flagSortOrder   = fs.String("sort-order", string(def.SortOrder), "sort `order` (ascending or descending)")
		flagTitle       = fs.String("title", "", "chart `title`")
		flagSubtitle    stringList
		flagWidth       = fs.Float64("width", def.Width, "chart width in `pixels`")
		flagHeight      = fs.Float64("height", def.Height, "chart height in `pixels`")
		flagHeightRatio = fs.Float64("height-ratio", def.HeightRatio, "share of the height given to the intersection bars")
		flagColors      = fs.String("colors", shellquote.Join(def.ColorRange...), "shell-quoted `list` of set colors")
		flagHighlight   = fs.String("highlight", def.HighlightColor, "`color` of the hovered intersection")
		flagConfig      = fs.String("config", "", "read chart options from YAML `file`")
		flagSQLite      = fs.String("sqlite", "", "read the table from SQLite database `db`")
		flagQuery       = fs.String("query", "", "`SQL` query selecting the table from -sqlite")
		flagSep         = fs.String("sep", ",", "field separator `char` (tab, or empty to guess)")
		flagOut         = fs.String("o", "", "write output to `file` (default: stdout)")
		flagHTML        = fs.Bool("html", false, "write a standalone HTML page instead of JSON")
		flagIndent      = fs.Bool("indent", indent, "indent the JSON output (default: if stdout is a terminal)")
		flagTable       = fs.Bool("table", false, "print the display table instead of a chart")
		flagShow        = fs.String("show", "", "shell-quoted `list` of visible sets for -table (default: all)")
		flagSummary     = fs.Bool("summary", false, "print set statistics instead of a chart")
	)
	fs.Var(&flagSubtitle, "subtitle", "subtitle `line`; may be repeated")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: upsetplot [flags] [input.csv|-]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	s := &settings{
		opts:    def,
		input:   "-",
		sqlite:  *flagSQLite,
		query:   *flagQuery,
		out:     *flagOut,
		html:    *flagHTML,
		indent:  *flagIndent,
		table:   *flagTable,
		summary: *flagSummary,
	}
	switch fs.NArg() {
	case 0:
	case 1:
		s.input = fs.Arg(0)
	default:
		fs.Usage()
		return nil, fmt.Errorf("at most one input may be given")
	}
	if (s.sqlite == "") != (s.query == "") {
		return nil, fmt.Errorf("-sqlite and -query must be given together")
	}
	if s.sqlite != "" && fs.NArg() > 0 {
		return nil, fmt.Errorf("cannot read both %s and -sqlite", s.input)
	}

	var err error
	if s.sep, err = parseSep(*flagSep); err != nil {
		return nil, err
	}

	if *flagConfig != "" {
		cfg, err := loadConfig(*flagConfig)
		if err != nil {
			return nil, err
		}
		if err := cfg.apply(&s.opts); err != nil {
			return nil, fmt.Errorf("%s: %w", *flagConfig, err)
		}
	}

	// Overlay the flags given explicitly.
	list := func(name, val string, dst *[]string) {
		if err != nil {
			return
		}
		var l []string
		if l, err = shellquote.Split(val); err != nil {
			err = fmt.Errorf("-%s: %w", name, err)
			return
		}
		*dst = l
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "sets":
			list(f.Name, *flagSets, &s.opts.Sets)
		case "abbre":
			list(f.Name, *flagAbbre, &s.opts.Abbre)
		case "colors":
			list(f.Name, *flagColors, &s.opts.ColorRange)
		case "show":
			list(f.Name, *flagShow, &s.show)
			if s.show == nil {
				s.show = []string{}
			}
		case "sort-by":
			if err == nil {
				s.opts.SortBy, err = parseSortBy(*flagSortBy)
			}
		case "sort-order":
			if err == nil {
				s.opts.SortOrder, err = parseSortOrder(*flagSortOrder)
			}
		case "title":
			s.opts.Title = *flagTitle
		case "subtitle":
			s.opts.Subtitle = flagSubtitle
		case "width":
			s.opts.Width = *flagWidth
		case "height":
			s.opts.Height = *flagHeight
		case "height-ratio":
			s.opts.HeightRatio = *flagHeightRatio
		case "highlight":
			s.opts.HighlightColor = *flagHighlight
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseSep(s string) (byte, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("-sep must be a single byte, got %q", s)
	}
	return s[0], nil
}
