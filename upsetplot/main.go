// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command upsetplot draws an UpSet plot of the set memberships in a
// table.
//
// The input is a delimited text file (optionally gzip or bzip2
// compressed) with a header line, or the result of an SQL query
// against a SQLite database. Each set is a column of membership
// indicators: numbers, where nonzero means member, or booleans.
//
// By default upsetplot writes a Vega-Lite specification as JSON. With
// -html, it writes a page that renders the chart in a browser. With
// -table, it prints the intersections the chart shows when only the
// sets given by -show are selected in the legend. With -summary, it
// prints per-set statistics.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-upset/internal/tabio"
	"github.com/aclements/go-upset/upset"
	"github.com/aclements/go-upset/vegalite"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("upsetplot: ")
	log.SetFlags(0)

	s, err := parseArgs(os.Args[1:], term.IsTerminal(int(os.Stdout.Fd())), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		log.Print(err)
		os.Exit(2)
	}

	if err := emit(context.Background(), s, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// emit runs s and writes the result to the -o file, or to stdout if
// there is none. Nothing is written if the run fails.
func emit(ctx context.Context, s *settings, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := run(ctx, s, &buf); err != nil {
		return err
	}
	if s.out == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return ioutil.WriteFile(s.out, buf.Bytes(), 0666)
}

func run(ctx context.Context, s *settings, w io.Writer) error {
	tab, err := load(ctx, s)
	if err != nil {
		return err
	}
	if s.opts.Sets == nil {
		s.opts.Sets = indicatorColumns(tab)
	}

	if s.table || s.summary {
		p, err := upset.Preprocess(tab, s.opts)
		if err != nil {
			return err
		}
		if s.summary {
			return printSummary(w, p)
		}
		d, err := upset.DisplayTable(p, s.show)
		if err != nil {
			return err
		}
		table.Fprint(w, d)
		return nil
	}

	spec, err := upset.Chart(tab, s.opts)
	if err != nil {
		return err
	}
	if spec == nil {
		return fmt.Errorf("nothing to plot")
	}
	if s.html {
		title := s.opts.Title
		if title == "" {
			title = "UpSet plot"
		}
		return vegalite.WriteHTML(w, spec, title)
	}
	return spec.WriteJSON(w, s.indent)
}

// load reads the input table.
func load(ctx context.Context, s *settings) (*table.Table, error) {
	if s.sqlite == "" {
		return tabio.Open(s.input, s.sep)
	}
	db, err := tabio.OpenSQLite(s.sqlite)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return tabio.Query(ctx, db, s.query)
}

// indicatorColumns returns the columns of t that can hold membership
// indicators, in table order.
func indicatorColumns(t *table.Table) []string {
	var cols []string
	for _, name := range t.Columns() {
		if _, ok := t.Column(name).([]string); !ok {
			cols = append(cols, name)
		}
	}
	return cols
}

func printSummary(w io.Writer, p *upset.Preprocessed) error {
	sum := upset.Summarize(p)
	width := 0
	for _, s := range p.Sets {
		if len(s) > width {
			width = len(s)
		}
	}

	fmt.Fprintf(w, "%d rows, %d intersections\n", sum.Rows, len(p.Intersections))
	fmt.Fprintf(w, "%d in no set, %d in more than one set, %.2f sets per row\n\n", sum.None, sum.Multi, sum.MeanDegree)
	fmt.Fprintf(w, "%-*s %8s %10s\n", width, "set", "size", "exclusive")
	for i, s := range p.Sets {
		fmt.Fprintf(w, "%-*s %8d %10d\n", width, s, sum.SetSizes[i], sum.Exclusive[i])
	}
	if x := sum.MostCommon; x != nil {
		var in []string
		for i, m := range x.Members {
			if m == 1 {
				in = append(in, p.Sets[i])
			}
		}
		fmt.Fprintf(w, "\nlargest intersection: %s (%d rows)\n", strings.Join(in, " & "), x.Count)
	}
	fmt.Fprintf(w, "\n")
	table.Fprint(w, sum.ByDegree)
	return nil
}
