// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aclements/go-upset/upset"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of the chart options. Every field is
// optional; unset fields keep their defaults.
type fileConfig struct {
	Title     string   `yaml:"title"`
	Subtitle  []string `yaml:"subtitle"`
	Sets      []string `yaml:"sets"`
	Abbre     []string `yaml:"abbre"`
	SortBy    string   `yaml:"sort_by"`
	SortOrder string   `yaml:"sort_order"`

	Width       *float64 `yaml:"width"`
	Height      *float64 `yaml:"height"`
	HeightRatio *float64 `yaml:"height_ratio"`

	Colors    []string `yaml:"colors"`
	Highlight string   `yaml:"highlight"`

	Sizes struct {
		HorizontalBarChartWidth *float64 `yaml:"horizontal_bar_chart_width"`
		Glyph                   *float64 `yaml:"glyph"`
		SetLabelBg              *float64 `yaml:"set_label_bg"`
		LineConnection          *float64 `yaml:"line_connection"`
		HorizontalBar           *float64 `yaml:"horizontal_bar"`
		VerticalBarLabel        *float64 `yaml:"vertical_bar_label"`
		VerticalBarPadding      *float64 `yaml:"vertical_bar_padding"`
	} `yaml:"sizes"`
}

// loadConfig reads a fileConfig from path. Unknown keys are an error.
func loadConfig(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := decodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader) (*fileConfig, error) {
	var cfg fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cfg, nil
}

// apply overlays the fields set in c onto opts.
func (c *fileConfig) apply(opts *upset.Options) error {
	if c.Title != "" {
		opts.Title = c.Title
	}
	if c.Subtitle != nil {
		opts.Subtitle = c.Subtitle
	}
	if c.Sets != nil {
		opts.Sets = c.Sets
	}
	if c.Abbre != nil {
		opts.Abbre = c.Abbre
	}
	if c.SortBy != "" {
		by, err := parseSortBy(c.SortBy)
		if err != nil {
			return err
		}
		opts.SortBy = by
	}
	if c.SortOrder != "" {
		order, err := parseSortOrder(c.SortOrder)
		if err != nil {
			return err
		}
		opts.SortOrder = order
	}
	if c.Colors != nil {
		opts.ColorRange = c.Colors
	}
	if c.Highlight != "" {
		opts.HighlightColor = c.Highlight
	}

	for _, f := range []struct {
		from *float64
		to   *float64
	}{
		{c.Width, &opts.Width},
		{c.Height, &opts.Height},
		{c.HeightRatio, &opts.HeightRatio},
		{c.Sizes.HorizontalBarChartWidth, &opts.HorizontalBarChartWidth},
		{c.Sizes.Glyph, &opts.GlyphSize},
		{c.Sizes.SetLabelBg, &opts.SetLabelBgSize},
		{c.Sizes.LineConnection, &opts.LineConnectionSize},
		{c.Sizes.HorizontalBar, &opts.HorizontalBarSize},
		{c.Sizes.VerticalBarLabel, &opts.VerticalBarLabelSize},
		{c.Sizes.VerticalBarPadding, &opts.VerticalBarPadding},
	} {
		if f.from != nil {
			*f.to = *f.from
		}
	}
	return nil
}

func parseSortBy(s string) (upset.SortBy, error) {
	switch by := upset.SortBy(strings.ToLower(s)); by {
	case upset.ByFrequency, upset.ByDegree:
		return by, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want %s or %s)", s, upset.ByFrequency, upset.ByDegree)
}

func parseSortOrder(s string) (upset.SortOrder, error) {
	switch order := upset.SortOrder(strings.ToLower(s)); order {
	case upset.Ascending, upset.Descending:
		return order, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want %s or %s)", s, upset.Ascending, upset.Descending)
}
