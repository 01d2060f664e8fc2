// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import "log"

// SortBy selects the key that orders intersections along the x axis.
type SortBy string

const (
	// ByFrequency orders intersections by their size.
	ByFrequency SortBy = "frequency"
	// ByDegree orders intersections by the number of sets they
	// involve.
	ByDegree SortBy = "degree"
)

// field returns the name of the derived field s sorts on.
func (s SortBy) field() string {
	if s == ByDegree {
		return "degree"
	}
	return "count"
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// Options configures an UpSet chart. Start from DefaultOptions and
// override fields; the zero Options is not useful.
type Options struct {
	// Title and Subtitle label the whole chart.
	Title    string
	Subtitle []string

	// Sets lists the indicator columns to plot, in the order they
	// appear as matrix rows (top to bottom).
	Sets []string

	// Abbre gives a short display label for each set. It must have
	// the same length as Sets, or it is ignored and the set names
	// are used.
	Abbre []string

	SortBy    SortBy
	SortOrder SortOrder

	// Width and Height are the overall chart size in pixels.
	// HeightRatio is the share of Height given to the intersection
	// size bar chart; the rest goes to the matrix. It must be in
	// [0, 1].
	Width, Height float64
	HeightRatio   float64

	// HorizontalBarChartWidth is the width of the set size bar chart
	// and of the set label column.
	HorizontalBarChartWidth float64

	// ColorRange colors the sets, in Sets order. HighlightColor
	// colors the intersection under the pointer.
	ColorRange     []string
	HighlightColor string

	GlyphSize            float64 // area of the matrix circles
	SetLabelBgSize       float64 // area of the set label circles
	LineConnectionSize   float64 // width of the matrix connectors
	HorizontalBarSize    float64 // thickness of the set size bars
	VerticalBarLabelSize float64 // font size of the bar labels
	VerticalBarPadding   float64 // space between intersection bars

	// Logf reports non-fatal problems with the input. If nil,
	// log.Printf is used.
	Logf func(format string, args ...interface{})
}

// DefaultOptions returns the default chart configuration.
func DefaultOptions() Options {
	return Options{
		SortBy:                  ByFrequency,
		SortOrder:               Ascending,
		Width:                   1200,
		Height:                  700,
		HeightRatio:             0.6,
		HorizontalBarChartWidth: 300,
		ColorRange:              []string{"#55A8DB", "#3070B5", "#30363F", "#F1AD60", "#DF6234", "#BDC6CA"},
		HighlightColor:          "#EA4667",
		GlyphSize:               200,
		SetLabelBgSize:          1000,
		LineConnectionSize:      2,
		HorizontalBarSize:       20,
		VerticalBarLabelSize:    16,
		VerticalBarPadding:      20,
	}
}

// checkSort replaces an unknown SortBy or SortOrder with the default,
// with a warning.
func (o *Options) checkSort() {
	if o.SortBy != ByFrequency && o.SortBy != ByDegree {
		o.logf("sort_by %q is not frequency or degree; using frequency", o.SortBy)
		o.SortBy = ByFrequency
	}
	if o.SortOrder != Ascending && o.SortOrder != Descending {
		o.logf("sort_order %q is not ascending or descending; using ascending", o.SortOrder)
		o.SortOrder = Ascending
	}
}

func (o *Options) logf(format string, args ...interface{}) {
	if o.Logf != nil {
		o.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Style constants shared by the components.
const (
	mainColor          = "#3A3A3A"
	matrixCircleBg     = "#E6E6E6"
	matrixRowStripe    = "#F7F7F7"
	maxVerticalBarSize = 30
)
