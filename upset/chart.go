// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"math"
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-upset/vegalite"
)

// Chart builds an UpSet chart of data.
//
// If data is nil or opts.Sets is empty, Chart logs a warning and
// returns a nil Spec and a nil error. An opts.HeightRatio outside
// [0, 1] is replaced by 0.5, and an unknown opts.SortBy or
// opts.SortOrder by its default, with a warning. Errors are returned only
// for tables that cannot be preprocessed; see Preprocess.
func Chart(data table.Grouping, opts Options) (*vegalite.Spec, error) {
	if isNilTable(data) || len(opts.Sets) == 0 {
		opts.logf("No data and/or a list of sets are provided")
		return nil, nil
	}
	if opts.HeightRatio < 0 || 1 < opts.HeightRatio {
		opts.logf("height_ratio set to 0.5")
		opts.HeightRatio = 0.5
	}
	opts.checkSort()

	p, err := Preprocess(data, opts)
	if err != nil {
		return nil, err
	}
	return Compose(p, opts), nil
}

// Compose builds the chart for an already preprocessed table.
// opts.Sets and opts.Abbre are ignored in favor of p's.
func Compose(p *Preprocessed, opts Options) *vegalite.Spec {
	opts.checkSort()
	params := new(vegalite.Params)
	params.Declare(&vegalite.Param{
		Name:   paramLegend,
		Select: vegalite.PointSelection("", fieldSet),
		Bind:   "legend",
	})
	params.Declare(&vegalite.Param{
		Name:   paramHover,
		Select: vegalite.PointSelection("mouseover", fieldID),
	})
	// Declared for click-driven opacity; nothing reads it yet.
	params.Declare(&vegalite.Param{
		Name:   paramOpacity,
		Select: vegalite.PointSelection("", fieldID),
	})

	barChartHeight := opts.Height * opts.HeightRatio
	b := &builder{
		opts:           &opts,
		sets:           p.Sets,
		abbre:          p.Abbre,
		params:         params,
		base:           baseTransforms(p.Sets, params),
		barChartHeight: barChartHeight,
		matrixWidth:    opts.Width - opts.HorizontalBarChartWidth,
		matrixHeight:   opts.Height - barChartHeight,
		barSize:        barSize(opts.Width, len(p.Intersections), opts.VerticalBarPadding),
	}

	upper := b.verticalBar()
	lower := vegalite.HConcatenated(5, b.matrix(), b.setLabels(), b.setSize())
	lower.Resolve = &vegalite.Resolve{Scale: map[string]string{"y": "shared"}}
	root := vegalite.VConcatenated(20, upper, lower)
	root.Data = &vegalite.Data{Name: dataIntersections}

	s := vegalite.NewSpec(root, params)
	s.AddDataset(dataIntersections, records(p.Long))
	s.AddDataset(dataSetToAbbre, records(p.SetToAbbre))
	s.AddDataset(dataSetToOrder, records(p.SetToOrder))
	s.Title = &vegalite.Title{
		Text:             opts.Title,
		Subtitle:         opts.Subtitle,
		FontSize:         20,
		FontWeight:       500,
		SubtitleColor:    mainColor,
		SubtitleFontSize: 14,
	}
	s.Config = topLevelConfig("top", opts.SetLabelBgSize/2)
	return s
}

// barSize returns the width of one intersection bar: narrower as
// intersections are added, but never wider than maxVerticalBarSize.
func barSize(width float64, intersections int, padding float64) float64 {
	size := math.Min(maxVerticalBarSize, width/float64(intersections)-padding)
	return math.Max(size, 1)
}

// topLevelConfig returns the style defaults of an UpSet chart.
func topLevelConfig(legendOrient string, legendSymbolSize float64) *vegalite.Config {
	return &vegalite.Config{
		View: &vegalite.ViewConfig{Stroke: vegalite.Null},
		Title: &vegalite.TitleConfig{
			FontSize:        18,
			FontWeight:      400,
			Anchor:          "start",
			SubtitlePadding: 10,
		},
		Axis: &vegalite.AxisConfig{
			LabelFontSize:   14,
			LabelFontWeight: 300,
			TitleFontSize:   16,
			TitleFontWeight: 400,
			TitlePadding:    10,
		},
		Legend: &vegalite.LegendConfig{
			TitleFontSize:   16,
			TitleFontWeight: 400,
			LabelFontSize:   14,
			LabelFontWeight: 300,
			Padding:         20,
			Orient:          legendOrient,
			SymbolType:      "circle",
			SymbolSize:      legendSymbolSize,
		},
		Concat: &vegalite.ConcatConfig{Spacing: 0},
	}
}

func isNilTable(g table.Grouping) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
