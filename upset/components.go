// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"unicode/utf8"

	"github.com/aclements/go-upset/vegalite"
)

// builder holds what the three components share: the options, the
// selection registry, the base pipeline and the derived sizes.
type builder struct {
	opts   *Options
	sets   []string
	abbre  []string
	params *vegalite.Params
	base   vegalite.Pipeline

	barChartHeight float64 // height of the intersection size chart
	matrixWidth    float64
	matrixHeight   float64
	barSize        float64 // width of one intersection bar
}

func (b *builder) xSort() *vegalite.SortField {
	return &vegalite.SortField{Field: b.opts.SortBy.field(), Op: "max", Order: string(b.opts.SortOrder)}
}

// intersectionX is the shared x channel of the bar chart and the
// matrix: one column per display intersection.
func (b *builder) intersectionX(domain bool) *vegalite.Channel {
	return &vegalite.Channel{
		Field: fieldID,
		Type:  vegalite.Nominal,
		Sort:  b.xSort(),
		Axis:  vegalite.BareAxis(domain),
		Title: vegalite.Null,
	}
}

// setOrderY is the shared y channel of the matrix and the set size
// chart. It is categorical so that the row of a set does not depend on
// how intersections are sorted.
func (b *builder) setOrderY() *vegalite.Channel {
	return &vegalite.Channel{
		Field: fieldOrder,
		Type:  vegalite.Nominal,
		Axis:  vegalite.BareAxis(false),
		Title: vegalite.Null,
	}
}

// brush colors the hovered intersection.
func (b *builder) brush() *vegalite.Channel {
	return &vegalite.Channel{
		Condition: b.params.If(paramHover, b.opts.HighlightColor),
		Value:     mainColor,
	}
}

func (b *builder) tooltip() []*vegalite.Channel {
	return []*vegalite.Channel{
		{Field: fieldCount, Aggregate: "max", Type: vegalite.Quantitative, Title: "Cardinality"},
		{Field: fieldDegree, Type: vegalite.Quantitative, Title: "Degree"},
	}
}

// isIntersect keeps the cells where the set takes part in the
// intersection.
func isIntersect() *vegalite.Filter {
	return vegalite.FilterExpr("datum." + fieldIsIntersect + " == 1")
}

// verticalBar returns the intersection size chart: one bar per
// intersection with its count printed on top.
func (b *builder) verticalBar() *vegalite.View {
	bar := &vegalite.View{
		Name:      "intersection_bar",
		Mark:      &vegalite.Mark{Type: vegalite.MarkBar, Color: mainColor, Size: b.barSize},
		Transform: b.base.Extend(),
		Encoding: &vegalite.Encoding{
			X: b.intersectionX(true),
			Y: &vegalite.Channel{
				Field:     fieldCount,
				Aggregate: "max",
				Type:      vegalite.Quantitative,
				Axis:      &vegalite.Axis{Grid: vegalite.Bool(false), TickCount: 3, Orient: "right"},
				Title:     "Intersection Size",
			},
			Color:   b.brush(),
			Tooltip: b.tooltip(),
		},
	}
	b.params.Bind(paramHover, bar)
	b.params.Bind(paramOpacity, bar)

	textEnc := bar.Encoding.Clone()
	textEnc.Text = &vegalite.Channel{Field: fieldCount, Type: vegalite.Quantitative, Format: ".0f"}
	text := &vegalite.View{
		Name:      "intersection_bar_label",
		Mark:      &vegalite.Mark{Type: vegalite.MarkText, Color: mainColor, Dy: -10, Size: b.opts.VerticalBarLabelSize},
		Transform: b.base.Extend(),
		Encoding:  textEnc,
	}

	v := vegalite.Layered(bar, text)
	v.Width, v.Height = b.matrixWidth, b.barChartHeight
	return v
}

// matrix returns the membership matrix: striped rows, a grey dot in
// every cell, and for each intersection its member dots joined by a
// vertical line.
func (b *builder) matrix() *vegalite.View {
	cell := func(color *vegalite.Channel) *vegalite.Encoding {
		return &vegalite.Encoding{X: b.intersectionX(false), Y: b.setOrderY(), Color: color}
	}
	glyph := &vegalite.Mark{Type: vegalite.MarkCircle, Size: b.opts.GlyphSize, Opacity: vegalite.Float(1)}

	stripes := &vegalite.View{
		Name:      "matrix_stripe",
		Mark:      &vegalite.Mark{Type: vegalite.MarkRect},
		Transform: b.base.Extend(vegalite.FilterExpr("datum." + fieldOrder + " % 2 == 1")),
		Encoding:  cell(vegalite.Value(matrixRowStripe)),
	}
	background := &vegalite.View{
		Name:      "matrix_cell",
		Mark:      glyph,
		Transform: b.base.Extend(),
		Encoding:  cell(vegalite.Value(matrixCircleBg)),
	}

	lineEnc := cell(b.brush())
	lineEnc.Y = &vegalite.Channel{Field: fieldOrder, Aggregate: "min", Type: vegalite.Nominal, Axis: vegalite.BareAxis(false), Title: vegalite.Null}
	lineEnc.Y2 = &vegalite.Channel{Field: fieldOrder, Aggregate: "max"}
	line := &vegalite.View{
		Name:      "matrix_line",
		Mark:      &vegalite.Mark{Type: vegalite.MarkBar, Color: mainColor, Size: b.opts.LineConnectionSize},
		Transform: b.base.Extend(isIntersect()),
		Encoding:  lineEnc,
	}

	dotEnc := cell(b.brush())
	dotEnc.Tooltip = b.tooltip()
	dots := &vegalite.View{
		Name:      "matrix_member",
		Mark:      glyph,
		Transform: b.base.Extend(isIntersect()),
		Encoding:  dotEnc,
	}
	b.params.Bind(paramHover, dots)

	v := vegalite.Layered(stripes, background, line, dots)
	v.Width, v.Height = b.matrixWidth, b.matrixHeight
	return v
}

// showLabelBackground reports whether the set labels are short enough
// to be drawn inside the colored set circles.
func (b *builder) showLabelBackground() bool {
	return len(b.abbre) > 0 && utf8.RuneCountInString(b.abbre[0]) <= 2
}

// setEncoding is shared by the set label column and the set size
// chart. The color scale domain is fixed to all sets so that the
// legend keeps every set while some are filtered out.
func (b *builder) setEncoding() *vegalite.Encoding {
	return &vegalite.Encoding{
		Y: b.setOrderY(),
		Color: &vegalite.Channel{
			Field: fieldSet,
			Type:  vegalite.Nominal,
			Scale: &vegalite.Scale{Domain: b.sets, Range: b.opts.ColorRange},
			Title: vegalite.Null,
		},
		Opacity: vegalite.Value(1),
	}
}

// setLabels returns the set label column. Short labels are drawn in
// white on a circle of the set color, long ones in black.
func (b *builder) setLabels() *vegalite.View {
	labelColor := "black"
	if b.showLabelBackground() {
		labelColor = "white"
	}
	textEnc := b.setEncoding()
	textEnc.Text = &vegalite.Channel{Field: fieldAbbre, Type: vegalite.Nominal}
	textEnc.Color = vegalite.Value(labelColor)
	text := &vegalite.View{
		Name:      "set_label",
		Mark:      &vegalite.Mark{Type: vegalite.MarkText, Align: "center"},
		Transform: b.base.Extend(),
		Encoding:  textEnc,
	}

	if !b.showLabelBackground() {
		text.Width, text.Height = b.opts.HorizontalBarChartWidth, b.matrixHeight
		return text
	}

	bg := &vegalite.View{
		Name:      "set_label_bg",
		Mark:      &vegalite.Mark{Type: vegalite.MarkCircle, Size: b.opts.SetLabelBgSize},
		Transform: b.base.Extend(),
		Encoding:  b.setEncoding(),
	}
	b.params.Bind(paramLegend, bg)

	v := vegalite.Layered(bg, text)
	v.Width, v.Height = b.opts.HorizontalBarChartWidth, b.matrixHeight
	return v
}

// setSize returns the per-set total chart.
func (b *builder) setSize() *vegalite.View {
	enc := b.setEncoding()
	enc.X = &vegalite.Channel{
		Field:     fieldCount,
		Aggregate: "sum",
		Type:      vegalite.Quantitative,
		Axis:      &vegalite.Axis{Grid: vegalite.Bool(false), TickCount: 3},
		Title:     "Set Size",
	}
	v := &vegalite.View{
		Name:      "set_size_bar",
		Mark:      &vegalite.Mark{Type: vegalite.MarkBar, Size: b.opts.HorizontalBarSize},
		Transform: b.base.Extend(isIntersect()),
		Encoding:  enc,
		Width:     b.opts.HorizontalBarChartWidth,
		Height:    b.matrixHeight,
	}
	b.params.Bind(paramLegend, v)
	return v
}
