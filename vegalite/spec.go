// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vegalite is a small, typed model of the subset of the
// Vega-Lite v5 grammar needed to describe composite, interactive
// charts.
//
// A chart is a tree of Views. Unit views carry a Mark and an
// Encoding; composite views carry Layer, HConcat or VConcat children.
// Every view may carry a Transform pipeline, which the Vega-Lite
// runtime evaluates lazily when the chart is rendered. Selection
// parameters are declared once in a Params registry and referenced by
// name from any number of views; see Params.
//
// Nothing in this package renders anything. A Spec marshals to a JSON
// document that a Vega-Lite runtime (vega-embed, vl-convert, ...)
// consumes.
package vegalite

import (
	"encoding/json"
	"io"
)

// Schema is the JSON schema URL written into every Spec.
const Schema = "https://vega.github.io/schema/vega-lite/v5.json"

// Null is a JSON null. Use it for properties where Vega-Lite
// distinguishes "unset" from "explicitly disabled", such as a
// channel's title or the view stroke.
var Null = json.RawMessage("null")

// Record is one row of an inline dataset.
type Record map[string]interface{}

// Spec is a top-level Vega-Lite specification.
type Spec struct {
	Schema   string              `json:"$schema"`
	Title    *Title              `json:"title,omitempty"`
	Params   []*Param            `json:"params,omitempty"`
	Datasets map[string][]Record `json:"datasets,omitempty"`
	Config   *Config             `json:"config,omitempty"`

	*View
}

// NewSpec returns a Spec whose root is v. The selection parameters
// declared in params, if any, are lifted to the top level.
func NewSpec(v *View, params *Params) *Spec {
	s := &Spec{Schema: Schema, View: v}
	if params != nil {
		s.Params = params.List()
	}
	return s
}

// AddDataset adds an inline dataset that views and lookups can
// reference by name.
func (s *Spec) AddDataset(name string, rows []Record) {
	if s.Datasets == nil {
		s.Datasets = make(map[string][]Record)
	}
	if rows == nil {
		rows = []Record{}
	}
	s.Datasets[name] = rows
}

// WriteJSON writes s to w as JSON. If indent is true, the output is
// indented for humans.
func (s *Spec) WriteJSON(w io.Writer, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}

// View is a node of the view tree. Exactly one of Mark, Layer,
// HConcat or VConcat should be set.
type View struct {
	// Name identifies the view. Selection parameters refer to the
	// views that define them by name.
	Name      string      `json:"name,omitempty"`
	Data      *Data       `json:"data,omitempty"`
	Mark      *Mark       `json:"mark,omitempty"`
	Encoding  *Encoding   `json:"encoding,omitempty"`
	Transform []Transform `json:"transform,omitempty"`
	Width     float64     `json:"width,omitempty"`
	Height    float64     `json:"height,omitempty"`
	Layer     []*View     `json:"layer,omitempty"`
	HConcat   []*View     `json:"hconcat,omitempty"`
	VConcat   []*View     `json:"vconcat,omitempty"`
	Spacing   *float64    `json:"spacing,omitempty"`
	Resolve   *Resolve    `json:"resolve,omitempty"`
}

// Layered returns a view that draws views on top of each other, in
// order.
func Layered(views ...*View) *View {
	return &View{Layer: views}
}

// HConcatenated returns a view that places views side by side.
func HConcatenated(spacing float64, views ...*View) *View {
	return &View{HConcat: views, Spacing: &spacing}
}

// VConcatenated returns a view that stacks views vertically.
func VConcatenated(spacing float64, views ...*View) *View {
	return &View{VConcat: views, Spacing: &spacing}
}

// Data refers to a named dataset.
type Data struct {
	Name string `json:"name"`
}

// Resolve controls whether child views share scales.
type Resolve struct {
	Scale map[string]string `json:"scale,omitempty"`
}

// Title is a chart title block.
type Title struct {
	Text             string   `json:"text"`
	Subtitle         []string `json:"subtitle,omitempty"`
	FontSize         float64  `json:"fontSize,omitempty"`
	FontWeight       float64  `json:"fontWeight,omitempty"`
	SubtitleColor    string   `json:"subtitleColor,omitempty"`
	SubtitleFontSize float64  `json:"subtitleFontSize,omitempty"`
}

// Config holds the top-level style defaults of a chart.
type Config struct {
	View   *ViewConfig   `json:"view,omitempty"`
	Title  *TitleConfig  `json:"title,omitempty"`
	Axis   *AxisConfig   `json:"axis,omitempty"`
	Legend *LegendConfig `json:"legend,omitempty"`
	Concat *ConcatConfig `json:"concat,omitempty"`
}

type ViewConfig struct {
	Stroke interface{} `json:"stroke"`
}

type TitleConfig struct {
	FontSize        float64 `json:"fontSize,omitempty"`
	FontWeight      float64 `json:"fontWeight,omitempty"`
	Anchor          string  `json:"anchor,omitempty"`
	SubtitlePadding float64 `json:"subtitlePadding,omitempty"`
}

type AxisConfig struct {
	LabelFontSize   float64 `json:"labelFontSize,omitempty"`
	LabelFontWeight float64 `json:"labelFontWeight,omitempty"`
	TitleFontSize   float64 `json:"titleFontSize,omitempty"`
	TitleFontWeight float64 `json:"titleFontWeight,omitempty"`
	TitlePadding    float64 `json:"titlePadding,omitempty"`
}

type LegendConfig struct {
	TitleFontSize   float64 `json:"titleFontSize,omitempty"`
	TitleFontWeight float64 `json:"titleFontWeight,omitempty"`
	LabelFontSize   float64 `json:"labelFontSize,omitempty"`
	LabelFontWeight float64 `json:"labelFontWeight,omitempty"`
	Padding         float64 `json:"padding,omitempty"`
	Orient          string  `json:"orient,omitempty"`
	SymbolType      string  `json:"symbolType,omitempty"`
	SymbolSize      float64 `json:"symbolSize,omitempty"`
}

type ConcatConfig struct {
	Spacing float64 `json:"spacing"`
}
