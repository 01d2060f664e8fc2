// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vegalite

import "encoding/json"

// A Transform is one step of a view's data pipeline. Transforms are
// tagged nodes: each concrete type marshals to the single Vega-Lite
// transform object named by its Op.
type Transform interface {
	// Op returns the Vega-Lite name of the transform, such as
	// "filter" or "window".
	Op() string
}

// Filter keeps the rows for which a predicate holds. The predicate is
// either an expression (Expr) or membership in a selection (Param).
type Filter struct {
	Expr  string
	Param string
	Empty *bool
}

// FilterExpr returns a filter on the expression expr.
func FilterExpr(expr string) *Filter {
	return &Filter{Expr: expr}
}

func (*Filter) Op() string { return "filter" }

func (f *Filter) MarshalJSON() ([]byte, error) {
	if f.Param == "" {
		return json.Marshal(struct {
			Filter string `json:"filter"`
		}{f.Expr})
	}
	type pred struct {
		Param string `json:"param"`
		Empty *bool  `json:"empty,omitempty"`
	}
	return json.Marshal(struct {
		Filter pred `json:"filter"`
	}{pred{f.Param, f.Empty}})
}

// AggregateOp is a single aggregate field definition.
type AggregateOp struct {
	Op    string `json:"op"`
	Field string `json:"field,omitempty"`
	As    string `json:"as"`
}

// Aggregate groups rows by GroupBy and summarizes each group.
type Aggregate struct {
	Aggregate []AggregateOp `json:"aggregate"`
	GroupBy   []string      `json:"groupby"`
}

func (*Aggregate) Op() string { return "aggregate" }

// Calculate derives a new field from an expression.
type Calculate struct {
	Calculate string `json:"calculate"`
	As        string `json:"as"`
}

func (*Calculate) Op() string { return "calculate" }

// WindowOp is a single window field definition.
type WindowOp struct {
	Op    string `json:"op"`
	Field string `json:"field,omitempty"`
	As    string `json:"as"`
}

// Window computes ranks and running aggregates over sorted frames of
// rows. A nil Frame bound is unbounded.
type Window struct {
	Window  []WindowOp  `json:"window"`
	Frame   []*int      `json:"frame,omitempty"`
	Sort    []SortField `json:"sort,omitempty"`
	GroupBy []string    `json:"groupby,omitempty"`
}

func (*Window) Op() string { return "window" }

// Frame returns a window frame. Use Unbounded for an open end.
func Frame(lo, hi *int) []*int {
	return []*int{lo, hi}
}

// Unbounded is an open window frame bound.
var Unbounded *int

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}

// Fold collapses the Fold fields into key/value rows named by As.
type Fold struct {
	Fold []string  `json:"fold"`
	As   [2]string `json:"as"`
}

func (*Fold) Op() string { return "fold" }

// Pivot spreads the values of the Pivot field into one column per
// distinct value, filled from Value.
type Pivot struct {
	Pivot   string   `json:"pivot"`
	Value   string   `json:"value"`
	GroupBy []string `json:"groupby,omitempty"`
	AggOp   string   `json:"op,omitempty"`
}

func (*Pivot) Op() string { return "pivot" }

// Lookup joins Fields from a secondary dataset where its Key equals
// the primary field Lookup.
type Lookup struct {
	Lookup string     `json:"lookup"`
	From   LookupFrom `json:"from"`
}

// LookupFrom names the secondary dataset of a Lookup.
type LookupFrom struct {
	Data   Data     `json:"data"`
	Key    string   `json:"key"`
	Fields []string `json:"fields"`
}

func (*Lookup) Op() string { return "lookup" }

// Pipeline is an ordered list of transforms. Views that share a
// prefix of their pipeline take a copy of it with Extend so that
// appending to one view's pipeline never aliases another's.
type Pipeline []Transform

// Extend returns a new pipeline holding p followed by ts.
func (p Pipeline) Extend(ts ...Transform) Pipeline {
	np := make(Pipeline, 0, len(p)+len(ts))
	np = append(np, p...)
	return append(np, ts...)
}

// Ops returns the Op of each transform in p, in order.
func (p Pipeline) Ops() []string {
	ops := make([]string, len(p))
	for i, t := range p {
		ops[i] = t.Op()
	}
	return ops
}
