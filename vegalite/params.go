// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vegalite

import "fmt"

// Param is a top-level selection parameter.
type Param struct {
	Name   string    `json:"name"`
	Select Selection `json:"select"`
	Bind   string    `json:"bind,omitempty"`

	// Views lists the names of the unit views that define this
	// selection, that is, the views whose marks the user interacts
	// with.
	Views []string `json:"views,omitempty"`
}

// Selection describes how a selection parameter is populated.
type Selection struct {
	Type   string   `json:"type"`
	Fields []string `json:"fields,omitempty"`
	On     string   `json:"on,omitempty"`
}

// PointSelection returns a point selection over fields. If on is
// empty, the runtime default event (click) is used.
func PointSelection(on string, fields ...string) Selection {
	return Selection{Type: "point", Fields: fields, On: on}
}

// Params is a registry of selection parameters keyed by name.
//
// Sub-trees of a chart are built independently and refer to a shared
// selection only by its name: the registry hands out names for
// filters and conditions (Ref) and records which views define each
// selection (Bind). The declarations are lifted to the top level of
// the Spec by NewSpec.
//
// Using a name that was never declared, or declaring a name twice,
// is a programming error and panics.
type Params struct {
	order  []string
	byName map[string]*Param
}

// Declare adds p to the registry and returns it.
func (ps *Params) Declare(p *Param) *Param {
	if ps.byName == nil {
		ps.byName = make(map[string]*Param)
	}
	if _, ok := ps.byName[p.Name]; ok {
		panic(fmt.Sprintf("selection parameter %q declared twice", p.Name))
	}
	ps.byName[p.Name] = p
	ps.order = append(ps.order, p.Name)
	return p
}

// Lookup returns the parameter named name, or nil.
func (ps *Params) Lookup(name string) *Param {
	return ps.byName[name]
}

// Ref returns name after checking that it has been declared.
func (ps *Params) Ref(name string) string {
	ps.must(name)
	return name
}

// Bind records that view defines the selection named name. view must
// be a named unit view.
func (ps *Params) Bind(name string, view *View) {
	p := ps.must(name)
	if view.Name == "" {
		panic(fmt.Sprintf("cannot bind selection parameter %q to an unnamed view", name))
	}
	for _, v := range p.Views {
		if v == view.Name {
			return
		}
	}
	p.Views = append(p.Views, view.Name)
}

// Filter returns a transform that keeps the rows in the selection
// named name.
func (ps *Params) Filter(name string) *Filter {
	return &Filter{Param: ps.Ref(name)}
}

// If returns a condition that holds while a row is in the selection
// named name. An empty selection matches nothing.
func (ps *Params) If(name string, value interface{}) *Condition {
	return &Condition{Param: ps.Ref(name), Empty: Bool(false), Value: value}
}

// List returns the declared parameters in declaration order.
func (ps *Params) List() []*Param {
	out := make([]*Param, 0, len(ps.order))
	for _, name := range ps.order {
		out = append(out, ps.byName[name])
	}
	return out
}

func (ps *Params) must(name string) *Param {
	p := ps.byName[name]
	if p == nil {
		panic(fmt.Sprintf("unknown selection parameter %q", name))
	}
	return p
}
