// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vegalite

// Measurement types of encoded fields.
const (
	Nominal      = "nominal"
	Quantitative = "quantitative"
)

// Mark types.
const (
	MarkBar    = "bar"
	MarkCircle = "circle"
	MarkRect   = "rect"
	MarkText   = "text"
)

// Mark is the graphical primitive of a unit view.
type Mark struct {
	Type    string   `json:"type"`
	Color   string   `json:"color,omitempty"`
	Size    float64  `json:"size,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Align   string   `json:"align,omitempty"`
	Dy      float64  `json:"dy,omitempty"`
}

// Encoding maps data fields or constant values to visual channels.
type Encoding struct {
	X       *Channel   `json:"x,omitempty"`
	Y       *Channel   `json:"y,omitempty"`
	Y2      *Channel   `json:"y2,omitempty"`
	Color   *Channel   `json:"color,omitempty"`
	Opacity *Channel   `json:"opacity,omitempty"`
	Text    *Channel   `json:"text,omitempty"`
	Tooltip []*Channel `json:"tooltip,omitempty"`
}

// Clone returns a shallow copy of e. Channels are shared, so replace
// a channel rather than modifying it in place.
func (e *Encoding) Clone() *Encoding {
	if e == nil {
		return &Encoding{}
	}
	ne := *e
	ne.Tooltip = append([]*Channel(nil), e.Tooltip...)
	return &ne
}

// Channel is a field or value definition for one encoding channel.
//
// A field channel sets Field and Type, and optionally Aggregate. A
// value channel sets Value. Either may carry a Condition, which
// takes precedence while its test holds.
type Channel struct {
	Field     string      `json:"field,omitempty"`
	Type      string      `json:"type,omitempty"`
	Aggregate string      `json:"aggregate,omitempty"`
	Sort      *SortField  `json:"sort,omitempty"`
	Axis      *Axis       `json:"axis,omitempty"`
	Scale     *Scale      `json:"scale,omitempty"`
	Format    string      `json:"format,omitempty"`
	Title     interface{} `json:"title,omitempty"`
	Condition *Condition  `json:"condition,omitempty"`
	Value     interface{} `json:"value,omitempty"`
}

// Value returns a constant-valued channel.
func Value(v interface{}) *Channel {
	return &Channel{Value: v}
}

// Axis configures the axis of a positional channel. Nil boolean
// fields are left to the runtime defaults.
type Axis struct {
	Grid      *bool  `json:"grid,omitempty"`
	Labels    *bool  `json:"labels,omitempty"`
	Ticks     *bool  `json:"ticks,omitempty"`
	Domain    *bool  `json:"domain,omitempty"`
	TickCount int    `json:"tickCount,omitempty"`
	Orient    string `json:"orient,omitempty"`
}

// BareAxis returns an axis with no grid, labels or ticks. The domain
// line is drawn if domain is true.
func BareAxis(domain bool) *Axis {
	return &Axis{Grid: Bool(false), Labels: Bool(false), Ticks: Bool(false), Domain: Bool(domain)}
}

// Scale fixes the domain and range of a channel's scale.
type Scale struct {
	Domain []string `json:"domain,omitempty"`
	Range  []string `json:"range,omitempty"`
}

// SortField sorts the discrete domain of a channel by an aggregate of
// another field.
type SortField struct {
	Field string `json:"field"`
	Op    string `json:"op,omitempty"`
	Order string `json:"order,omitempty"`
}

// Condition is the conditional part of a channel. Exactly one of
// Param or Test should be set.
type Condition struct {
	Param string      `json:"param,omitempty"`
	Empty *bool       `json:"empty,omitempty"`
	Test  string      `json:"test,omitempty"`
	Value interface{} `json:"value"`
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}
