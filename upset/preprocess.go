// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Names of the derived fields.
const (
	fieldID          = "intersection_id"
	fieldCount       = "count"
	fieldDegree      = "degree"
	fieldSet         = "set"
	fieldIsIntersect = "is_intersect"
	fieldAbbre       = "set_abbre"
	fieldOrder       = "set_order"
)

var reservedFields = []string{fieldID, fieldCount, fieldDegree, fieldSet, fieldIsIntersect, fieldAbbre, fieldOrder}

// An Intersection is one combination of set memberships that occurs
// in the input.
type Intersection struct {
	// ID is the position of this intersection after sorting by
	// Count. It is only meaningful within one Preprocessed.
	ID int

	// Count is the number of input rows with exactly this
	// combination of memberships.
	Count int

	// Degree is the number of sets in the combination.
	Degree int

	// Members holds a 0/1 membership flag for each set, in the
	// order of Preprocessed.Sets.
	Members []int
}

// Preprocessed is the result of Preprocess.
type Preprocessed struct {
	// Sets and Abbre are the set names and their display labels.
	// Abbre always has the same length as Sets.
	Sets  []string
	Abbre []string

	// Rows is the number of input rows.
	Rows int

	// Intersections lists every observed combination, including
	// the one with no memberships if it occurs, sorted by Count in
	// the requested order. Intersections[i].ID == i.
	Intersections []Intersection

	// Long is the long-form intersection table with one row per
	// intersection and set. Its columns are intersection_id,
	// count, degree, set and is_intersect.
	Long *table.Table

	// SetToAbbre maps set to set_abbre. SetToOrder maps set to
	// set_order, the 1-based position of the set in Sets.
	SetToAbbre *table.Table
	SetToOrder *table.Table
}

// Preprocess groups the rows of data by their memberships in
// opts.Sets and builds the intersection and lookup tables.
//
// Each set must name a column of data holding membership indicators:
// numbers (nonzero is a member), bools, or strings that parse as
// either ("" is not a member).
//
// If opts.Abbre is non-nil and its length differs from opts.Sets, it
// is dropped with a warning and the set names are used instead.
func Preprocess(data table.Grouping, opts Options) (*Preprocessed, error) {
	sets := opts.Sets
	if err := checkSets(sets); err != nil {
		return nil, err
	}
	abbre := opts.Abbre
	if abbre != nil && len(abbre) != len(sets) {
		opts.logf("Dropping the `abbre` list because the lengths of `sets` and `abbre` are not identical.")
		abbre = nil
	}
	if abbre == nil {
		abbre = sets
	}

	// Gather the indicator columns. GroupBy turns the key columns
	// into constants, and a table of only constants has no rows, so
	// each indicator is added twice: once as a group key and once as
	// a plain column to read the memberships back from.
	t := table.Flatten(data)
	ib := new(table.Builder)
	keys := make([]string, len(sets))
	for i, s := range sets {
		col := t.Column(s)
		if col == nil {
			return nil, fmt.Errorf("set %q is not a column of the table", s)
		}
		ind, err := indicators(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", s, err)
		}
		keys[i] = fmt.Sprintf("key %d", i)
		ib.Add(keys[i], ind)
		ib.Add(memberCol(i), ind)
	}
	ind := ib.Done()

	// Count the rows of each distinct combination.
	var xs []Intersection
	if t.Len() > 0 {
		g := table.GroupBy(ind, keys...)
		for _, gid := range g.Tables() {
			sub := g.Table(gid)
			x := Intersection{Count: sub.Len(), Members: make([]int, len(sets))}
			for i := range sets {
				x.Members[i] = sub.MustColumn(memberCol(i)).([]int)[0]
				x.Degree += x.Members[i]
			}
			xs = append(xs, x)
		}
	}

	// Order by membership key, then by count. The count sort is
	// stable, so ties stay in key order. The IDs follow the final
	// order.
	sort.Slice(xs, func(i, j int) bool {
		return lessMembers(xs[i].Members, xs[j].Members)
	})
	sort.SliceStable(xs, func(i, j int) bool {
		if opts.SortOrder == Descending {
			return xs[i].Count > xs[j].Count
		}
		return xs[i].Count < xs[j].Count
	})
	for i := range xs {
		xs[i].ID = i
	}

	p := &Preprocessed{
		Sets:          append([]string(nil), sets...),
		Abbre:         append([]string(nil), abbre...),
		Rows:          t.Len(),
		Intersections: xs,
	}
	p.Long = longTable(xs, p.Sets)

	orders := make([]int, len(sets))
	for i := range orders {
		orders[i] = i + 1
	}
	p.SetToAbbre = new(table.Builder).Add(fieldSet, p.Sets).Add(fieldAbbre, p.Abbre).Done()
	p.SetToOrder = new(table.Builder).Add(fieldSet, p.Sets).Add(fieldOrder, orders).Done()
	return p, nil
}

// longTable builds the wide intersection table and unpivots the set
// columns into set/is_intersect pairs.
func longTable(xs []Intersection, sets []string) *table.Table {
	ids, counts, degrees := make([]int, len(xs)), make([]int, len(xs)), make([]int, len(xs))
	for i, x := range xs {
		ids[i], counts[i], degrees[i] = x.ID, x.Count, x.Degree
	}
	b := new(table.Builder).Add(fieldID, ids).Add(fieldCount, counts).Add(fieldDegree, degrees)
	for j, s := range sets {
		col := make([]int, len(xs))
		for i, x := range xs {
			col[i] = x.Members[j]
		}
		b.Add(s, col)
	}
	return table.Flatten(table.Unpivot(b.Done(), fieldSet, fieldIsIntersect, sets...))
}

// Joined returns Long with set_abbre and set_order joined in, sorted
// by intersection and set order.
func (p *Preprocessed) Joined() *table.Table {
	g := table.Join(p.Long, fieldSet, p.SetToAbbre, fieldSet)
	g = table.Join(g, fieldSet, p.SetToOrder, fieldSet)
	return table.Flatten(table.SortBy(g, fieldID, fieldOrder))
}

func memberCol(i int) string {
	return fmt.Sprintf("member %d", i)
}

func checkSets(sets []string) error {
	if len(sets) == 0 {
		return fmt.Errorf("no sets given")
	}
	seen := make(map[string]bool)
	for _, s := range sets {
		if seen[s] {
			return fmt.Errorf("set %q listed twice", s)
		}
		seen[s] = true
		for _, r := range reservedFields {
			if s == r {
				return fmt.Errorf("set name %q collides with a derived field", s)
			}
		}
	}
	return nil
}

func lessMembers(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// indicators converts a table column to 0/1 membership flags.
func indicators(col table.Slice) ([]int, error) {
	switch col := col.(type) {
	case []int:
		out := make([]int, len(col))
		for i, v := range col {
			if v != 0 {
				out[i] = 1
			}
		}
		return out, nil

	case []bool:
		out := make([]int, len(col))
		for i, v := range col {
			if v {
				out[i] = 1
			}
		}
		return out, nil

	case []string:
		out := make([]int, len(col))
		for i, v := range col {
			m, err := parseIndicator(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			out[i] = m
		}
		return out, nil
	}

	fs, err := convertFloats(col)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fs))
	for i, v := range fs {
		if v != 0 {
			out[i] = 1
		}
	}
	return out, nil
}

func parseIndicator(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a membership indicator", s)
	}
	if f != 0 {
		return 1, nil
	}
	return 0, nil
}

// convertFloats converts any numeric column to []float64. slice.Convert
// panics on element types it cannot convert; that is reported as an
// error here since the column comes from user data.
func convertFloats(col table.Slice) (fs []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot use %T as membership indicators: %v", col, r)
		}
	}()
	slice.Convert(&fs, col)
	return fs, nil
}
