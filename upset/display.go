// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// DisplayTable computes the rows the chart draws when the sets in
// visible are selected in the legend. It follows the transform
// pipeline of Chart step by step, so it shows how a legend toggle
// re-aggregates the intersections.
//
// A nil visible is an empty legend selection, which shows every set.
// Unknown names in visible are an error.
//
// Hiding a set merges the intersections that differ only in that set,
// drops intersections left with no visible set, and renumbers the
// rest from 1 in first-appearance order. set_order in the result is
// the rank of the set among the visible sets.
func DisplayTable(p *Preprocessed, visible []string) (*table.Table, error) {
	show := make([]bool, len(p.Sets))
	if visible == nil {
		for i := range show {
			show[i] = true
		}
	}
	for _, v := range visible {
		i := indexOf(p.Sets, v)
		if i < 0 {
			return nil, fmt.Errorf("unknown set %q", v)
		}
		show[i] = true
	}

	// Filter to the visible sets, pivot back to one row per
	// intersection and re-aggregate the counts by the remaining
	// memberships. Groups keep first-appearance order.
	type group struct {
		members []int
		count   int
	}
	var groups []*group
	byKey := make(map[string]*group)
	for _, x := range p.Intersections {
		key := make([]byte, 0, len(p.Sets))
		members := make([]int, len(p.Sets))
		for i, m := range x.Members {
			if show[i] {
				members[i] = m
				key = append(key, byte('0'+m))
			} else {
				key = append(key, '-')
			}
		}
		g := byKey[string(key)]
		if g == nil {
			g = &group{members: members}
			byKey[string(key)] = g
			groups = append(groups, g)
		}
		g.count += x.Count
	}

	// Rank the visible sets by their position in Sets.
	rank := make([]int, len(p.Sets))
	for i, r := 0, 0; i < len(p.Sets); i++ {
		if show[i] {
			r++
			rank[i] = r
		}
	}

	// Recompute degrees, drop the empty intersection, renumber and
	// fold back to one row per visible set.
	var ids, counts, degrees, isIntersect, orders []int
	var sets, abbres []string
	id := 0
	for _, g := range groups {
		degree := 0
		for _, m := range g.members {
			degree += m
		}
		if degree == 0 {
			continue
		}
		id++
		for i, s := range p.Sets {
			if !show[i] {
				continue
			}
			ids = append(ids, id)
			counts = append(counts, g.count)
			degrees = append(degrees, degree)
			sets = append(sets, s)
			isIntersect = append(isIntersect, g.members[i])
			abbres = append(abbres, p.Abbre[i])
			orders = append(orders, rank[i])
		}
	}

	return new(table.Builder).
		Add(fieldID, nonNil(ids)).
		Add(fieldCount, nonNil(counts)).
		Add(fieldDegree, nonNil(degrees)).
		Add(fieldSet, nonNilStrings(sets)).
		Add(fieldIsIntersect, nonNil(isIntersect)).
		Add(fieldAbbre, nonNilStrings(abbres)).
		Add(fieldOrder, nonNil(orders)).
		Done(), nil
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

// nonNil and nonNilStrings keep empty columns in the table; a nil
// slice would remove the column from the Builder.
func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}

func nonNilStrings(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
