// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// Summary gives row-level statistics of a Preprocessed table.
type Summary struct {
	// Rows is the number of input rows.
	Rows int

	// SetSizes[i] is the number of rows in Sets[i]. Exclusive[i] is
	// the number of rows in Sets[i] and no other set.
	SetSizes  []int
	Exclusive []int

	// Multi is the number of rows in more than one set and None the
	// number of rows in no set.
	Multi, None int

	// MostCommon is the largest intersection with at least one
	// set, or nil if there is none. Ties go to the lowest ID.
	MostCommon *Intersection

	// MeanDegree is the mean number of sets per row.
	MeanDegree float64

	// ByDegree has one row per degree with columns degree,
	// "mean count", "min count" and "max count" over the
	// intersections of that degree.
	ByDegree *table.Table
}

// Summarize computes a Summary of p.
func Summarize(p *Preprocessed) *Summary {
	s := &Summary{
		Rows:      p.Rows,
		SetSizes:  make([]int, len(p.Sets)),
		Exclusive: make([]int, len(p.Sets)),
	}

	var degrees, weights, counts []float64
	var degreeCol []int
	for i := range p.Intersections {
		x := &p.Intersections[i]
		for j, m := range x.Members {
			if m == 1 {
				s.SetSizes[j] += x.Count
				if x.Degree == 1 {
					s.Exclusive[j] += x.Count
				}
			}
		}
		switch {
		case x.Degree == 0:
			s.None += x.Count
		case x.Degree > 1:
			s.Multi += x.Count
		}
		if x.Degree > 0 && (s.MostCommon == nil || x.Count > s.MostCommon.Count) {
			s.MostCommon = x
		}
		degrees = append(degrees, float64(x.Degree))
		weights = append(weights, float64(x.Count))
		degreeCol = append(degreeCol, x.Degree)
		counts = append(counts, float64(x.Count))
	}

	if p.Rows > 0 {
		s.MeanDegree = stats.Sample{Xs: degrees, Weights: weights}.Mean()
	}

	if len(p.Intersections) == 0 {
		s.ByDegree = new(table.Builder).
			Add(fieldDegree, []int{}).
			Add("mean count", []float64{}).
			Add("min count", []float64{}).
			Add("max count", []float64{}).
			Done()
		return s
	}
	t := new(table.Builder).Add(fieldDegree, degreeCol).Add(fieldCount, counts).Done()
	g := ggstat.Agg(fieldDegree)(ggstat.AggMean(fieldCount), ggstat.AggMin(fieldCount), ggstat.AggMax(fieldCount)).F(t)
	s.ByDegree = table.Flatten(table.SortBy(g, fieldDegree))
	return s
}
