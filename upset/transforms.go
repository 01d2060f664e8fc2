// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"github.com/aclements/go-upset/vegalite"
)

// Names of the embedded datasets.
const (
	dataIntersections = "upset_intersections"
	dataSetToAbbre    = "upset_set_abbre"
	dataSetToOrder    = "upset_set_order"
)

// Names of the selection parameters.
const (
	paramLegend  = "legend"
	paramHover   = "hover"
	paramOpacity = "opacity"
)

// baseTransforms returns the pipeline shared by every view. The
// runtime re-evaluates it whenever the legend selection changes, so
// everything downstream of the legend filter is derived again from
// the long-form rows: the membership pivot, the counts, the degrees
// and the display intersection IDs.
func baseTransforms(sets []string, params *vegalite.Params) vegalite.Pipeline {
	fields := vegalite.Fields(sets)

	degree := make([]string, len(sets))
	for i, s := range sets {
		degree[i] = vegalite.DatumOr(s, "0")
	}

	return vegalite.Pipeline{
		params.Filter(paramLegend),
		&vegalite.Pivot{
			Pivot:   fieldSet,
			Value:   fieldIsIntersect,
			GroupBy: []string{fieldID, fieldCount},
			AggOp:   "max",
		},
		&vegalite.Aggregate{
			Aggregate: []vegalite.AggregateOp{{Op: "sum", Field: fieldCount, As: fieldCount}},
			GroupBy:   fields,
		},
		&vegalite.Calculate{Calculate: vegalite.Sum(degree...), As: fieldDegree},
		vegalite.FilterExpr("datum." + fieldDegree + " != 0"),
		// Display IDs. These are unrelated to the IDs assigned by
		// Preprocess.
		&vegalite.Window{
			Window: []vegalite.WindowOp{{Op: "row_number", As: fieldID}},
			Frame:  vegalite.Frame(vegalite.Unbounded, vegalite.Unbounded),
		},
		&vegalite.Fold{Fold: fields, As: [2]string{fieldSet, fieldIsIntersect}},
		lookup(dataSetToAbbre, fieldAbbre),
		lookup(dataSetToOrder, fieldOrder),
		// The fold brings back a row for every set, hidden ones
		// included.
		params.Filter(paramLegend),
		&vegalite.Window{
			Window: []vegalite.WindowOp{{Op: "distinct", Field: fieldSet, As: fieldOrder}},
			Frame:  vegalite.Frame(vegalite.Unbounded, vegalite.Int(0)),
			Sort:   []vegalite.SortField{{Field: fieldOrder}},
		},
	}
}

func lookup(dataset, field string) *vegalite.Lookup {
	return &vegalite.Lookup{
		Lookup: fieldSet,
		From: vegalite.LookupFrom{
			Data:   vegalite.Data{Name: dataset},
			Key:    fieldSet,
			Fields: []string{field},
		},
	}
}
