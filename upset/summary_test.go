// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/generic/slice"
)

func TestSummarize(t *testing.T) {
	p, err := Preprocess(abc, abcOptions())
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(p)

	if s.Rows != 8 {
		t.Errorf("Rows = %d; want 8", s.Rows)
	}
	if want := []int{5, 4, 2}; !reflect.DeepEqual(s.SetSizes, want) {
		t.Errorf("SetSizes = %v; want %v", s.SetSizes, want)
	}
	if want := []int{2, 1, 1}; !reflect.DeepEqual(s.Exclusive, want) {
		t.Errorf("Exclusive = %v; want %v", s.Exclusive, want)
	}
	if s.Multi != 3 || s.None != 1 {
		t.Errorf("Multi, None = %d, %d; want 3, 1", s.Multi, s.None)
	}
	if s.MostCommon == nil || !reflect.DeepEqual(s.MostCommon.Members, []int{1, 0, 0}) {
		t.Errorf("MostCommon = %+v; want {A}", s.MostCommon)
	}
	if math.Abs(s.MeanDegree-11.0/8) > 1e-9 {
		t.Errorf("MeanDegree = %v; want %v", s.MeanDegree, 11.0/8)
	}

	if s.ByDegree.Len() != 4 {
		t.Fatalf("ByDegree has %d rows; want 4", s.ByDegree.Len())
	}
	for _, test := range []struct {
		col  string
		want []float64
	}{
		{"mean count", []float64{1, 4.0 / 3, 2, 1}},
		{"min count", []float64{1, 1, 2, 1}},
		{"max count", []float64{1, 2, 2, 1}},
	} {
		var got []float64
		slice.Convert(&got, s.ByDegree.MustColumn(test.col))
		for i := range test.want {
			if math.Abs(got[i]-test.want[i]) > 1e-9 {
				t.Errorf("%s = %v; want %v", test.col, got, test.want)
				break
			}
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	p := &Preprocessed{Sets: []string{"A"}, Abbre: []string{"A"}}
	s := Summarize(p)
	if s.MostCommon != nil || s.MeanDegree != 0 {
		t.Errorf("empty summary has MostCommon %v, MeanDegree %v", s.MostCommon, s.MeanDegree)
	}
	if s.ByDegree.Len() != 0 || s.ByDegree.Column("mean count") == nil {
		t.Errorf("empty ByDegree is malformed")
	}
}
