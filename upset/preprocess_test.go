// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

// abc has every kind of intersection of three sets: the empty one,
// three of degree 1, one of degree 2 and one of degree 3.
var abc = new(table.Builder).
	Add("name", []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"}).
	Add("A", []int{1, 1, 1, 0, 1, 0, 0, 1}).
	Add("B", []int{0, 0, 1, 1, 1, 0, 0, 1}).
	Add("C", []int{0, 0, 0, 0, 0, 0, 1, 1}).
	Done()

func abcOptions() Options {
	opts := DefaultOptions()
	opts.Sets = []string{"A", "B", "C"}
	return opts
}

// logRecorder collects the warnings of one call.
type logRecorder []string

func (l *logRecorder) logf(format string, args ...interface{}) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

func membersKey(x Intersection) string {
	var b strings.Builder
	for _, m := range x.Members {
		fmt.Fprint(&b, m)
	}
	return b.String()
}

func TestPreprocess(t *testing.T) {
	for _, test := range []struct {
		order SortOrder
		keys  []string
	}{
		{Ascending, []string{"000", "001", "010", "111", "100", "110"}},
		{Descending, []string{"100", "110", "000", "001", "010", "111"}},
	} {
		opts := abcOptions()
		opts.SortOrder = test.order
		p, err := Preprocess(abc, opts)
		if err != nil {
			t.Fatal(err)
		}
		var keys []string
		for i, x := range p.Intersections {
			keys = append(keys, membersKey(x))
			if x.ID != i {
				t.Errorf("%s: intersection %d has ID %d", test.order, i, x.ID)
			}
		}
		if !reflect.DeepEqual(keys, test.keys) {
			t.Errorf("%s: intersections are %v; want %v", test.order, keys, test.keys)
		}
	}
}

func TestPreprocessPairs(t *testing.T) {
	data := new(table.Builder).
		Add("A", []int{1, 1, 0, 1}).
		Add("B", []int{1, 0, 1, 1}).
		Add("C", []int{0, 1, 1, 0}).
		Done()
	p, err := Preprocess(data, abcOptions())
	if err != nil {
		t.Fatal(err)
	}
	var counts, degrees []int
	for _, x := range p.Intersections {
		counts = append(counts, x.Count)
		degrees = append(degrees, x.Degree)
	}
	if !reflect.DeepEqual(counts, []int{1, 1, 2}) || !reflect.DeepEqual(degrees, []int{2, 2, 2}) {
		t.Errorf("counts %v, degrees %v; want [1 1 2], [2 2 2]", counts, degrees)
	}
}

func TestPreprocessOnlySets(t *testing.T) {
	for _, test := range []struct {
		name   string
		data   *table.Table
		sets   []string
		counts map[string]int
	}{
		{"one set", new(table.Builder).Add("A", []int{1, 1, 0}).Done(),
			[]string{"A"}, map[string]int{"0": 1, "1": 2}},
		{"all members", new(table.Builder).Add("A", []int{1, 1}).Add("B", []bool{true, true}).Done(),
			[]string{"A", "B"}, map[string]int{"11": 2}},
		{"one row", new(table.Builder).Add("A", []float64{0}).Add("B", []int{1}).Done(),
			[]string{"A", "B"}, map[string]int{"01": 1}},
	} {
		opts := DefaultOptions()
		opts.Sets = test.sets
		p, err := Preprocess(test.data, opts)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		counts := make(map[string]int)
		for _, x := range p.Intersections {
			counts[membersKey(x)] = x.Count
		}
		if !reflect.DeepEqual(counts, test.counts) {
			t.Errorf("%s: counts are %v; want %v", test.name, counts, test.counts)
		}
		if p.Rows != test.data.Len() {
			t.Errorf("%s: Rows = %d; want %d", test.name, p.Rows, test.data.Len())
		}
	}
}

func TestPreprocessConservation(t *testing.T) {
	p, err := Preprocess(abc, abcOptions())
	if err != nil {
		t.Fatal(err)
	}
	if p.Rows != 8 {
		t.Errorf("Rows = %d; want 8", p.Rows)
	}
	total := 0
	for _, x := range p.Intersections {
		total += x.Count
		degree := 0
		for _, m := range x.Members {
			degree += m
		}
		if degree != x.Degree {
			t.Errorf("intersection %v has degree %d; want %d", x.Members, x.Degree, degree)
		}
	}
	if total != p.Rows {
		t.Errorf("counts sum to %d; want %d", total, p.Rows)
	}

	if got, want := p.Long.Len(), len(p.Intersections)*len(p.Sets); got != want {
		t.Errorf("long table has %d rows; want %d", got, want)
	}
	for _, col := range []string{fieldID, fieldCount, fieldDegree, fieldSet, fieldIsIntersect} {
		if p.Long.Column(col) == nil {
			t.Errorf("long table has no column %q", col)
		}
	}
	for _, s := range p.Sets {
		if p.Long.Column(s) != nil {
			t.Errorf("long table still has set column %q", s)
		}
	}
}

func TestPreprocessSetOrder(t *testing.T) {
	opts := abcOptions()
	opts.Sets = []string{"C", "A"}
	p, err := Preprocess(abc, opts)
	if err != nil {
		t.Fatal(err)
	}
	sets := p.SetToOrder.MustColumn(fieldSet).([]string)
	orders := p.SetToOrder.MustColumn(fieldOrder).([]int)
	if !reflect.DeepEqual(sets, []string{"C", "A"}) || !reflect.DeepEqual(orders, []int{1, 2}) {
		t.Errorf("set order table is %v %v; want [C A] [1 2]", sets, orders)
	}
	// B is ignored, so r3 and r5 join r1 and r2 in {A}.
	for _, x := range p.Intersections {
		if reflect.DeepEqual(x.Members, []int{0, 1}) && x.Count != 4 {
			t.Errorf("{A} has count %d; want 4", x.Count)
		}
	}
}

func TestPreprocessAbbre(t *testing.T) {
	var log logRecorder
	opts := abcOptions()
	opts.Logf = log.logf
	opts.Abbre = []string{"a", "b", "c"}
	p, err := Preprocess(abc, opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.SetToAbbre.MustColumn(fieldAbbre).([]string); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("abbreviations are %v", got)
	}
	if len(log) != 0 {
		t.Errorf("unexpected warnings %q", log)
	}

	opts.Abbre = []string{"a", "b"}
	p, err = Preprocess(abc, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p.Abbre, p.Sets) {
		t.Errorf("mismatched abbreviations were kept: %v", p.Abbre)
	}
	if len(log) != 1 || !strings.Contains(log[0], "Dropping the `abbre` list") {
		t.Errorf("warnings are %q; want one about abbre", log)
	}
}

func TestPreprocessErrors(t *testing.T) {
	for _, test := range []struct {
		data table.Grouping
		sets []string
		want string
	}{
		{abc, []string{"A", "D"}, `set "D" is not a column`},
		{abc, []string{"A", "A"}, `listed twice`},
		{abc, []string{}, `no sets`},
		{new(table.Builder).Add("count", []int{1}).Done(), []string{"count"}, `collides`},
		{new(table.Builder).Add("A", []string{"yes"}).Done(), []string{"A"}, `not a membership indicator`},
		{new(table.Builder).Add("A", []struct{}{{}}).Done(), []string{"A"}, `cannot use`},
	} {
		opts := DefaultOptions()
		opts.Sets = test.sets
		_, err := Preprocess(test.data, opts)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("Preprocess(%v): got error %v; want %q", test.sets, err, test.want)
		}
	}
}

func TestIndicators(t *testing.T) {
	want := []int{1, 0, 1}
	for _, col := range []table.Slice{
		[]int{2, 0, -1},
		[]bool{true, false, true},
		[]string{"1", "", "true"},
		[]string{" 0.5", "0", "T"},
		[]float64{1.5, 0, 1},
		[]int64{1, 0, 7},
	} {
		got, err := indicators(col)
		if err != nil {
			t.Errorf("indicators(%v): %v", col, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("indicators(%v) = %v; want %v", col, got, want)
		}
	}
}

func TestPreprocessEmpty(t *testing.T) {
	empty := new(table.Builder).Add("A", []int{}).Add("B", []int{}).Done()
	opts := DefaultOptions()
	opts.Sets = []string{"A", "B"}
	p, err := Preprocess(empty, opts)
	if err != nil {
		t.Fatal(err)
	}
	if p.Rows != 0 || len(p.Intersections) != 0 {
		t.Errorf("got %d rows and %d intersections; want none", p.Rows, len(p.Intersections))
	}
}

func TestJoined(t *testing.T) {
	p, err := Preprocess(abc, abcOptions())
	if err != nil {
		t.Fatal(err)
	}
	j := p.Joined()
	if j.Len() != p.Long.Len() {
		t.Errorf("joined table has %d rows; want %d", j.Len(), p.Long.Len())
	}
	for _, col := range []string{fieldAbbre, fieldOrder} {
		if j.Column(col) == nil {
			t.Errorf("joined table has no column %q", col)
		}
	}
}

func ExamplePreprocess() {
	opts := DefaultOptions()
	opts.Sets = []string{"A", "B", "C"}
	opts.SortOrder = Descending
	p, err := Preprocess(abc, opts)
	if err != nil {
		panic(err)
	}
	for _, x := range p.Intersections {
		fmt.Println(x.ID, x.Members, x.Count, x.Degree)
	}
	// Output:
	// 0 [1 0 0] 2 1
	// 1 [1 1 0] 2 2
	// 2 [0 0 0] 1 0
	// 3 [0 0 1] 1 1
	// 4 [0 1 0] 1 1
	// 5 [1 1 1] 1 3
}
