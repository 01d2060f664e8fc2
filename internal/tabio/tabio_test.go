// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabio

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const letters = `name,A,B,flag
r1,1,0,x
r2,1,1,
"r,3",0,1,y
`

func TestReadCSV(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(letters), ',')
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"name", "A", "B", "flag"}; !reflect.DeepEqual(tab.Columns(), want) {
		t.Errorf("columns are %v; want %v", tab.Columns(), want)
	}
	if got := tab.MustColumn("name"); !reflect.DeepEqual(got, []string{"r1", "r2", "r,3"}) {
		t.Errorf("name column is %#v", got)
	}
	if got := tab.MustColumn("A"); !reflect.DeepEqual(got, []int{1, 1, 0}) {
		t.Errorf("A column is %#v", got)
	}
	if got := tab.MustColumn("flag"); !reflect.DeepEqual(got, []string{"x", "", "y"}) {
		t.Errorf("flag column is %#v", got)
	}
}

func TestReadCSVSeparator(t *testing.T) {
	data := strings.Replace(letters, ",", "\t", -1)
	data = strings.Replace(data, "\"r\t3\"", "r3", 1)
	for _, sep := range []byte{'\t', 0} {
		tab, err := ReadCSV(strings.NewReader(data), sep)
		if err != nil {
			t.Fatal(err)
		}
		if tab.Len() != 3 || len(tab.Columns()) != 4 {
			t.Errorf("sep %q: got %d rows of %v", sep, tab.Len(), tab.Columns())
		}
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, data := range []string{
		"",
		"a,b\n1,2,3\n",
	} {
		if _, err := ReadCSV(strings.NewReader(data), ','); err == nil {
			t.Errorf("ReadCSV(%q) succeeded", data)
		}
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letters.csv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(letters)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tab, err := Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 3 {
		t.Errorf("got %d rows; want 3", tab.Len())
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.csv"), ','); err == nil {
		t.Errorf("opening a missing file succeeded")
	}
}

func TestQuery(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, stmt := range []string{
		`CREATE TABLE movies (title TEXT, comedy INTEGER, drama INTEGER, rating REAL)`,
		`INSERT INTO movies VALUES ('a', 1, 0, 7.5), ('b', 0, 1, 8), ('c', 1, NULL, NULL)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatal(err)
		}
	}

	tab, err := Query(ctx, db, `SELECT title, comedy, drama, rating FROM movies WHERE title != ? ORDER BY title`, "z")
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		col  string
		want interface{}
	}{
		{"title", []string{"a", "b", "c"}},
		{"comedy", []int64{1, 0, 1}},
		{"drama", []int64{0, 1, 0}},
		{"rating", []float64{7.5, 8, 0}},
	} {
		if got := tab.MustColumn(test.col); !reflect.DeepEqual(got, test.want) {
			t.Errorf("column %s is %#v; want %#v", test.col, got, test.want)
		}
	}

	if _, err := Query(ctx, db, `SELECT * FROM nope`); err == nil {
		t.Errorf("query of a missing table succeeded")
	}
}

func TestColumn(t *testing.T) {
	for _, test := range []struct {
		in   []interface{}
		want interface{}
	}{
		{[]interface{}{int64(1), nil}, []int64{1, 0}},
		{[]interface{}{int64(1), 2.5}, []float64{1, 2.5}},
		{[]interface{}{int64(1), "x", []byte("y"), nil}, []string{"1", "x", "y", ""}},
		{[]interface{}{}, []int64{}},
	} {
		if got := column(test.in); !reflect.DeepEqual(got, test.want) {
			t.Errorf("column(%v) = %#v; want %#v", test.in, got, test.want)
		}
	}
}
