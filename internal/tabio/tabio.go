// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabio loads gg tables from delimited text files and from
// SQL queries.
package tabio

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/gwenn/yacr"

	_ "modernc.org/sqlite"
)

// ReadCSV reads a delimited table from r. The first record is the
// header. Columns whose values all parse as numbers become numeric
// columns; the rest stay strings.
//
// If sep is 0, the separator is guessed from the header line.
func ReadCSV(r io.Reader, sep byte) (*table.Table, error) {
	var rd *yacr.Reader
	if sep == 0 {
		rd = yacr.NewReader(r, ',', true, true)
	} else {
		rd = yacr.NewReader(r, sep, true, false)
	}

	var header []string
	var rows [][]string
	var rec []string
	for rd.Scan() {
		rec = append(rec, rd.Text())
		if !rd.EndOfRecord() {
			continue
		}
		if header == nil {
			header = rec
		} else if !(len(rec) == 1 && rec[0] == "") {
			if len(rec) != len(header) {
				return nil, fmt.Errorf("line %d: %d fields, but header has %d", rd.LineNumber()-1, len(rec), len(header))
			}
			rows = append(rows, rec)
		}
		rec = nil
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("no header line")
	}
	return table.TableFromStrings(header, rows, true), nil
}

// Open reads a delimited table from the file at path, or from stdin
// if path is "-". Files ending in .gz or .bz2 are decompressed.
func Open(path string, sep byte) (*table.Table, error) {
	if path == "-" {
		return ReadCSV(os.Stdin, sep)
	}
	f, err := yacr.Zopen(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f, sep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// OpenSQLite opens the SQLite database at path.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// Query runs query against db and returns the result set as a table.
//
// Each column takes the type of its non-NULL values: int64 if they
// are all integers, float64 if they are all numbers, and string
// otherwise. NULL is 0 in numeric columns and "" in string columns.
func Query(ctx context.Context, db *sql.DB, query string, args ...interface{}) (*table.Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	cols := make([][]interface{}, len(names))
	for rows.Next() {
		vals := make([]interface{}, len(names))
		ptrs := make([]interface{}, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			cols[i] = append(cols[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	b := new(table.Builder)
	for i, name := range names {
		b.Add(name, column(cols[i]))
	}
	return b.Done(), nil
}

// column converts the scanned values of one result column to a typed
// slice.
func column(vals []interface{}) table.Slice {
	kind := reflect.Int64
	for _, v := range vals {
		switch v.(type) {
		case nil, int64:
		case float64:
			if kind == reflect.Int64 {
				kind = reflect.Float64
			}
		default:
			kind = reflect.String
		}
	}

	switch kind {
	case reflect.Int64:
		out := make([]int64, len(vals))
		for i, v := range vals {
			if v != nil {
				out[i] = v.(int64)
			}
		}
		return out
	case reflect.Float64:
		out := make([]float64, len(vals))
		for i, v := range vals {
			switch v := v.(type) {
			case int64:
				out[i] = float64(v)
			case float64:
				out[i] = v
			}
		}
		return out
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		switch v := v.(type) {
		case nil:
		case []byte:
			out[i] = string(v)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
