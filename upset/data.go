// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package upset

import (
	"reflect"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-upset/vegalite"
)

// records converts t to inline dataset rows, one Record per row.
func records(t *table.Table) []vegalite.Record {
	if t == nil {
		return nil
	}
	cols := t.Columns()
	vals := make([]reflect.Value, len(cols))
	for i, name := range cols {
		vals[i] = reflect.ValueOf(t.MustColumn(name))
	}
	out := make([]vegalite.Record, t.Len())
	for row := range out {
		r := make(vegalite.Record, len(cols))
		for i, name := range cols {
			r[name] = vals[i].Index(row).Interface()
		}
		out[row] = r
	}
	return out
}
