// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vegalite

import "strings"

// Datum returns an expression that reads field from the current row.
// The field name is quoted, so it may contain any character.
func Datum(field string) string {
	return "datum[" + quote(field) + "]"
}

// DatumOr returns an expression that reads field from the current
// row, or def if the row has no such field.
func DatumOr(field, def string) string {
	d := Datum(field)
	return "(isDefined(" + d + ") ? " + d + " : " + def + ")"
}

// Sum returns an expression adding exprs. The sum of no terms is 0.
func Sum(exprs ...string) string {
	if len(exprs) == 0 {
		return "0"
	}
	return strings.Join(exprs, " + ")
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// quote returns s as a single-quoted expression string literal.
func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

var fieldReplacer = strings.NewReplacer(`\`, `\\`, `.`, `\.`, `[`, `\[`, `]`, `\]`)

// Field escapes name for use as a field reference in encodings and
// transforms. Vega-Lite otherwise treats "." and "[" in a field
// reference as nested property access.
func Field(name string) string {
	return fieldReplacer.Replace(name)
}

// Fields applies Field to each name.
func Fields(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Field(n)
	}
	return out
}
