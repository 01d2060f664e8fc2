// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vegalite

import (
	"bytes"
	"html/template"
	"io"
)

// WriteHTML writes a standalone HTML page to w that renders s with
// vega-embed loaded from a CDN.
func WriteHTML(w io.Writer, s *Spec, title string) error {
	var buf bytes.Buffer
	if err := s.WriteJSON(&buf, false); err != nil {
		return err
	}
	return htmlTmpl.Execute(w, struct {
		Title string
		Spec  template.JS
	}{title, template.JS(buf.String())})
}

var htmlTmpl = template.Must(template.New("chart").Parse(chartHTML))

const chartHTML = `<!DOCTYPE html>
<html>
    <head>
        <meta charset="utf-8">
        <title>{{.Title}}</title>
        <script type="text/javascript" src="https://cdn.jsdelivr.net/npm/vega@5"></script>
        <script type="text/javascript" src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
        <script type="text/javascript" src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
    </head>
    <body>
        <div id="chart"></div>
        <script type="text/javascript">
         var spec = {{.Spec}};
         vegaEmbed("#chart", spec, {mode: "vega-lite"}).catch(console.error);
        </script>
    </body>
</html>
`
