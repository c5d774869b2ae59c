package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/tabwriter"
	"text/template"
)

// The unsigned constant guards stop compiling when a format outgrows its
// storage type or, above int8, when it would fit the next smaller one.
var fileTemplate = template.Must(template.New("formats").Parse(`// Code generated by {{.Command}}; DO NOT EDIT.

package {{.Package}}
{{range .Formats}}
// {{.Name}} is the {{.Label}} format in {{.Storage}}: range [{{.Min}}, {{.Max}}], resolution {{.Resolution}}.
type {{.Name}} struct{}

func ({{.Name}}) IntBits() int { return {{.Int}} }
func ({{.Name}}) FracBits() int { return {{.Frac}} }

func ({{.Name}}) Storage({{.Storage}}) {}

const _ uint = {{.Width}} - ({{.Int}} + {{.Frac}})
{{- if .Floor}}
const _ uint = ({{.Int}} + {{.Frac}}) - {{.Floor}}
{{- end}}
{{end}}`))

// generate renders gofmt-ed Go source declaring formats in package pkg.
// command is recorded in the generated-code header.
func generate(pkg, command string, formats []qformat) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Command string
		Package string
		Formats []qformat
	}{command, pkg, formats})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return src, nil
}

// writeInfo prints a range table for formats.
func writeInfo(w io.Writer, formats []qformat) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Format\tType\tStorage\tMin\tMax\tResolution\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t-------\t---\t---\t----------\n"); err != nil {
		return err
	}
	for _, q := range formats {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			q.Label(),
			q.Name(),
			q.Storage(),
			q.Min(),
			q.Max(),
			q.Resolution(),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
