package schemadiff

import (
	"strings"

	"github.com/pgschema/schemadiff/tableschema"
)

// DiffToString diffs two full-model tables and renders the report in one call.
func DiffToString(source, target *Table, format Format, opts ...Option) (string, error) {
	r, err := NewReport(Diff(source, target, opts...))
	if err != nil {
		return "", err
	}
	return renderToString(r, format, opts)
}

// DiffSchemaToString diffs two reduced-model tables and renders the report in one call.
func DiffSchemaToString(source, target *tableschema.Table, format Format, opts ...Option) (string, error) {
	r, err := NewSchemaReport(DiffSchema(source, target, opts...))
	if err != nil {
		return "", err
	}
	return renderToString(r, format, opts)
}

func renderToString(r *Report, format Format, opts []Option) (string, error) {
	var b strings.Builder
	if err := Render(&b, r, format, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}
