// Package schemadiff compares two versions of a table schema and reports
// which columns and indexes were added, removed, changed or left alone.
package schemadiff

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pgschema/schemadiff/diff"
	"github.com/pgschema/schemadiff/internal/logger"
	"github.com/pgschema/schemadiff/internal/report"
	"github.com/pgschema/schemadiff/ir"
	"github.com/pgschema/schemadiff/tableschema"
)

// Format selects how a report is rendered
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
)

// ErrUnknownFormat is returned by Render for an unsupported format
var ErrUnknownFormat = errors.New("unknown report format")

// Option configures a single call
type Option func(*options)

type options struct {
	logger *slog.Logger
	color  bool
}

// WithLogger sets the logger used for the call's debug records
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithColor enables ANSI colors in human reports
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Get()
	}
	return o
}

// Diff compares a source and a target table of the full model
func Diff(source, target *ir.Table, opts ...Option) *TableDiff {
	o := newOptions(opts)
	d := diff.NewTableDiff(source, target)
	o.logger.Debug("Diffed table",
		"source", tableName(source),
		"target", tableName(target),
		"has_changes", d.HasChanges())
	return d
}

// DiffSchema compares a source and a target table of the reduced model
func DiffSchema(source, target *tableschema.Table, opts ...Option) *TableSchemaDiff {
	o := newOptions(opts)
	d := diff.NewTableSchemaDiff(source, target)

	var sourceName, targetName string
	if source != nil {
		sourceName = source.Name
	}
	if target != nil {
		targetName = target.Name
	}
	o.logger.Debug("Diffed table schema",
		"source", sourceName,
		"target", targetName,
		"has_changes", d.HasChanges())
	return d
}

// NewReport summarizes a full-model diff
func NewReport(d *TableDiff) (*Report, error) {
	return report.FromTableDiff(d)
}

// NewSchemaReport summarizes a reduced-model diff
func NewSchemaReport(d *TableSchemaDiff) (*Report, error) {
	return report.FromTableSchemaDiff(d)
}

// Render writes r to w in the given format
func Render(w io.Writer, r *Report, format Format, opts ...Option) error {
	o := newOptions(opts)

	var output string
	switch format {
	case FormatHuman:
		output = r.HumanColored(o.color)
	case FormatJSON:
		jsonOutput, err := r.ToJSON()
		if err != nil {
			return err
		}
		output = jsonOutput + "\n"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if _, err := io.WriteString(w, output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	o.logger.Debug("Rendered report", "table", r.Table, "format", string(format), "changes", r.Summary.Total)
	return nil
}

func tableName(t *ir.Table) string {
	if t == nil {
		return ""
	}
	return t.Name
}
