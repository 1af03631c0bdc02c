package diff

import (
	"github.com/pgschema/schemadiff/internal/logger"
	"github.com/pgschema/schemadiff/tableschema"
)

// TableSchemaDiff is the column difference between two reduced tables
type TableSchemaDiff struct {
	Source *tableschema.Table
	Target *tableschema.Table

	Additions []*tableschema.Column
	Changes   []SchemaColumnPair
	Deletions []*tableschema.Column
	Unchanged []*tableschema.Column
}

var schemaColumnMatcher = matcher[*tableschema.Column]{
	name:        func(c *tableschema.Column) string { return c.Name },
	formerNames: func(c *tableschema.Column) []string { return c.FormerNames },
	changed:     schemaColumnChanged,
}

// NewTableSchemaDiff compares the columns of source and target. A column
// renamed through its former names with no other difference is unchanged.
func NewTableSchemaDiff(source, target *tableschema.Table) *TableSchemaDiff {
	var sourceColumns, targetColumns []*tableschema.Column
	if source != nil {
		sourceColumns = source.Columns
	}
	if target != nil {
		targetColumns = target.Columns
	}

	columns := schemaColumnMatcher.match(sourceColumns, targetColumns)
	diff := &TableSchemaDiff{
		Source:    source,
		Target:    target,
		Additions: columns.additions,
		Changes:   make([]SchemaColumnPair, 0, len(columns.changes)),
		Deletions: columns.deletions,
		Unchanged: columns.unchanged,
	}
	for _, p := range columns.changes {
		diff.Changes = append(diff.Changes, SchemaColumnPair{Source: p.source, Target: p.target})
	}

	name := ""
	if target != nil {
		name = target.Name
	} else if source != nil {
		name = source.Name
	}
	logger.Get().Debug("Computed table schema diff",
		"table", name,
		"additions", len(diff.Additions),
		"changes", len(diff.Changes),
		"deletions", len(diff.Deletions),
		"unchanged", len(diff.Unchanged))

	return diff
}

// HasChanges reports whether any column was added, removed or changed
func (d *TableSchemaDiff) HasChanges() bool {
	return len(d.Additions) > 0 || len(d.Changes) > 0 || len(d.Deletions) > 0
}
