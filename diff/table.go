// Package diff classifies the columns and indexes of two versions of a table
// as added, removed, changed or unchanged.
package diff

import (
	"github.com/pgschema/schemadiff/internal/logger"
	"github.com/pgschema/schemadiff/ir"
)

// TableDiff is the difference between a source and a target table of the
// rich model. Column outcomes come first, in target order, followed by index
// outcomes, in target order. Deletions follow source order for each kind.
type TableDiff struct {
	Source *ir.Table
	Target *ir.Table

	Additions []Element
	Changes   []ElementPair
	Deletions []Element
	Unchanged []Element
}

var columnMatcher = matcher[*ir.Column]{
	name:        func(c *ir.Column) string { return c.Name },
	formerNames: func(c *ir.Column) []string { return c.FormerNames },
	changed:     columnChanged,
}

var indexMatcher = matcher[*ir.Index]{
	name:    func(i *ir.Index) string { return i.Name },
	changed: indexChanged,
}

// NewTableDiff compares source and target. Neither table is modified.
func NewTableDiff(source, target *ir.Table) *TableDiff {
	diff := &TableDiff{
		Source:    source,
		Target:    target,
		Additions: []Element{},
		Changes:   []ElementPair{},
		Deletions: []Element{},
		Unchanged: []Element{},
	}

	var sourceColumns, targetColumns []*ir.Column
	var sourceIndexes, targetIndexes []*ir.Index
	if source != nil {
		sourceColumns, sourceIndexes = source.Columns, source.Indexes
	}
	if target != nil {
		targetColumns, targetIndexes = target.Columns, target.Indexes
	}

	columns := columnMatcher.match(sourceColumns, targetColumns)
	for _, column := range columns.additions {
		diff.Additions = append(diff.Additions, ColumnElement(column))
	}
	for _, p := range columns.changes {
		diff.Changes = append(diff.Changes, ElementPair{
			Source: ColumnElement(p.source),
			Target: ColumnElement(p.target),
		})
	}
	for _, column := range columns.deletions {
		diff.Deletions = append(diff.Deletions, ColumnElement(column))
	}
	for _, column := range columns.unchanged {
		diff.Unchanged = append(diff.Unchanged, ColumnElement(column))
	}

	indexes := indexMatcher.match(sourceIndexes, targetIndexes)
	for _, index := range indexes.additions {
		diff.Additions = append(diff.Additions, IndexElement(index))
	}
	for _, p := range indexes.changes {
		diff.Changes = append(diff.Changes, ElementPair{
			Source: IndexElement(p.source),
			Target: IndexElement(p.target),
		})
	}
	for _, index := range indexes.deletions {
		diff.Deletions = append(diff.Deletions, IndexElement(index))
	}
	for _, index := range indexes.unchanged {
		diff.Unchanged = append(diff.Unchanged, IndexElement(index))
	}

	logger.Get().Debug("Computed table diff",
		"table", tableName(target, source),
		"additions", len(diff.Additions),
		"changes", len(diff.Changes),
		"deletions", len(diff.Deletions),
		"unchanged", len(diff.Unchanged))

	return diff
}

// TableChanges compares the table-level attributes. It returns false when
// name, engine and collation are all equal.
func (d *TableDiff) TableChanges() (TableChange, bool) {
	var source, target ir.Table
	if d.Source != nil {
		source = *d.Source
	}
	if d.Target != nil {
		target = *d.Target
	}

	change := TableChange{
		Collation: source.Collation != target.Collation,
		Engine:    source.Engine != target.Engine,
		Name:      source.Name != target.Name,
	}
	if change.Collation || change.Engine || change.Name {
		return change, true
	}
	return TableChange{}, false
}

// HasChanges reports whether any column or index was added, removed or changed
func (d *TableDiff) HasChanges() bool {
	return len(d.Additions) > 0 || len(d.Changes) > 0 || len(d.Deletions) > 0
}

// ColumnChanges returns the changed column pairs
func (d *TableDiff) ColumnChanges() []ColumnPair {
	pairs := []ColumnPair{}
	for _, change := range d.Changes {
		if p, ok := change.Columns(); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// IndexChanges returns the changed index pairs
func (d *TableDiff) IndexChanges() []IndexPair {
	pairs := []IndexPair{}
	for _, change := range d.Changes {
		if p, ok := change.Indexes(); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// tableName picks the name to log a diff under, preferring the target
func tableName(target, source *ir.Table) string {
	if target != nil {
		return target.Name
	}
	if source != nil {
		return source.Name
	}
	return ""
}
