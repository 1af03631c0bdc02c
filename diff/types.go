package diff

import (
	"github.com/pgschema/schemadiff/ir"
	"github.com/pgschema/schemadiff/tableschema"
)

// Kind discriminates the schema element wrapped by an Element
type Kind int

const (
	KindColumn Kind = iota
	KindIndex
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindIndex:
		return "index"
	default:
		return "unknown"
	}
}

// Element is either a column or an index of a rich table. Exactly one of
// Column and Index is set, matching Kind.
type Element struct {
	Kind   Kind
	Column *ir.Column
	Index  *ir.Index
}

// ColumnElement wraps a column.
func ColumnElement(column *ir.Column) Element {
	return Element{Kind: KindColumn, Column: column}
}

// IndexElement wraps an index.
func IndexElement(index *ir.Index) Element {
	return Element{Kind: KindIndex, Index: index}
}

// Name returns the name of the wrapped column or index
func (e Element) Name() string {
	switch e.Kind {
	case KindColumn:
		if e.Column != nil {
			return e.Column.Name
		}
	case KindIndex:
		if e.Index != nil {
			return e.Index.Name
		}
	}
	return ""
}

// ElementPair is a matched source and target element of the same kind
type ElementPair struct {
	Source Element
	Target Element
}

// Kind returns the kind shared by both sides of the pair
func (p ElementPair) Kind() Kind {
	return p.Source.Kind
}

// Columns returns the pair as a ColumnPair when it holds columns
func (p ElementPair) Columns() (ColumnPair, bool) {
	if p.Kind() != KindColumn {
		return ColumnPair{}, false
	}
	return ColumnPair{Source: p.Source.Column, Target: p.Target.Column}, true
}

// Indexes returns the pair as an IndexPair when it holds indexes
func (p ElementPair) Indexes() (IndexPair, bool) {
	if p.Kind() != KindIndex {
		return IndexPair{}, false
	}
	return IndexPair{Source: p.Source.Index, Target: p.Target.Index}, true
}

// ColumnPair is a matched source and target column of a rich table
type ColumnPair struct {
	Source *ir.Column
	Target *ir.Column
}

// IndexPair is a matched source and target index
type IndexPair struct {
	Source *ir.Index
	Target *ir.Index
}

// SchemaColumnPair is a matched source and target column of a reduced table
type SchemaColumnPair struct {
	Source *tableschema.Column
	Target *tableschema.Column
}

// TableChange reports which table-level attributes differ
type TableChange struct {
	Collation bool `json:"collation"`
	Engine    bool `json:"engine"`
	Name      bool `json:"name"`
}
