// Package ir holds the full relational table model consumed by the rich table
// diff: columns with type metadata and defaults, and indexes with ordered key
// lists and per-key prefix lengths.
package ir

import "fmt"

// Table represents a database table
type Table struct {
	Name      string    `json:"name"`
	Collation string    `json:"collation,omitempty"`
	Engine    string    `json:"engine,omitempty"` // InnoDB, MyISAM, etc.
	Columns   []*Column `json:"columns"`
	Indexes   []*Index  `json:"indexes"`
}

// Column represents a table column
type Column struct {
	Name          string       `json:"name"`
	FormerNames   []string     `json:"former_names,omitempty"` // previous names, most relevant first
	AutoIncrement bool         `json:"auto_increment,omitempty"`
	CanBeNull     bool         `json:"can_be_null"`
	Default       fmt.Stringer `json:"default,omitempty"` // nil when the column has no default
	Type          Type         `json:"type"`
}

// Type describes the data type of a column
type Type struct {
	Name           string `json:"name"`
	Collate        string `json:"collate,omitempty"`
	Length         *int   `json:"length,omitempty"`
	Precision      *int   `json:"precision,omitempty"`
	Signed         bool   `json:"signed,omitempty"`
	VariableLength bool   `json:"variable_length,omitempty"`
	ZeroFill       bool   `json:"zero_fill,omitempty"`
}

// Index represents a table index
type Index struct {
	Name string      `json:"name"`
	Keys []*IndexKey `json:"keys"`
}

// IndexKey represents a column within an index
type IndexKey struct {
	ColumnName string `json:"column_name"`
	Length     *int   `json:"length,omitempty"` // key prefix length, nil for the full column
}

// Literal is a column default given by its string form.
type Literal string

func (l Literal) String() string {
	return string(l)
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	if t == nil {
		return nil
	}
	for _, column := range t.Columns {
		if column.Name == name {
			return column
		}
	}
	return nil
}

// Index returns the index with the given name, or nil.
func (t *Table) Index(name string) *Index {
	if t == nil {
		return nil
	}
	for _, index := range t.Indexes {
		if index.Name == name {
			return index
		}
	}
	return nil
}

// IntPtr returns a pointer to v, for building optional lengths and precisions.
func IntPtr(v int) *int {
	return &v
}
