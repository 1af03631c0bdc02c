// Package tableschema is the reduced table model used where index and storage
// engine metadata are not tracked.
package tableschema

import "fmt"

// Table represents a table by its columns only
type Table struct {
	Name      string    `json:"name"`
	Collation string    `json:"collation,omitempty"`
	Columns   []*Column `json:"columns"`
}

// Column represents a table column
type Column struct {
	Name          string       `json:"name"`
	FormerNames   []string     `json:"former_names,omitempty"`
	AutoIncrement bool         `json:"auto_increment,omitempty"`
	CanBeNull     bool         `json:"can_be_null"`
	Default       fmt.Stringer `json:"default,omitempty"` // nil when the column has no default
	Type          Type         `json:"type"`
}

// Type describes the data type of a column. Unlike the full model it carries
// no collation.
type Type struct {
	Name           string `json:"name"`
	Length         *int   `json:"length,omitempty"`
	Precision      *int   `json:"precision,omitempty"`
	Signed         bool   `json:"signed,omitempty"`
	VariableLength bool   `json:"variable_length,omitempty"`
	ZeroFill       bool   `json:"zero_fill,omitempty"`
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
