package diff

import (
	"testing"

	"github.com/pgschema/schemadiff/ir"
)

func TestElementPairAccessors(t *testing.T) {
	source, target := intCol("a"), intCol("b", "a")
	columns := ElementPair{Source: ColumnElement(source), Target: ColumnElement(target)}

	if columns.Kind() != KindColumn {
		t.Errorf("Kind() = %v, want column", columns.Kind())
	}
	if p, ok := columns.Columns(); !ok || p.Source != source || p.Target != target {
		t.Errorf("Columns() = %v, %v", p, ok)
	}
	if _, ok := columns.Indexes(); ok {
		t.Error("Indexes() ok on a column pair")
	}

	idx := newIndex("idx", key("a"))
	indexes := ElementPair{Source: IndexElement(idx), Target: IndexElement(idx)}
	if p, ok := indexes.Indexes(); !ok || p.Source != idx {
		t.Errorf("Indexes() = %v, %v", p, ok)
	}
	if _, ok := indexes.Columns(); ok {
		t.Error("Columns() ok on an index pair")
	}
}

func TestElementName(t *testing.T) {
	tests := []struct {
		name     string
		element  Element
		expected string
	}{
		{name: "column", element: ColumnElement(&ir.Column{Name: "id"}), expected: "id"},
		{name: "index", element: IndexElement(&ir.Index{Name: "PRIMARY"}), expected: "PRIMARY"},
		{name: "empty", element: Element{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.element.Name(); got != tt.expected {
				t.Errorf("Name() = %q; want %q", got, tt.expected)
			}
		})
	}

	if KindIndex.String() != "index" || Kind(7).String() != "unknown" {
		t.Error("unexpected Kind strings")
	}
}
