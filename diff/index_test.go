package diff

import (
	"testing"

	"github.com/pgschema/schemadiff/ir"
)

func TestIndexChanged(t *testing.T) {
	tests := []struct {
		name     string
		source   *ir.Index
		target   *ir.Index
		expected bool
	}{
		{
			name:     "identical",
			source:   newIndex("idx", key("a"), key("b")),
			target:   newIndex("idx", key("a"), key("b")),
			expected: false,
		},
		{
			name:     "extra key",
			source:   newIndex("idx", key("a"), key("b")),
			target:   newIndex("idx", key("a"), key("b"), key("c")),
			expected: true,
		},
		{
			name:     "missing key",
			source:   newIndex("idx", key("a"), key("b"), key("c")),
			target:   newIndex("idx", key("a"), key("b")),
			expected: true,
		},
		{
			name:     "replaced key",
			source:   newIndex("idx", key("a"), key("b")),
			target:   newIndex("idx", key("a"), key("c")),
			expected: true,
		},
		{
			name:     "prefix length changed",
			source:   newIndex("idx", prefixKey("a", 10), key("b")),
			target:   newIndex("idx", prefixKey("a", 5), key("b")),
			expected: true,
		},
		{
			name:     "prefix length added",
			source:   newIndex("idx", key("a")),
			target:   newIndex("idx", prefixKey("a", 5)),
			expected: true,
		},
		{
			name:     "key order ignored",
			source:   newIndex("idx", prefixKey("a", 10), key("b")),
			target:   newIndex("idx", key("b"), prefixKey("a", 10)),
			expected: false,
		},
		{
			name:     "name",
			source:   newIndex("idx_a", key("a")),
			target:   newIndex("idx_b", key("a")),
			expected: true,
		},
		{
			name:     "no keys",
			source:   newIndex("idx"),
			target:   newIndex("idx"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := indexChanged(tt.source, tt.target); got != tt.expected {
				t.Errorf("indexChanged() = %v; want %v", got, tt.expected)
			}
		})
	}
}
