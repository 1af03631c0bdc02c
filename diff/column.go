package diff

import (
	"fmt"

	"github.com/pgschema/schemadiff/ir"
	"github.com/pgschema/schemadiff/tableschema"
)

// columnChanged reports whether two matched columns of a rich table differ.
// The name is compared too, so a rename through former names is a change.
func columnChanged(source, target *ir.Column) bool {
	if source.Name != target.Name {
		return true
	}
	if source.AutoIncrement != target.AutoIncrement {
		return true
	}
	if source.CanBeNull != target.CanBeNull {
		return true
	}
	if !defaultsEqual(source.Default, target.Default) {
		return true
	}

	sourceType, targetType := source.Type, target.Type
	return sourceType.Collate != targetType.Collate ||
		!optionalEqual(sourceType.Length, targetType.Length) ||
		sourceType.Name != targetType.Name ||
		!optionalEqual(sourceType.Precision, targetType.Precision) ||
		sourceType.Signed != targetType.Signed ||
		sourceType.VariableLength != targetType.VariableLength ||
		sourceType.ZeroFill != targetType.ZeroFill
}

// schemaColumnChanged reports whether two matched columns of a reduced table
// differ. Names and collations are not compared.
func schemaColumnChanged(source, target *tableschema.Column) bool {
	if source.AutoIncrement != target.AutoIncrement {
		return true
	}
	if source.CanBeNull != target.CanBeNull {
		return true
	}
	if !defaultsEqual(source.Default, target.Default) {
		return true
	}

	sourceType, targetType := source.Type, target.Type
	return !optionalEqual(sourceType.Length, targetType.Length) ||
		sourceType.Name != targetType.Name ||
		!optionalEqual(sourceType.Precision, targetType.Precision) ||
		sourceType.Signed != targetType.Signed ||
		sourceType.VariableLength != targetType.VariableLength ||
		sourceType.ZeroFill != targetType.ZeroFill
}

// defaultsEqual compares defaults by their string form. A missing default
// only equals another missing default.
func defaultsEqual(source, target fmt.Stringer) bool {
	if (source == nil) != (target == nil) {
		return false
	}
	if source == nil {
		return true
	}
	return source.String() == target.String()
}

// optionalEqual compares optional values, nil only being equal to nil
func optionalEqual[T comparable](source, target *T) bool {
	if (source == nil) != (target == nil) {
		return false
	}
	if source != nil && target != nil && *source != *target {
		return false
	}
	return true
}
