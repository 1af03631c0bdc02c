package diff

import "github.com/pgschema/schemadiff/ir"

// indexChanged reports whether two matched indexes differ. Keys are compared
// as a set keyed by column name, with their prefix lengths; key order is
// ignored.
func indexChanged(source, target *ir.Index) bool {
	if source.Name != target.Name || len(source.Keys) != len(target.Keys) {
		return true
	}

	sourceKeys := make(map[string]*ir.IndexKey, len(source.Keys))
	targetKeys := make(map[string]*ir.IndexKey, len(target.Keys))
	for _, key := range source.Keys {
		sourceKeys[key.ColumnName] = key
	}

	for _, targetKey := range target.Keys {
		targetKeys[targetKey.ColumnName] = targetKey
		sourceKey, exists := sourceKeys[targetKey.ColumnName]
		if !exists || !optionalEqual(sourceKey.Length, targetKey.Length) {
			return true
		}
	}

	for _, sourceKey := range source.Keys {
		if _, exists := targetKeys[sourceKey.ColumnName]; !exists {
			return true
		}
	}

	return false
}
