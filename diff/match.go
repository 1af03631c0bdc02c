package diff

// pair is a matched source and target element
type pair[T any] struct {
	source T
	target T
}

// matchResult partitions the elements of two tables
type matchResult[T any] struct {
	additions []T
	changes   []pair[T]
	deletions []T
	unchanged []T
}

// matcher describes how elements of one kind are named and compared.
// formerNames may be nil when the kind has no rename history.
type matcher[T any] struct {
	name        func(T) string
	formerNames func(T) []string
	changed     func(source, target T) bool
}

// match pairs every target element with a source element of the same name,
// falling back to the target's former names in order. A source element is
// consumed by the first target that matches it. Deletions keep source order.
func (m matcher[T]) match(source, target []T) matchResult[T] {
	result := matchResult[T]{
		additions: []T{},
		changes:   []pair[T]{},
		deletions: []T{},
		unchanged: []T{},
	}

	sourceByName := make(map[string]T, len(source))
	for _, element := range source {
		sourceByName[m.name(element)] = element
	}
	kept := make(map[string]bool, len(source))

	lookup := func(name string) (T, bool) {
		element, exists := sourceByName[name]
		if !exists || kept[name] {
			var zero T
			return zero, false
		}
		return element, true
	}

	for _, targetElement := range target {
		sourceElement, found := lookup(m.name(targetElement))
		if !found && m.formerNames != nil {
			for _, formerName := range m.formerNames(targetElement) {
				if sourceElement, found = lookup(formerName); found {
					break
				}
			}
		}
		if !found {
			result.additions = append(result.additions, targetElement)
			continue
		}

		kept[m.name(sourceElement)] = true
		if m.changed(sourceElement, targetElement) {
			result.changes = append(result.changes, pair[T]{source: sourceElement, target: targetElement})
		} else {
			result.unchanged = append(result.unchanged, targetElement)
		}
	}

	for _, element := range source {
		if kept[m.name(element)] {
			continue
		}
		result.deletions = append(result.deletions, element)
	}

	return result
}
