package maputil

import (
	"errors"
	"fmt"
	"strings"
)

const pathSeparator = "."

var (
	// ErrInvalidInput is the base error for all input validation failures
	// in this package.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPath is returned when a path operation receives an empty path.
	ErrEmptyPath = fmt.Errorf("%w: path must not be empty", ErrInvalidInput)

	// ErrPathConflict is returned by Set when an intermediate path segment
	// resolves to a value that is not a nested map.
	ErrPathConflict = fmt.Errorf("%w: intermediate segment is not a map", ErrInvalidInput)
)

// DeepClone returns a recursive copy of a nested map.
// Nested map[string]any and []any values are cloned; all other values are
// copied by assignment.
func DeepClone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	result := make(map[string]any, len(m))
	for key, value := range m {
		result[key] = cloneValue(value)
	}

	return result
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return DeepClone(typed)
	case []any:
		cloned := make([]any, len(typed))
		for i, item := range typed {
			cloned[i] = cloneValue(item)
		}

		return cloned
	default:
		return value
	}
}

// DeepMerge merges src into a clone of dst and returns the result.
// Values from src win on conflict, except when both sides hold nested maps,
// which are merged recursively. Neither input is modified.
func DeepMerge(dst, src map[string]any) map[string]any {
	result := DeepClone(dst)
	if result == nil {
		result = make(map[string]any, len(src))
	}

	for key, srcValue := range src {
		srcMap, srcIsMap := srcValue.(map[string]any)
		dstMap, dstIsMap := result[key].(map[string]any)

		if srcIsMap && dstIsMap {
			result[key] = DeepMerge(dstMap, srcMap)
			continue
		}

		result[key] = cloneValue(srcValue)
	}

	return result
}

// Get resolves a dot-separated path inside a nested map.
// The second return value reports whether the full path exists.
func Get(m map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	segments := strings.Split(path, pathSeparator)

	current := any(m)
	for _, segment := range segments {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = currentMap[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Set assigns a value at a dot-separated path inside a nested map,
// creating intermediate maps as needed.
// If an intermediate segment already holds a non-map value, ErrPathConflict
// is returned and the map is left unchanged.
func Set(m map[string]any, path string, value any) error {
	if path == "" {
		return ErrEmptyPath
	}

	segments := strings.Split(path, pathSeparator)

	// Walk without mutating first, so a conflict deep in the path
	// leaves no half-created intermediate maps behind.
	current := m
	for _, segment := range segments[:len(segments)-1] {
		existing, exists := current[segment]
		if !exists {
			break
		}

		nested, ok := existing.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q", ErrPathConflict, segment)
		}

		current = nested
	}

	current = m
	for _, segment := range segments[:len(segments)-1] {
		nested, exists := current[segment].(map[string]any)
		if !exists {
			nested = make(map[string]any)
			current[segment] = nested
		}

		current = nested
	}

	current[segments[len(segments)-1]] = value

	return nil
}

// Delete removes the value at a dot-separated path inside a nested map.
// It reports whether the path existed. Intermediate maps left empty after
// the removal are kept in place.
func Delete(m map[string]any, path string) bool {
	if path == "" {
		return false
	}

	segments := strings.Split(path, pathSeparator)

	current := m
	for _, segment := range segments[:len(segments)-1] {
		nested, ok := current[segment].(map[string]any)
		if !ok {
			return false
		}

		current = nested
	}

	last := segments[len(segments)-1]
	if _, exists := current[last]; !exists {
		return false
	}

	delete(current, last)

	return true
}

// Keys returns the keys of a map in unspecified order.
func Keys[K comparable, V any](m map[K]V) []K {
	result := make([]K, 0, len(m))
	for key := range m {
		result = append(result, key)
	}

	return result
}

// Values returns the values of a map in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	result := make([]V, 0, len(m))
	for _, value := range m {
		result = append(result, value)
	}

	return result
}

// Invert swaps the keys and values of a map.
// When several keys share a value, one of them wins; which one is
// unspecified.
func Invert[K, V comparable](m map[K]V) map[V]K {
	result := make(map[V]K, len(m))
	for key, value := range m {
		result[value] = key
	}

	return result
}
