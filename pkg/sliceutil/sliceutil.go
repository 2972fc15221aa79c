package sliceutil

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidInput is the base error for every malformed argument in this package.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidChunkSize indicates that a chunk size below one was requested.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be at least 1", ErrInvalidInput)
)

// Chunk splits a slice into consecutive sub-slices of at most size elements.
// The last chunk may be shorter. A size below one fails with ErrInvalidChunkSize.
func Chunk[E any](v []E, size int) ([][]E, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	if len(v) == 0 {
		return nil, nil
	}

	chunks := make([][]E, 0, (len(v)+size-1)/size)

	for start := 0; start < len(v); start += size {
		end := min(start+size, len(v))
		chunks = append(chunks, v[start:end:end])
	}

	return chunks, nil
}

// Unique returns the elements of a slice with duplicates removed,
// preserving first-occurrence order.
func Unique[E comparable](v []E) []E {
	seen := make(map[E]struct{}, len(v))
	result := make([]E, 0, len(v))

	for _, item := range v {
		if _, exists := seen[item]; exists {
			continue
		}

		seen[item] = struct{}{}

		result = append(result, item)
	}

	return result
}

// GroupBy partitions a slice into groups keyed by the given function,
// preserving element order within each group.
func GroupBy[E any, K comparable](v []E, keyFunc func(E) K) map[K][]E {
	groups := make(map[K][]E)
	for _, item := range v {
		key := keyFunc(item)
		groups[key] = append(groups[key], item)
	}

	return groups
}

// Contains reports whether a slice contains the given element.
func Contains[E comparable](v []E, target E) bool {
	return IndexOf(v, target) >= 0
}

// IndexOf returns the index of the first occurrence of target, or -1.
func IndexOf[E comparable](v []E, target E) int {
	for i := range v {
		if v[i] == target {
			return i
		}
	}

	return -1
}

// Map applies a transformation function to each element of a slice and returns
// a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}

// Filter returns the elements of a slice for which the predicate holds,
// preserving order.
func Filter[E any](v []E, keepFunc func(E) bool) []E {
	result := make([]E, 0, len(v))

	for _, item := range v {
		if keepFunc(item) {
			result = append(result, item)
		}
	}

	return result
}

// Reduce folds a slice left to right into a single accumulated value.
func Reduce[E, A any](v []E, initial A, accumulateFunc func(A, E) A) A {
	accumulator := initial
	for _, item := range v {
		accumulator = accumulateFunc(accumulator, item)
	}

	return accumulator
}

// Reverse returns a new slice with the elements in the opposite order.
func Reverse[E any](v []E) []E {
	result := make([]E, len(v))
	for i := range v {
		result[i] = v[len(v)-1-i]
	}

	return result
}

// Flatten concatenates a slice of slices into a single slice.
func Flatten[E any](v [][]E) []E {
	total := 0
	for _, inner := range v {
		total += len(inner)
	}

	result := make([]E, 0, total)
	for _, inner := range v {
		result = append(result, inner...)
	}

	return result
}

// Shuffle permutes a slice in place using the Fisher-Yates algorithm.
// Each call draws fresh randomness; results are not reproducible.
func Shuffle[E any](v []E) {
	for i := len(v) - 1; i > 0; i-- {
		//nolint:gosec // Shuffling is not a cryptographic use.
		j := rand.IntN(i + 1)
		v[i], v[j] = v[j], v[i]
	}
}

// Shuffled returns a shuffled copy of a slice, leaving the input untouched.
func Shuffled[E any](v []E) []E {
	result := make([]E, len(v))
	copy(result, v)
	Shuffle(result)

	return result
}
