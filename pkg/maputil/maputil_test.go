package maputil

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeepClone tests the DeepClone function.
func TestDeepClone(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"name": "handykit",
		"nested": map[string]any{
			"enabled": true,
			"tags":    []any{"a", "b"},
		},
	}

	cloned := DeepClone(original)
	require.Equal(t, original, cloned)

	// Mutating the clone must not leak into the original.
	cloned["name"] = "changed"
	cloned["nested"].(map[string]any)["enabled"] = false
	cloned["nested"].(map[string]any)["tags"].([]any)[0] = "z"

	assert.Equal(t, "handykit", original["name"])
	assert.Equal(t, true, original["nested"].(map[string]any)["enabled"])
	assert.Equal(t, "a", original["nested"].(map[string]any)["tags"].([]any)[0])

	assert.Nil(t, DeepClone(nil))
}

// TestDeepMerge tests the DeepMerge function.
func TestDeepMerge(t *testing.T) {
	t.Parallel()

	dst := map[string]any{
		"a": 1,
		"b": map[string]any{
			"x": "keep",
			"y": "overwrite",
		},
	}
	src := map[string]any{
		"b": map[string]any{
			"y": "new",
			"z": "added",
		},
		"c": 3,
	}

	result := DeepMerge(dst, src)

	assert.Equal(t, map[string]any{
		"a": 1,
		"b": map[string]any{
			"x": "keep",
			"y": "new",
			"z": "added",
		},
		"c": 3,
	}, result)

	// Inputs are untouched.
	assert.Equal(t, "overwrite", dst["b"].(map[string]any)["y"])
	assert.Equal(t, map[string]any{"y": "new", "z": "added"}, src["b"])
}

// TestDeepMergeScalarWins tests that a scalar in src replaces a nested map in dst.
func TestDeepMergeScalarWins(t *testing.T) {
	t.Parallel()

	dst := map[string]any{"a": map[string]any{"deep": true}}
	src := map[string]any{"a": 42}

	result := DeepMerge(dst, src)
	assert.Equal(t, map[string]any{"a": 42}, result)
}

// TestGet tests the Get function.
func TestGet(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": 42,
			},
		},
		"top": "value",
	}

	tests := []struct {
		name     string
		path     string
		expected any
		found    bool
	}{
		{
			name:     "deep path",
			path:     "a.b.c",
			expected: 42,
			found:    true,
		},
		{
			name:     "top level",
			path:     "top",
			expected: "value",
			found:    true,
		},
		{
			name:     "intermediate map",
			path:     "a.b",
			expected: map[string]any{"c": 42},
			found:    true,
		},
		{
			name:  "missing leaf",
			path:  "a.b.missing",
			found: false,
		},
		{
			name:  "path through scalar",
			path:  "top.deeper",
			found: false,
		},
		{
			name:  "empty path",
			path:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, found := Get(m, tt.path)
			assert.Equal(t, tt.found, found)

			if tt.found {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

// TestSet tests the Set function.
func TestSet(t *testing.T) {
	t.Parallel()

	m := map[string]any{}

	require.NoError(t, Set(m, "a.b.c", 1))

	value, found := Get(m, "a.b.c")
	require.True(t, found)
	assert.Equal(t, 1, value)

	// Overwriting an existing leaf.
	require.NoError(t, Set(m, "a.b.c", 2))

	value, _ = Get(m, "a.b.c")
	assert.Equal(t, 2, value)

	// Setting a sibling keeps existing branches.
	require.NoError(t, Set(m, "a.b.d", 3))

	value, _ = Get(m, "a.b.c")
	assert.Equal(t, 2, value)
}

// TestSetPathConflict tests that Set refuses to descend through a scalar.
func TestSetPathConflict(t *testing.T) {
	t.Parallel()

	m := map[string]any{"a": "scalar"}

	err := Set(m, "a.b", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathConflict)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// The map is left unchanged.
	assert.Equal(t, map[string]any{"a": "scalar"}, m)

	err = Set(m, "", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

// TestDelete tests the Delete function.
func TestDelete(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": 2,
		},
	}

	assert.True(t, Delete(m, "a.b"))
	assert.False(t, Delete(m, "a.b"), "second delete finds nothing")
	assert.False(t, Delete(m, "missing.path"))
	assert.False(t, Delete(m, ""))

	_, found := Get(m, "a.c")
	assert.True(t, found, "siblings survive")
}

// TestKeysAndValues tests the Keys and Values functions.
func TestKeysAndValues(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1, "b": 2, "c": 3}

	keys := Keys(m)
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	values := Values(m)
	sort.Ints(values)
	assert.Equal(t, []int{1, 2, 3}, values)
}

// TestInvert tests the Invert function.
func TestInvert(t *testing.T) {
	t.Parallel()

	m := map[string]int{"one": 1, "two": 2}

	assert.Equal(t, map[int]string{1: "one", 2: "two"}, Invert(m))
}
