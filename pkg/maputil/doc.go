// Package maputil provides helpers for working with maps: deep cloning and
// merging of nested map[string]any structures, dot-separated path access, and
// generic key/value utilities.
package maputil
