// Package sliceutil provides generic, allocation-conscious slice transforms:
// chunking, grouping, deduplication, mapping/filtering/reducing, reversal,
// flattening, and Fisher-Yates shuffling.
// Apart from the in-place Shuffle, every function leaves its input untouched.
package sliceutil
