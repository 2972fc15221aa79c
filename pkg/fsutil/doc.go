// Package fsutil provides small wrappers over file and path operations:
// cross-platform filename sanitization, extension handling, existence checks,
// directory creation, file copy and move, and line-oriented reading.
package fsutil
