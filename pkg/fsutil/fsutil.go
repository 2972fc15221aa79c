package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handykit/handykit/internal/constants"
)

var (
	// invalidCharsPattern includes ASCII control characters (0-31) and Windows-restricted characters: < > : " / \ | ? *.
	//nolint:gochecknoglobals // This is immutable, pre-compiled regex pattern and used as a constant.
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

	// windowsReservedNames is a map of filenames that are reserved on Windows systems.
	// These names are case-insensitive and cannot be used as filenames or folder names.
	//nolint:gochecknoglobals // This is an immutable map used as a constant for validation purposes.
	windowsReservedNames = map[string]struct{}{
		"CON":  {},
		"PRN":  {},
		"AUX":  {},
		"NUL":  {},
		"COM1": {},
		"COM2": {},
		"COM3": {},
		"COM4": {},
		"COM5": {},
		"COM6": {},
		"COM7": {},
		"COM8": {},
		"COM9": {},
		"LPT1": {},
		"LPT2": {},
		"LPT3": {},
		"LPT4": {},
		"LPT5": {},
		"LPT6": {},
		"LPT7": {},
		"LPT8": {},
		"LPT9": {},
	}
)

// SanitizeFilename sanitizes a filename or folder name to be valid on both Windows and Unix-like systems.
// It replaces invalid characters, handles Windows reserved names, and ensures the result is not empty.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	result := invalidCharsPattern.ReplaceAllString(name, "_")

	// Extract base filename (without extension) for comparison.
	baseName := result
	if dotIndex := strings.LastIndex(result, "."); dotIndex != -1 {
		baseName = result[:dotIndex]
	}

	// If base name is a Windows reserved name, prepend an underscore.
	if _, ok := windowsReservedNames[strings.ToUpper(baseName)]; ok {
		result = "_" + result
	}

	// Remove trailing dots from the filename.
	result = strings.TrimRight(result, ".")

	// Ensure the filename is not empty.
	if result == "" {
		result = "_"
	}

	return result
}

// SetFileExtension ensures the file has the specified extension.
// If the filename already has the correct extension, it is returned unchanged.
// With replace set, a different existing extension is swapped for the new one;
// otherwise the new extension is appended after it.
func SetFileExtension(filename, extension string, replace bool) string {
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	currentExt := filepath.Ext(filename)
	if currentExt == extension {
		return filename
	}

	if replace {
		filename = strings.TrimSuffix(filename, currentExt)
	}

	return filename + extension
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, fmt.Errorf("failed to stat %q: %w", path, err)
}

// EnsureDir creates the directory at the given path along with any missing
// parents. An existing directory is left untouched.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", path, err)
	}

	return nil
}

// CopyFile copies the file at src to dst, creating missing parent directories
// of dst. An existing dst is overwritten.
func CopyFile(src, dst string) error {
	source, err := os.Open(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src, err)
	}

	defer source.Close() //nolint:errcheck // Error on close is not critical here.

	if err = EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	destination, err := os.OpenFile(filepath.Clean(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dst, err)
	}

	if _, err = io.Copy(destination, source); err != nil {
		destination.Close() //nolint:errcheck,gosec // The copy error takes precedence.

		return fmt.Errorf("failed to copy %q to %q: %w", src, dst, err)
	}

	if err = destination.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", dst, err)
	}

	return nil
}

// MoveFile moves the file at src to dst. It renames when possible and falls
// back to copy-and-remove when src and dst are on different filesystems.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove %q after copy: %w", src, err)
	}

	return nil
}

// ReadLines reads a text file and returns a slice of unique non-empty lines.
// Lines are trimmed of surrounding whitespace; order of first appearance is kept.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	var (
		uniqueLines = make(map[string]struct{})
		lines       []string
		scanner     = bufio.NewScanner(file)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if _, exists := uniqueLines[line]; !exists {
			uniqueLines[line] = struct{}{}

			lines = append(lines, line)
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	return lines, nil
}

// MIMETypeByExtension returns the MIME type registered for a path's
// extension, or an empty string when the extension is unknown.
func MIMETypeByExtension(path string) string {
	return mime.TypeByExtension(filepath.Ext(path))
}

// JoinClean joins path elements and cleans the result.
func JoinClean(elements ...string) string {
	return filepath.Clean(filepath.Join(elements...))
}
