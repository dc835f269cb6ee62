package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// maxCityNameLength bounds city names accepted from user input.
const maxCityNameLength = 64

// cityNameRegex matches the names the line-oriented configuration format can
// express: one or more ASCII letters, digits, or underscores.
var cityNameRegex = regexp.MustCompile(`^\w+$`)

// ValidateCityName checks that a city name can be stored and written back to
// a configuration file.
//
// The rules mirror the configuration grammar:
//   - No empty names
//   - Maximum length of 64 characters
//   - Only letters, digits, and underscores
func ValidateCityName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "city name cannot be empty")
	}

	if len(name) > maxCityNameLength {
		return New(ErrCodeInvalidInput, "city name too long (max %d characters)", maxCityNameLength)
	}

	if !cityNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "city name %q may only contain letters, digits, and underscores", name)
	}

	return nil
}

// ValidatePath validates an output file path entered interactively or on the
// command line.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (no trailing separator)
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
