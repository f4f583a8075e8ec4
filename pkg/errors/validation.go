package errors

import (
	"strings"
	"unicode"
)

// ValidatePageName validates a page name used to locate content files.
// It rejects names that could be used for path traversal, since page
// names arrive from URLs and CLI arguments and are joined onto the
// content directory.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidatePageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "page name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "page name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "page name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "page name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "page name contains invalid characters: %q", "..")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidName, "page name cannot be a hidden file")
	}

	return nil
}

// ValidateContentDir validates a content directory path from
// configuration. It ensures the path is non-empty and free of null
// bytes; everything else is left to the filesystem.
func ValidateContentDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidConfig, "content directory cannot be empty")
	}
	if strings.Contains(dir, "\x00") {
		return New(ErrCodeInvalidConfig, "content directory contains null byte")
	}
	return nil
}
