package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a graph node identifier.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
//
// Uniqueness across a node set is checked separately by ValidateGraphIDs.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node id contains control characters: %q", id)
		}
	}

	return nil
}

// ValidateGraphIDs checks a set of node identifiers for validity and
// uniqueness. Layout is keyed entirely by node id, so a duplicate would
// silently collapse two nodes onto one position.
func ValidateGraphIDs(ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if err := ValidateNodeID(id); err != nil {
			return err
		}
		if seen[id] {
			return New(ErrCodeInvalidGraph, "duplicate node id: %q", id)
		}
		seen[id] = true
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
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

	return nil
}

// ValidateDirection validates a hierarchical layout direction string.
func ValidateDirection(dir string) error {
	switch strings.ToUpper(dir) {
	case "TB", "LR":
		return nil
	default:
		return New(ErrCodeInvalidConfig, "unknown layout direction: %q (want TB or LR)", dir)
	}
}
