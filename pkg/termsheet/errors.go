package termsheet

import (
	"fmt"
)

// DocumentError represents an error during document operations
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// PartError represents an error parsing or rewriting one part of the package
type PartError struct {
	Part  string
	Cause error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("part '%s': %v", e.Part, e.Cause)
}

func (e *PartError) Unwrap() error {
	return e.Cause
}

// NewPartError creates a new part error
func NewPartError(part string, cause error) error {
	return &PartError{Part: part, Cause: cause}
}
