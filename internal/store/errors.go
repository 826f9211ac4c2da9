package store

import "fmt"

// LoadError represents an error reading or parsing a document.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("load error: %s (%s)", e.Message, e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents an error writing the corpus back out.
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error: %s (%s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("save error: %s (%s)", e.Message, e.Path)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}
