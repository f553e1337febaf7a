package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrFileNotFound  = errors.New("input file not found")
	ErrDecompression = errors.New("decompression failed")

	// ErrLineTooLong is reported when a record exceeds the configured byte cap.
	ErrLineTooLong = errors.New("record exceeds maximum line length")
	// ErrMissingSIPSymbol is reported for a four-field record, which carries a
	// CUSIP but stops one column short of the SIP symbol.
	ErrMissingSIPSymbol = errors.New("record has no SIP symbol field")
)

// ErrorKind categorizes fatal setup failures.
type ErrorKind string

const (
	KindFileNotFound  ErrorKind = "file_not_found"
	KindDecompression ErrorKind = "decompression"
)

// FatalError aborts a run before any record is parsed.
type FatalError struct {
	Kind ErrorKind
	Path string // Optional: input file path
	Err  error
}

func (e *FatalError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := string(e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FatalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match a FatalError against the sentinel for its kind.
func (e *FatalError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindFileNotFound:
		return target == ErrFileNotFound
	case KindDecompression:
		return target == ErrDecompression
	}
	return false
}

// IsKind reports whether err is a FatalError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// ParseError is a recoverable, per-record failure. The run skips the record
// and continues with the next one.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
