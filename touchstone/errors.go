package touchstone

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader indicates a source whose opening construct is
	// neither a Version-1.0 option line nor a valid `[Version] 2.0`
	// keyword, or a Version-2.0 header missing a mandatory keyword.
	ErrMalformedHeader = errors.New("touchstone: malformed header")

	// ErrMalformedKeyword indicates an unrecognized or unparsable
	// Version-2.0 `[...]` keyword line.
	ErrMalformedKeyword = errors.New("touchstone: malformed keyword")

	// ErrMalformedOption indicates an unrecognized or unparsable token
	// on the `#` option line.
	ErrMalformedOption = errors.New("touchstone: malformed option")

	// ErrMalformedData indicates a network- or noise-data record with
	// the wrong shape: token counts that fit no record, a first record
	// that implies no integral port count, or an unparsable number.
	ErrMalformedData = errors.New("touchstone: malformed data")

	// ErrUnsupportedParameterType is reported when data is read from a
	// file declaring a parameter type other than S; no conversion
	// formula is guessed.
	ErrUnsupportedParameterType = errors.New("touchstone: unsupported parameter type")

	// ErrDecoderClosed is returned by any read after Close.
	ErrDecoderClosed = errors.New("touchstone: read from closed decoder")

	// ErrEncoderClosed is returned by any write after Close.
	ErrEncoderClosed = errors.New("touchstone: write to closed encoder")

	// ErrUnknownPortCount is returned by an explicit Version-2.0
	// WriteHeader before the port count is available from either the
	// keyword state or a first matrix.
	ErrUnknownPortCount = errors.New("touchstone: port count not yet known")

	// ErrNilDocument is returned by WriteDocument for a nil document or
	// a document with no network collection.
	ErrNilDocument = errors.New("touchstone: nil document")
)

// Section names the grammar region a parse error was raised in.
type Section int

const (
	SectionHeader Section = iota
	SectionOptions
	SectionKeywords
	SectionNetworkData
	SectionNoiseData
)

// String returns the section name used in error messages.
func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "Header"
	case SectionOptions:
		return "Options"
	case SectionKeywords:
		return "Keywords"
	case SectionNetworkData:
		return "NetworkData"
	case SectionNoiseData:
		return "NoiseData"
	default:
		return "unknown"
	}
}

// ParseError decorates a sentinel with the 1-based physical line number
// and the grammar section it was raised in. Match the cause with
// errors.Is; recover the position with errors.As.
type ParseError struct {
	Line    int
	Section Section
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Section, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseError builds a *ParseError; err is the sentinel (optionally
// already wrapped with context).
func parseError(line int, section Section, err error) error {
	return &ParseError{Line: line, Section: section, Err: err}
}
