// Package jscerr categorizes the codec's graceful-rejection paths. Every
// condition reachable from untrusted input bytes returns one of these
// instead of panicking; programming-error preconditions panic directly and
// never construct a Rejection (spec.md §7).
package jscerr

import (
	"errors"
	"fmt"
)

// Code classifies why a bitstream or a caller-supplied geometry was
// rejected.
type Code int

const (
	CodeShortDestination Code = iota + 1
	CodeSuspended
	CodeNoSOI
	CodeDuplicateSOI
	CodeSOFBeforeSOI
	CodeDuplicateSOF
	CodeSOSBeforeSOF
	CodeUnsupportedSOF
	CodePrecisionUnsupported
	CodeDimensionInvalid
	CodeComponentCountInvalid
	CodeSamplingFactorInvalid
	CodeQuantSelectorInvalid
	CodeQuantSelectorUndefined
	CodeQuantPrecisionInvalid
	CodeQuantDuplicate
	CodeHuffSelectorInvalid
	CodeHuffSelectorUndefined
	CodeHuffBitsOverflow
	CodeHuffDCValueTooLarge
	CodeBlocksPerMCUExceeded
	CodeFractionalSampling
	CodeMissingSOS
	CodeMarkerLoopExceeded
	CodeArenaTooSmall
	CodeGarbageMarker
)

func (c Code) String() string {
	switch c {
	case CodeShortDestination:
		return "ShortDestination"
	case CodeSuspended:
		return "Suspended"
	case CodeNoSOI:
		return "NoSOI"
	case CodeDuplicateSOI:
		return "DuplicateSOI"
	case CodeSOFBeforeSOI:
		return "SOFBeforeSOI"
	case CodeDuplicateSOF:
		return "DuplicateSOF"
	case CodeSOSBeforeSOF:
		return "SOSBeforeSOF"
	case CodeUnsupportedSOF:
		return "UnsupportedSOF"
	case CodePrecisionUnsupported:
		return "PrecisionUnsupported"
	case CodeDimensionInvalid:
		return "DimensionInvalid"
	case CodeComponentCountInvalid:
		return "ComponentCountInvalid"
	case CodeSamplingFactorInvalid:
		return "SamplingFactorInvalid"
	case CodeQuantSelectorInvalid:
		return "QuantSelectorInvalid"
	case CodeQuantSelectorUndefined:
		return "QuantSelectorUndefined"
	case CodeQuantPrecisionInvalid:
		return "QuantPrecisionInvalid"
	case CodeQuantDuplicate:
		return "QuantDuplicate"
	case CodeHuffSelectorInvalid:
		return "HuffSelectorInvalid"
	case CodeHuffSelectorUndefined:
		return "HuffSelectorUndefined"
	case CodeHuffBitsOverflow:
		return "HuffBitsOverflow"
	case CodeHuffDCValueTooLarge:
		return "HuffDCValueTooLarge"
	case CodeBlocksPerMCUExceeded:
		return "BlocksPerMCUExceeded"
	case CodeFractionalSampling:
		return "FractionalSampling"
	case CodeMissingSOS:
		return "MissingSOS"
	case CodeMarkerLoopExceeded:
		return "MarkerLoopExceeded"
	case CodeArenaTooSmall:
		return "ArenaTooSmall"
	case CodeGarbageMarker:
		return "GarbageMarker"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Rejection is returned for every malformed-input condition in spec.md §7.
// It is never used for programming errors, which panic instead.
type Rejection struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Rejection) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Rejection) Unwrap() error { return e.Cause }

// New builds a Rejection with no wrapped cause.
func New(code Code, message string) error {
	return &Rejection{Code: code, Message: message}
}

// Newf builds a Rejection with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a Rejection that carries an underlying cause, following the
// teacher's fmt.Errorf("...: %w", err) convention but preserving the
// category for callers that need to branch on it.
func Wrap(code Code, message string, cause error) error {
	return &Rejection{Code: code, Message: message, Cause: cause}
}

// As reports whether err is (or wraps) a *Rejection and returns it.
func As(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// Is reports whether err is a *Rejection of the given Code.
func Is(err error, code Code) bool {
	r, ok := As(err)
	return ok && r.Code == code
}
