// Package fxerr defines the closed set of failure kinds produced by the effects core.
//
// The core never renders human-readable messages. Each failure is a Kind with a
// stable identifier and numeric value, optionally carried by an *Error holding
// structured context. Message rendering belongs to the command layer.
package fxerr

import "errors"

// Kind enumerates every failure the processor can report.
// Numeric values are stable and double as process exit codes.
type Kind int

const (
	// KindUsage is an unrecognized flag or a missing/non-numeric argument.
	KindUsage Kind = iota + 1

	// KindOutOfMemory is a buffer that cannot be allocated or would not fit
	// the 32-bit size fields of the header.
	KindOutOfMemory

	// KindNotRIFF is a container tag other than "RIFF".
	KindNotRIFF

	// KindBadFormatChunk is a wrong format tag, chunk length or compression code.
	KindBadFormatChunk

	// KindBadDataChunk is a data chunk tag other than "data".
	KindBadDataChunk

	// KindNotStereo is a channel count other than 2.
	KindNotStereo

	// KindInvalidSampleRate is a sample rate other than 44100 Hz.
	KindInvalidSampleRate

	// KindInvalidSampleSize is a sample size other than 16 bits.
	KindInvalidSampleSize

	// KindTruncatedInput is fewer bytes than the header promises.
	KindTruncatedInput

	// KindInvalidSpeed is a non-positive speed factor.
	KindInvalidSpeed

	// KindInvalidTime is a non-positive fade duration.
	KindInvalidTime

	// KindInvalidVolume is a non-positive volume factor.
	KindInvalidVolume

	// KindInvalidEcho is a non-positive echo delay or echo volume.
	KindInvalidEcho

	// KindInternal is a broken internal invariant (channel length mismatch).
	KindInternal
)

var kindNames = map[Kind]string{
	KindUsage:             "usage",
	KindOutOfMemory:       "out_of_memory",
	KindNotRIFF:           "not_riff",
	KindBadFormatChunk:    "bad_format_chunk",
	KindBadDataChunk:      "bad_data_chunk",
	KindNotStereo:         "not_stereo",
	KindInvalidSampleRate: "invalid_sample_rate",
	KindInvalidSampleSize: "invalid_sample_size",
	KindTruncatedInput:    "truncated_input",
	KindInvalidSpeed:      "invalid_speed",
	KindInvalidTime:       "invalid_time",
	KindInvalidVolume:     "invalid_volume",
	KindInvalidEcho:       "invalid_echo",
	KindInternal:          "internal",
}

// String returns the stable identifier of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error makes a Kind usable directly as a sentinel error.
func (k Kind) Error() string { return k.String() }

// Class groups kinds by the stage that detects them.
type Class int

const (
	ClassUnknown Class = iota
	ClassUsage
	ClassFormat
	ClassConstraint
	ClassTruncation
	ClassParameter
	ClassResource
	ClassInternal
)

// Class returns the taxonomy group of the kind.
func (k Kind) Class() Class {
	switch k {
	case KindUsage:
		return ClassUsage
	case KindNotRIFF, KindBadFormatChunk, KindBadDataChunk:
		return ClassFormat
	case KindNotStereo, KindInvalidSampleRate, KindInvalidSampleSize:
		return ClassConstraint
	case KindTruncatedInput:
		return ClassTruncation
	case KindInvalidSpeed, KindInvalidTime, KindInvalidVolume, KindInvalidEcho:
		return ClassParameter
	case KindOutOfMemory:
		return ClassResource
	case KindInternal:
		return ClassInternal
	default:
		return ClassUnknown
	}
}

// Error is a Kind plus the structured context needed to render a message.
type Error struct {
	Kind Kind

	// Field names the header field or step parameter at fault.
	Field string

	// Value is the offending numeric value, when there is one.
	Value float64

	// Index is the frame index at which a truncated scan stopped.
	Index int

	// Err is an underlying cause, usually from I/O.
	Err error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Field != "" {
		s += "(" + e.Field + ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New returns an *Error of kind k for the named field.
func New(k Kind, field string) *Error {
	return &Error{Kind: k, Field: field}
}

// Param returns a parameter error carrying the rejected value.
func Param(k Kind, field string, value float64) *Error {
	return &Error{Kind: k, Field: field, Value: value}
}

// KindOf extracts the Kind from err, or 0 when err carries none.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
