package wavefx

import "github.com/tphakala/go-wave-fx/internal/fxerr"

// ErrorKind classifies a failure. Its numeric value is stable.
type ErrorKind = fxerr.Kind

// Error is a failure with structured context.
type Error = fxerr.Error

// Error kinds. Each can be used as an errors.Is target.
const (
	ErrUsage             = fxerr.KindUsage
	ErrOutOfMemory       = fxerr.KindOutOfMemory
	ErrNotRIFF           = fxerr.KindNotRIFF
	ErrBadFormatChunk    = fxerr.KindBadFormatChunk
	ErrBadDataChunk      = fxerr.KindBadDataChunk
	ErrNotStereo         = fxerr.KindNotStereo
	ErrInvalidSampleRate = fxerr.KindInvalidSampleRate
	ErrInvalidSampleSize = fxerr.KindInvalidSampleSize
	ErrTruncatedInput    = fxerr.KindTruncatedInput
	ErrInvalidSpeed      = fxerr.KindInvalidSpeed
	ErrInvalidTime       = fxerr.KindInvalidTime
	ErrInvalidVolume     = fxerr.KindInvalidVolume
	ErrInvalidEcho       = fxerr.KindInvalidEcho
	ErrInternal          = fxerr.KindInternal
)

// KindOf returns the kind carried by err, or 0 if it has none.
func KindOf(err error) ErrorKind {
	return fxerr.KindOf(err)
}
