package main

import wavefx "github.com/tphakala/go-wave-fx"

const usage = "Usage: wavefx [-p preset.yaml] [-l level] [-x] " +
	"[[-r][-s factor][-S factor][-f][-o delay][-i delay][-v scale][-e delay scale]] < input > output"

// messages maps each error kind to the line printed on stderr.
var messages = map[wavefx.ErrorKind]string{
	wavefx.ErrUsage:             usage,
	wavefx.ErrOutOfMemory:       "Program out of memory",
	wavefx.ErrNotRIFF:           "File is not a RIFF file",
	wavefx.ErrBadFormatChunk:    "Format chunk is corrupted",
	wavefx.ErrBadDataChunk:      "Format chunk is corrupted",
	wavefx.ErrNotStereo:         "File is not stereo",
	wavefx.ErrInvalidSampleRate: "File does not use 44,100Hz sample rate",
	wavefx.ErrInvalidSampleSize: "File does not have 16-bit samples",
	wavefx.ErrTruncatedInput:    "File size does not match size in header",
	wavefx.ErrInvalidSpeed:      "A positive number must be supplied for the speed change",
	wavefx.ErrInvalidTime:       "A positive number must be supplied for the fade in and fade out time",
	wavefx.ErrInvalidVolume:     "A positive number must be supplied for the volume scale",
	wavefx.ErrInvalidEcho:       "Positive numbers must be supplied for the echo delay and scale parameters",
	wavefx.ErrInternal:          "Internal error",
}

// describe returns the stderr message and exit code for err. Errors without a
// kind, such as a failed write to stdout, exit as internal errors and print
// their own text.
func describe(err error) (string, int) {
	kind := wavefx.KindOf(err)
	msg, ok := messages[kind]
	if !ok {
		return err.Error(), int(wavefx.ErrInternal)
	}
	return msg, int(kind)
}
