// Package wavefx applies simple effects to stereo 16-bit 44.1kHz PCM WAV files
// entirely in memory.
//
// A file is decoded into a header and one sample buffer per channel, an
// ordered chain of steps is applied to both channels, and the result is
// encoded back into a canonical 44-byte-header WAV file.
//
// # Features
//
//   - Reverse, speed change, channel flip, fade in, fade out, volume and echo
//   - Saturating arithmetic: samples clamp at the 16-bit rails, never wrap
//   - Header size fields reconciled after every length-changing step
//   - Nearest-sample or cubic Hermite interpolation for speed changes
//   - SIMD volume scaling via github.com/tphakala/simd
//   - Level analysis and go-audio interop through [Clip.IntBuffer]
//
// # Quick Start
//
//	clip, err := wavefx.Decode(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = clip.Apply([]wavefx.Step{
//	    wavefx.FadeIn(0.5),
//	    wavefx.Echo(0.25, 0.4),
//	    wavefx.Volume(0.8),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := clip.WriteTo(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// [Process] does the same in one call.
//
// # Input Format
//
// Only canonical files are accepted: a RIFF container whose "fmt " chunk is
// 16 bytes of uncompressed PCM, immediately followed by the "data" chunk, two
// channels, 44100 Hz and 16 bits per sample. Anything else is rejected before
// any sample data is read. Bytes after the data chunk are ignored.
//
// # Step Order
//
// Steps run in the order given and are not commutative: an echo followed by a
// reverse puts the echo tail at the start of the clip. All parameters are
// validated before the first step runs, so a bad parameter never leaves a
// partially processed clip.
//
// # Errors
//
// Every failure carries an [ErrorKind]. Use [errors.Is] with one of the
// exported kinds, or [KindOf] to extract it:
//
//	if errors.Is(err, wavefx.ErrNotStereo) {
//	    // ...
//	}
//
// # Thread Safety
//
// A [Clip] is not safe for concurrent use. Distinct clips can be processed
// in parallel.
package wavefx
