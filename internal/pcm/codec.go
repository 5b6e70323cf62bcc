package pcm

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tphakala/go-wave-fx/internal/fxerr"
)

// Deinterleave reads sampleCount stereo frames from r and splits them into
// left and right buffers. Truncation is detected frame by frame, so a short
// stream fails at the first missing frame with its index.
func Deinterleave(r io.Reader, sampleCount int) (left, right Buffer, err error) {
	if sampleCount < 0 {
		return nil, nil, &fxerr.Error{Kind: fxerr.KindInternal, Field: "sample_count", Value: float64(sampleCount)}
	}

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, readBufferSize)
	}

	// Grow from a bounded capacity so a header promising more data than the
	// stream holds cannot force a huge allocation up front.
	initial := min(sampleCount, maxInitialCapacity)
	left = make(Buffer, 0, initial)
	right = make(Buffer, 0, initial)

	var frame [frameSize]byte
	for i := range sampleCount {
		if _, err := io.ReadFull(br, frame[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, nil, &fxerr.Error{Kind: fxerr.KindTruncatedInput, Field: "samples", Index: i, Err: err}
			}
			return nil, nil, fmt.Errorf("failed to read frame %d: %w", i, err)
		}
		left = append(left, int16(binary.LittleEndian.Uint16(frame[0:2])))
		right = append(right, int16(binary.LittleEndian.Uint16(frame[2:4])))
	}

	return left, right, nil
}

// DeinterleaveBytes is Deinterleave over an in-memory byte stream.
func DeinterleaveBytes(b []byte, sampleCount int) (left, right Buffer, err error) {
	return Deinterleave(bytes.NewReader(b), sampleCount)
}

// Interleave is the inverse of Deinterleave. Both buffers must have the same
// length; a mismatch is a programming error and panics.
func Interleave(left, right Buffer) []byte {
	if len(left) != len(right) {
		panic(fmt.Sprintf("pcm: interleave of unequal channels (%d != %d)", len(left), len(right)))
	}

	out := make([]byte, len(left)*frameSize)
	for i := range left {
		idx := i * frameSize
		binary.LittleEndian.PutUint16(out[idx:], uint16(left[i]))
		binary.LittleEndian.PutUint16(out[idx+bytesPerSample:], uint16(right[i]))
	}
	return out
}
