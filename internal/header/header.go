// Package header models the canonical 44-byte RIFF/WAVE header and its validity rules.
package header

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tphakala/go-wave-fx/internal/fxerr"
)

// Header is the fixed-layout metadata in front of the sample stream.
// Field order follows the on-disk layout.
type Header struct {
	ChunkID [4]byte
	Size    uint32
	Format  [4]byte

	FmtChunkID    [4]byte
	FmtChunkSize  uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	DataChunkID [4]byte
	DataSize    uint32
}

// New returns a valid stereo 16-bit 44.1kHz header describing sampleCount frames.
func New(sampleCount int) *Header {
	dataSize := uint32(sampleCount * Channels * BytesPerSample)
	return &Header{
		ChunkID:       riffTag,
		Size:          dataSize + Overhead,
		Format:        waveTag,
		FmtChunkID:    fmtTag,
		FmtChunkSize:  FmtChunkSize,
		AudioFormat:   FormatPCM,
		NumChannels:   Channels,
		SampleRate:    SampleRate,
		ByteRate:      SampleRate * Channels * BytesPerSample,
		BlockAlign:    Channels * BytesPerSample,
		BitsPerSample: BitsPerSample,
		DataChunkID:   dataTag,
		DataSize:      dataSize,
	}
}

// Parse decodes a header from the first Length bytes of b.
func Parse(b []byte) (*Header, error) {
	if len(b) < Length {
		return nil, &fxerr.Error{Kind: fxerr.KindTruncatedInput, Field: "header", Err: io.ErrUnexpectedEOF}
	}

	h := &Header{}
	le := binary.LittleEndian

	copy(h.ChunkID[:], b[0:4])
	h.Size = le.Uint32(b[4:8])
	copy(h.Format[:], b[8:12])

	copy(h.FmtChunkID[:], b[12:16])
	h.FmtChunkSize = le.Uint32(b[16:20])
	h.AudioFormat = le.Uint16(b[20:22])
	h.NumChannels = le.Uint16(b[22:24])
	h.SampleRate = le.Uint32(b[24:28])
	h.ByteRate = le.Uint32(b[28:32])
	h.BlockAlign = le.Uint16(b[32:34])
	h.BitsPerSample = le.Uint16(b[34:36])

	copy(h.DataChunkID[:], b[36:40])
	h.DataSize = le.Uint32(b[40:44])

	return h, nil
}

// Read consumes exactly Length bytes from r and decodes them.
// No sample bytes are read.
func Read(r io.Reader) (*Header, error) {
	buf := make([]byte, Length)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &fxerr.Error{Kind: fxerr.KindTruncatedInput, Field: "header", Err: err}
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return Parse(buf)
}

// MarshalBinary encodes the header into its 44-byte wire form.
func (h *Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, Length)
	le := binary.LittleEndian

	copy(b[0:4], h.ChunkID[:])
	le.PutUint32(b[4:8], h.Size)
	copy(b[8:12], h.Format[:])

	copy(b[12:16], h.FmtChunkID[:])
	le.PutUint32(b[16:20], h.FmtChunkSize)
	le.PutUint16(b[20:22], h.AudioFormat)
	le.PutUint16(b[22:24], h.NumChannels)
	le.PutUint32(b[24:28], h.SampleRate)
	le.PutUint32(b[28:32], h.ByteRate)
	le.PutUint16(b[32:34], h.BlockAlign)
	le.PutUint16(b[34:36], h.BitsPerSample)

	copy(b[36:40], h.DataChunkID[:])
	le.PutUint32(b[40:44], h.DataSize)

	return b, nil
}

// WriteTo writes the encoded header to w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	b, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// Validate checks the header against the supported format.
// Checks run in a fixed order and the first failure is returned.
func (h *Header) Validate() error {
	if h.ChunkID != riffTag {
		return fxerr.New(fxerr.KindNotRIFF, "chunk_id")
	}

	if h.FmtChunkID != fmtTag || h.FmtChunkSize != FmtChunkSize || h.AudioFormat != FormatPCM {
		return fxerr.New(fxerr.KindBadFormatChunk, "fmt")
	}

	if h.DataChunkID != dataTag {
		return fxerr.New(fxerr.KindBadDataChunk, "data_chunk_id")
	}

	if h.NumChannels != Channels {
		return &fxerr.Error{Kind: fxerr.KindNotStereo, Field: "num_channels", Value: float64(h.NumChannels)}
	}

	if h.SampleRate != SampleRate {
		return &fxerr.Error{Kind: fxerr.KindInvalidSampleRate, Field: "sample_rate", Value: float64(h.SampleRate)}
	}

	if h.BitsPerSample != BitsPerSample {
		return &fxerr.Error{Kind: fxerr.KindInvalidSampleSize, Field: "bits_per_sample", Value: float64(h.BitsPerSample)}
	}

	return nil
}

// FrameSize returns the bytes per sample frame across all channels.
func (h *Header) FrameSize() int {
	return int(h.NumChannels) * (int(h.BitsPerSample) / bitsPerByte)
}

// SampleCount returns the per-channel sample count implied by DataSize.
// A data size that is not a whole number of frames is truncated.
func (h *Header) SampleCount() int {
	frame := h.FrameSize()
	if frame == 0 {
		return 0
	}
	return int(h.DataSize) / frame
}

// AddDataBytes moves both size fields by delta bytes.
// Neither field is modified if either would leave the uint32 range.
func (h *Header) AddDataBytes(delta int64) error {
	data := int64(h.DataSize) + delta
	size := int64(h.Size) + delta
	if data < 0 || data > math.MaxUint32 || size < 0 || size > math.MaxUint32 {
		return &fxerr.Error{Kind: fxerr.KindOutOfMemory, Field: "data_size", Value: float64(data)}
	}
	h.DataSize = uint32(data)
	h.Size = uint32(size)
	return nil
}
