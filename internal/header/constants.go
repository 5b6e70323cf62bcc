package header

// Wire layout
const (
	// Length is the size of the canonical header in bytes.
	Length = 44

	// Overhead is the difference between the RIFF size field and the data size
	// for a canonical header (everything after the RIFF size field up to the samples).
	Overhead = 36

	bitsPerByte = 8
)

// Supported format
const (
	FmtChunkSize   = 16
	FormatPCM      = 1
	Channels       = 2
	SampleRate     = 44100
	BitsPerSample  = 16
	BytesPerSample = BitsPerSample / bitsPerByte
)

var (
	riffTag = [4]byte{'R', 'I', 'F', 'F'}
	waveTag = [4]byte{'W', 'A', 'V', 'E'}
	fmtTag  = [4]byte{'f', 'm', 't', ' '}
	dataTag = [4]byte{'d', 'a', 't', 'a'}
)
