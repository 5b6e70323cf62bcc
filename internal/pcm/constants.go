package pcm

// Stereo frame layout
const (
	bytesPerSample = 2
	channels       = 2
	frameSize      = bytesPerSample * channels
)

// I/O sizing
const (
	readBufferSize     = 64 * 1024 // bufio size for frame scanning
	maxInitialCapacity = 1 << 20   // samples preallocated per channel before growth
)
