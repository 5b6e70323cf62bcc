package main

// Exit codes outside the error kinds.
const (
	exitOK = 0
)

// Logging defaults
const (
	envLogLevel = "WAVEFX_LOG_LEVEL" // overrides the preset level, not -l
)

// I/O sizing
const (
	stdinBufferSize = 256 * 1024
)
