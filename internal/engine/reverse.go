package engine

import "github.com/tphakala/go-wave-fx/internal/pcm"

// Reverse reverses b in place. With an odd length the middle sample stays put.
func Reverse(b pcm.Buffer) {
	n := len(b)
	for i := range n / 2 {
		b[i], b[n-1-i] = b[n-1-i], b[i]
	}
}
