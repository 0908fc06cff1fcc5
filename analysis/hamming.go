package analysis

import (
	"math/bits"

	"github.com/pkg/errors"
)

// HammingDistance returns the number of differing bits between two
// equal-length buffers.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, errors.Wrapf(ErrLengthMismatch, "hamming distance of %d and %d bytes", len(a), len(b))
	}
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n, nil
}
