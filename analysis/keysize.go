package analysis

import (
	"sort"

	"github.com/pkg/errors"
)

// Key sizes considered when estimating the length of a repeating XOR key.
const (
	MinKeySize = 2
	MaxKeySize = 39
)

// sampleChunks is the number of consecutive key-size chunks compared.
const sampleChunks = 4

// KeyCandidate is a possible repeating XOR key length with the normalized
// Hamming distance between its sample chunks. Lower distances are better.
type KeyCandidate struct {
	KeySize  int
	Distance float64
}

// NormalizedDistance sums the Hamming distances between the first four
// consecutive keySize chunks of buf and divides by keySize. The buffer must
// hold at least four chunks.
func NormalizedDistance(buf []byte, keySize int) (float64, error) {
	if keySize <= 0 {
		return 0, ErrInvalidKeySize
	}
	if len(buf) < sampleChunks*keySize {
		return 0, errors.Wrapf(ErrInputTooShort, "%d bytes for key size %d", len(buf), keySize)
	}
	var sum int
	for i := 0; i < sampleChunks-1; i++ {
		d, err := HammingDistance(buf[i*keySize:(i+1)*keySize], buf[(i+1)*keySize:(i+2)*keySize])
		if err != nil {
			return 0, err
		}
		sum += d
	}
	return float64(sum) / float64(keySize), nil
}

// EstimateKeySizes ranks the key sizes from MinKeySize to MaxKeySize by
// normalized distance and returns the best n, lowest distance first. Equal
// distances keep the smaller key size first. Key sizes too large for four
// chunks to fit in buf are skipped.
func EstimateKeySizes(buf []byte, n int) ([]KeyCandidate, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	var res []KeyCandidate
	for size := MinKeySize; size <= MaxKeySize; size++ {
		d, err := NormalizedDistance(buf, size)
		if errors.Is(err, ErrInputTooShort) {
			// larger sizes won't fit either
			break
		}
		if err != nil {
			return nil, err
		}
		res = append(res, KeyCandidate{KeySize: size, Distance: d})
	}
	if len(res) == 0 {
		return nil, errors.Wrapf(ErrInputTooShort, "%d bytes", len(buf))
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Distance < res[j].Distance
	})
	if n < len(res) {
		res = res[:n]
	}
	return res, nil
}
