package analysis

// AESBlockSize is the block size used to look for ECB repetition.
const AESBlockSize = 16

// ECBReport describes the repeated blocks found in a ciphertext.
type ECBReport struct {
	// Blocks is the number of blocks, counting a short trailing one.
	Blocks int
	// Repeated is the number of distinct block values seen more than once.
	Repeated int
	// Counts maps each block value to its number of occurrences.
	Counts map[string]int
}

// Detected reports whether any block occurs more than once.
func (r ECBReport) Detected() bool {
	return r.Repeated > 0
}

// DetectECB splits buf into blockSize-byte blocks and counts repeats.
// Identical plaintext blocks encrypt to identical ciphertext blocks in ECB
// mode, so a repeat is a strong hint that ECB was used.
func DetectECB(buf []byte, blockSize int) (ECBReport, error) {
	if blockSize <= 0 {
		return ECBReport{}, ErrInvalidBlockSize
	}
	r := ECBReport{Counts: make(map[string]int)}
	for i := 0; i < len(buf); i += blockSize {
		end := i + blockSize
		if end > len(buf) {
			end = len(buf)
		}
		r.Counts[string(buf[i:end])]++
		r.Blocks++
	}
	for _, n := range r.Counts {
		if n > 1 {
			r.Repeated++
		}
	}
	return r, nil
}
