package analysis

// SingleByteResult is the most likely decryption of a buffer that was
// XORed with a single byte.
type SingleByteResult struct {
	Key         byte
	Score       int
	Plaintext   []byte
	Frequencies FrequencyTable
}

// XORSingleByte XORs every byte of src with b into dst, which must be at
// least as long as src.
func XORSingleByte(dst, src []byte, b byte) {
	for i := range src {
		dst[i] = src[i] ^ b
	}
}

// BreakSingleByteXOR tries every key byte from 1 to 255 and returns the one
// whose output scores highest. Zero is skipped since XOR with it is a no-op.
// The first key to reach the top score wins ties. ErrNoViableKey is returned
// when every key gives a disqualified buffer.
func BreakSingleByteXOR(buf []byte) (SingleByteResult, error) {
	tmp := make([]byte, len(buf))
	var (
		best int
		key  byte
	)
	// use an int so the loop terminates after 0xff
	for i := 0x01; i <= 0xff; i++ {
		XORSingleByte(tmp, buf, byte(i))
		if n := Score(tmp); n > best {
			best = n
			key = byte(i)
		}
	}
	if best == 0 {
		return SingleByteResult{}, ErrNoViableKey
	}
	XORSingleByte(tmp, buf, key)
	return SingleByteResult{
		Key:         key,
		Score:       best,
		Plaintext:   tmp,
		Frequencies: Frequencies(tmp),
	}, nil
}

// LineResult is the best single-byte XOR decryption among several lines.
type LineResult struct {
	Line int
	SingleByteResult
}

// FindSingleByteXOR breaks every line and returns the one that decrypts to
// the highest score. Lines with no viable key are skipped. The earliest line
// wins ties.
func FindSingleByteXOR(lines [][]byte) (LineResult, error) {
	var (
		best  LineResult
		found bool
	)
	for i, line := range lines {
		res, err := BreakSingleByteXOR(line)
		if err != nil {
			continue
		}
		if !found || res.Score > best.Score {
			best = LineResult{Line: i, SingleByteResult: res}
			found = true
		}
	}
	if !found {
		return LineResult{}, ErrNoViableKey
	}
	return best, nil
}
