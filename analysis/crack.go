package analysis

import (
	"sync"

	"github.com/pkg/errors"
)

// Attempt is the outcome of trying to break repeating XOR with one key
// size. Err is set when some column had no viable key byte; otherwise Key
// and Plaintext hold the recovered key and decryption.
type Attempt struct {
	KeyCandidate
	Key       []byte
	Plaintext []byte
	// Score is the plaintext score.
	Score int
	// Columns holds the per-column results, for diagnostics.
	Columns []SingleByteResult
	Err     error
}

// OK reports whether the attempt recovered a key.
func (a Attempt) OK() bool {
	return a.Err == nil
}

// CrackRepeatingXOR estimates the n most likely key sizes of a repeating
// XOR ciphertext and tries to break each one, best first. Every column of a
// key size is attacked as single-byte XOR. A key size fails as a whole when
// any of its columns does, but the remaining sizes are still tried. All
// attempts are returned in the order they were made; choosing among the
// successful ones is up to the caller.
func CrackRepeatingXOR(buf []byte, n int) ([]Attempt, error) {
	candidates, err := EstimateKeySizes(buf, n)
	if err != nil {
		return nil, err
	}
	attempts := make([]Attempt, len(candidates))
	for i, c := range candidates {
		attempts[i] = crackKeySize(buf, c)
	}
	return attempts, nil
}

// crackKeySize breaks every column of buf for one key size.
func crackKeySize(buf []byte, c KeyCandidate) Attempt {
	a := Attempt{KeyCandidate: c}
	cols, err := TransposeColumns(buf, c.KeySize)
	if err != nil {
		a.Err = err
		return a
	}
	results := make([]SingleByteResult, len(cols))
	errs := make([]error, len(cols))

	var wg sync.WaitGroup
	wg.Add(len(cols))
	for i := range cols {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = BreakSingleByteXOR(cols[i])
		}(i)
	}
	wg.Wait()

	a.Columns = results
	for i, err := range errs {
		if err != nil {
			a.Err = errors.Wrapf(err, "key size %d: key byte %d", c.KeySize, i)
			return a
		}
	}
	a.Key = make([]byte, len(results))
	for i, r := range results {
		a.Key[i] = r.Key
	}
	if a.Plaintext, err = RepeatingXOR(buf, a.Key); err != nil {
		a.Err = err
		return a
	}
	a.Score = Score(a.Plaintext)
	return a
}

// Successful returns the attempts that recovered a key, in order.
func Successful(attempts []Attempt) []Attempt {
	var res []Attempt
	for _, a := range attempts {
		if a.OK() {
			res = append(res, a)
		}
	}
	return res
}
