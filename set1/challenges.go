package set1

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"

	"matasano-xor-cryptanalysis/analysis"
)

// Ranker orders the successful attempts at breaking repeating XOR, most
// likely first.
type Ranker func([]analysis.Attempt) []analysis.Attempt

// ByScore ranks successful attempts by descending plaintext score. Attempts
// with equal scores keep their key size order.
func ByScore(attempts []analysis.Attempt) []analysis.Attempt {
	res := analysis.Successful(attempts)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res
}

// Challenge1 converts hex input to Base64.
func Challenge1(env Env) error {
	buf, err := ReadAll(env.In)
	if err != nil {
		return err
	}
	s, err := HexToBase64(string(bytes.TrimSpace(buf)))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, s)
	return err
}

// Challenge2 XORs two equal-length hex inputs and prints the result in hex.
func Challenge2(env Env, other io.Reader) error {
	a, err := ReadHex(env.In)
	if err != nil {
		return errors.Wrap(err, "first input")
	}
	b, err := ReadHex(other)
	if err != nil {
		return errors.Wrap(err, "second input")
	}
	x, err := FixedXOR(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, hex.EncodeToString(x))
	return err
}

// Challenge3 breaks hex input that was XORed with a single byte.
func Challenge3(env Env) error {
	buf, err := ReadHex(env.In)
	if err != nil {
		return err
	}
	res, err := analysis.BreakSingleByteXOR(buf)
	if err != nil {
		return err
	}
	env.Printf("Highest score was %d, obtained with key %d (%#x)", res.Score, res.Key, res.Key)
	env.Verbosef("Frequencies:\n%s", res.Frequencies)
	_, err = fmt.Fprintf(env.Out, "%s\n", res.Plaintext)
	return err
}

// Challenge4 finds the one line of hex input that was XORed with a single
// byte and prints its decryption.
func Challenge4(env Env) error {
	lines, err := ReadHexLines(env.In)
	if err != nil {
		return err
	}
	res, err := analysis.FindSingleByteXOR(lines)
	if err != nil {
		return err
	}
	env.Printf("Line %d has the highest score %d with key %q (%#x)",
		res.Line+1, res.Score, res.Key, res.Key)
	_, err = fmt.Fprintf(env.Out, "%s\n", bytes.TrimRight(res.Plaintext, "\n"))
	return err
}

// Challenge5 encrypts the input with repeating-key XOR and prints it in hex.
func Challenge5(env Env, key []byte) error {
	buf, err := ReadAll(env.In)
	if err != nil {
		return err
	}
	env.Verbosef("Using key: [%s]", key)
	out, err := analysis.RepeatingXOR(buf, key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, hex.EncodeToString(out))
	return err
}

// Challenge6 breaks Base64 input that was encrypted with repeating-key XOR,
// trying the given number of key sizes. Every attempt is logged; the
// plaintext of the best one according to rank is printed.
func Challenge6(env Env, candidates int, rank Ranker) error {
	buf, err := ReadBase64(env.In)
	if err != nil {
		return err
	}
	env.Printf("Decoded %d bytes of input", len(buf))
	if rank == nil {
		rank = ByScore
	}
	attempts, err := analysis.CrackRepeatingXOR(buf, candidates)
	if err != nil {
		return err
	}
	env.Printf("Guessed [%d] key sizes", len(attempts))
	for _, a := range attempts {
		if !a.OK() {
			env.Printf("Key size [%d] (normalized distance %f): %v", a.KeySize, a.Distance, a.Err)
			continue
		}
		env.Printf("Key size [%d] (normalized distance %f): key %q, score %d",
			a.KeySize, a.Distance, a.Key, a.Score)
		for i, col := range a.Columns {
			env.Verbosef("  key byte %d: %#x, score %d", i, col.Key, col.Score)
		}
	}
	ranked := rank(attempts)
	if len(ranked) == 0 {
		return errors.Wrap(analysis.ErrNoViableKey, "no key size decrypts the input")
	}
	best := ranked[0]
	env.Printf("The key is: %q", best.Key)
	_, err = env.Out.Write(best.Plaintext)
	return err
}

// Challenge7 decrypts Base64 input encrypted with AES-128 in ECB mode.
func Challenge7(env Env, key []byte) error {
	buf, err := ReadBase64(env.In)
	if err != nil {
		return err
	}
	pt, err := DecryptAes128Ecb(buf, key)
	if err != nil {
		return err
	}
	env.Printf("Decrypted %d bytes of input", len(pt))
	_, err = env.Out.Write(pt)
	return err
}

// Challenge8 prints the lines of hex input that repeat a block of the given
// size, which suggests ECB mode.
func Challenge8(env Env, blockSize int) error {
	lines, err := ReadHexLines(env.In)
	if err != nil {
		return err
	}
	for i, line := range lines {
		r, err := analysis.DetectECB(line, blockSize)
		if err != nil {
			return err
		}
		env.Verbosef("ciphertext %d is %d bytes long", i+1, len(line))
		if !r.Detected() {
			continue
		}
		for _, block := range repeatedBlocks(r) {
			env.Verbosef("  block %x has frequency %d", block, r.Counts[block])
		}
		env.Printf("Line %d has %d repeated blocks", i+1, r.Repeated)
		if _, err := fmt.Fprintln(env.Out, hex.EncodeToString(line)); err != nil {
			return err
		}
	}
	return nil
}

// repeatedBlocks returns the blocks of r seen more than once, sorted.
func repeatedBlocks(r analysis.ECBReport) []string {
	var blocks []string
	for block, n := range r.Counts {
		if n > 1 {
			blocks = append(blocks, block)
		}
	}
	sort.Strings(blocks)
	return blocks
}
