package analysis

import (
	"crypto/cipher"
	"encoding/hex"
	"math/rand"

	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

const prose = "The quick brown fox jumps over the lazy dog while the patient hunter waits " +
	"in the tall grass. It is a truth universally acknowledged that a single man in " +
	"possession of a good fortune must be in want of a wife. Call me Ishmael, said the " +
	"sailor, and then he went down to the sea again to watch the waves roll on forever."

func (s *MySuite) TestRepeatingXOR(c *C) {
	_, err := RepeatingXOR([]byte("abc"), []byte{})
	c.Assert(err, Equals, ErrEmptyKey)
	_, err = RepeatingXOR([]byte{}, nil)
	c.Assert(err, Equals, ErrEmptyKey)

	out, err := RepeatingXOR([]byte{}, []byte("a"))
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []byte{})

	out, err = RepeatingXOR([]byte("abc"), []byte("xy"))
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []byte{0x19, 0x1b, 0x1b})

	out, err = RepeatingXOR([]byte("Burning 'em, if you ain't quick and nimble\n"+
		"I go crazy when I hear a cymbal"), []byte("ICE"))
	c.Assert(err, IsNil)
	c.Assert(hex.EncodeToString(out), Equals,
		"0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f")
}

func (s *MySuite) TestRepeatingXORInvolution(c *C) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		buf := make([]byte, r.Intn(200))
		key := make([]byte, 1+r.Intn(40))
		r.Read(buf)
		r.Read(key)
		enc, err := RepeatingXOR(buf, key)
		c.Assert(err, IsNil)
		dec, err := RepeatingXOR(enc, key)
		c.Assert(err, IsNil)
		c.Assert(dec, DeepEquals, buf)
	}
}

func (s *MySuite) TestXORCipher(c *C) {
	_, err := NewXORCipher(nil)
	c.Assert(err, Equals, ErrEmptyKey)

	var stream cipher.Stream
	stream, err = NewXORCipher([]byte{1, 2, 3})
	c.Assert(err, IsNil)
	dst := make([]byte, 6)
	// the key position carries over between calls
	stream.XORKeyStream(dst[:2], []byte{1, 2})
	stream.XORKeyStream(dst[2:], []byte{3, 4, 5, 6})
	c.Assert(dst, DeepEquals, []byte{0, 0, 0, 5, 7, 5})
}

func (s *MySuite) TestDetectECB(c *C) {
	block := []byte("YELLOW SUBMARINE")
	r, err := DetectECB(append(append([]byte{}, block...), block...), AESBlockSize)
	c.Assert(err, IsNil)
	c.Assert(r.Detected(), Equals, true)
	c.Assert(r.Repeated, Equals, 1)
	c.Assert(r.Blocks, Equals, 2)
	c.Assert(r.Counts[string(block)], Equals, 2)

	// a short trailing block is still a block
	r, err = DetectECB([]byte("YELLOW SUBMARINEyellow submarineabc"), AESBlockSize)
	c.Assert(err, IsNil)
	c.Assert(r.Detected(), Equals, false)
	c.Assert(r.Blocks, Equals, 3)
	c.Assert(r.Counts["abc"], Equals, 1)

	r, err = DetectECB([]byte{}, AESBlockSize)
	c.Assert(err, IsNil)
	c.Assert(r.Detected(), Equals, false)
	c.Assert(r.Blocks, Equals, 0)

	_, err = DetectECB(block, 0)
	c.Assert(err, Equals, ErrInvalidBlockSize)
}

func (s *MySuite) TestDetectECBRandomBlocks(c *C) {
	rnd := rand.New(rand.NewSource(8))
	buf := make([]byte, 200*AESBlockSize)
	rnd.Read(buf)
	r, err := DetectECB(buf, AESBlockSize)
	c.Assert(err, IsNil)
	c.Assert(r.Detected(), Equals, false)
	c.Assert(r.Repeated, Equals, 0)
	c.Assert(r.Blocks, Equals, 200)
}

func findAttempt(attempts []Attempt, keySize int) (Attempt, bool) {
	for _, a := range attempts {
		if a.KeySize == keySize {
			return a, true
		}
	}
	return Attempt{}, false
}

func (s *MySuite) TestCrackRepeatingXOR(c *C) {
	key := []byte("SWORD")
	for _, text := range []string{prose, prose[:80]} {
		plaintext := []byte(text)
		ct, err := RepeatingXOR(plaintext, key)
		c.Assert(err, IsNil)

		attempts, err := CrackRepeatingXOR(ct, MaxKeySize-MinKeySize+1)
		c.Assert(err, IsNil)
		c.Assert(len(attempts) > 0, Equals, true)

		a, ok := findAttempt(Successful(attempts), len(key))
		c.Assert(ok, Equals, true)
		c.Assert(a.Key, DeepEquals, key)
		c.Assert(a.Plaintext, DeepEquals, plaintext)
		c.Assert(a.Score, Equals, Score(plaintext))
		c.Assert(a.Columns, HasLen, len(key))
	}
}

func (s *MySuite) TestCrackRepeatingXORKeepsGoingAfterFailure(c *C) {
	// with key size 2 the first column holds both 0x00 and 0x80, which no
	// key byte can make printable; with key size 3 every column is constant
	buf := []byte{0x00, 0x80, 0x40, 0x00, 0x80, 0x40, 0x00, 0x80, 0x40, 0x00, 0x80, 0x40}
	attempts, err := CrackRepeatingXOR(buf, 5)
	c.Assert(err, IsNil)
	c.Assert(attempts, HasLen, 2)

	c.Assert(attempts[0].KeySize, Equals, 3)
	c.Assert(attempts[0].Distance, Equals, 0.0)
	c.Assert(attempts[0].OK(), Equals, true)
	c.Assert(attempts[0].Key, DeepEquals, []byte{0x41, 0xc1, 0x01})
	c.Assert(attempts[0].Plaintext, DeepEquals, []byte("AAAAAAAAAAAA"))

	c.Assert(attempts[1].KeySize, Equals, 2)
	c.Assert(attempts[1].OK(), Equals, false)
	c.Assert(errors.Is(attempts[1].Err, ErrNoViableKey), Equals, true)
	c.Assert(attempts[1].Err, ErrorMatches, "key size 2: key byte 0: .*")
	c.Assert(attempts[1].Key, IsNil)

	c.Assert(Successful(attempts), HasLen, 1)
}

func (s *MySuite) TestCrackRepeatingXORShortInput(c *C) {
	_, err := CrackRepeatingXOR([]byte("short"), 5)
	c.Assert(errors.Is(err, ErrInputTooShort), Equals, true)
	_, err = CrackRepeatingXOR([]byte(prose), 0)
	c.Assert(err, Equals, ErrInvalidCount)
}
