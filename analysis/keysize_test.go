package analysis

import (
	"math/rand"

	"github.com/pkg/errors"
	. "gopkg.in/check.v1"
)

func (s *MySuite) TestNormalizedDistance(c *C) {
	d, err := NormalizedDistance([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 2)
	c.Assert(err, IsNil)
	c.Assert(d, Equals, float64(2+4+2)/2)

	// only the first four chunks count
	d, err = NormalizedDistance([]byte{0, 1, 2, 3, 4, 5, 6, 7, 0xff, 0xff}, 2)
	c.Assert(err, IsNil)
	c.Assert(d, Equals, 4.0)

	_, err = NormalizedDistance([]byte{0, 1, 2, 3, 4, 5, 6}, 2)
	c.Assert(errors.Is(err, ErrInputTooShort), Equals, true)
	_, err = NormalizedDistance([]byte{0, 1, 2, 3}, 0)
	c.Assert(err, Equals, ErrInvalidKeySize)
}

func (s *MySuite) TestEstimateKeySizes(c *C) {
	_, err := EstimateKeySizes(make([]byte, 100), 0)
	c.Assert(err, Equals, ErrInvalidCount)

	_, err = EstimateKeySizes(make([]byte, 7), 5)
	c.Assert(errors.Is(err, ErrInputTooShort), Equals, true)

	// 8 bytes only hold four chunks of size 2
	got, err := EstimateKeySizes([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 5)
	c.Assert(err, IsNil)
	c.Assert(got, DeepEquals, []KeyCandidate{{KeySize: 2, Distance: 4}})

	// 4 * 39 bytes fit every key size
	got, err = EstimateKeySizes(make([]byte, 4*MaxKeySize), 100)
	c.Assert(err, IsNil)
	c.Assert(got, HasLen, MaxKeySize-MinKeySize+1)

	got, err = EstimateKeySizes(make([]byte, 4*MaxKeySize-1), 100)
	c.Assert(err, IsNil)
	c.Assert(got, HasLen, MaxKeySize-MinKeySize)
}

func (s *MySuite) TestEstimateKeySizesTiesKeepSmallerSizes(c *C) {
	got, err := EstimateKeySizes(make([]byte, 200), 3)
	c.Assert(err, IsNil)
	c.Assert(got, DeepEquals, []KeyCandidate{
		{KeySize: 2, Distance: 0},
		{KeySize: 3, Distance: 0},
		{KeySize: 4, Distance: 0},
	})
}

func (s *MySuite) TestEstimateKeySizesSorted(c *C) {
	r := rand.New(rand.NewSource(1))
	buf := make([]byte, 500)
	r.Read(buf)
	got, err := EstimateKeySizes(buf, 100)
	c.Assert(err, IsNil)
	c.Assert(got, HasLen, MaxKeySize-MinKeySize+1)
	seen := make(map[int]bool)
	for i, k := range got {
		c.Assert(seen[k.KeySize], Equals, false)
		seen[k.KeySize] = true
		if i > 0 {
			c.Assert(got[i-1].Distance <= k.Distance, Equals, true)
		}
	}
}

func (s *MySuite) TestTransposeColumns(c *C) {
	cols, err := TransposeColumns([]byte("abcdefg"), 3)
	c.Assert(err, IsNil)
	c.Assert(cols, DeepEquals, [][]byte{[]byte("adg"), []byte("be"), []byte("cf")})

	cols, err = TransposeColumns([]byte("ab"), 5)
	c.Assert(err, IsNil)
	c.Assert(cols, DeepEquals, [][]byte{[]byte("a"), []byte("b")})

	cols, err = TransposeColumns([]byte{}, 5)
	c.Assert(err, IsNil)
	c.Assert(cols, HasLen, 0)

	_, err = TransposeColumns([]byte("abc"), 0)
	c.Assert(err, Equals, ErrInvalidKeySize)
}

func (s *MySuite) TestTransposeRoundTrip(c *C) {
	for _, k := range []int{2, 3, 5} {
		for _, n := range []int{0, 1, k - 1, k, k + 1, 10 * k} {
			buf := make([]byte, n)
			for i := range buf {
				buf[i] = byte(i)
			}
			cols, err := TransposeColumns(buf, k)
			c.Assert(err, IsNil)
			c.Assert(len(cols) <= k, Equals, true)
			c.Assert(InterleaveColumns(cols), DeepEquals, buf,
				Commentf("key size %d, length %d", k, n))
		}
	}
}
