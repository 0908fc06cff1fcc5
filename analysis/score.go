// Package analysis breaks XOR-based encryption with statistical attacks and
// spots ECB mode by its repeated blocks.
package analysis

import (
	"fmt"
	"strings"
)

// FrequencyTable holds the number of occurrences of every byte value in a
// buffer.
type FrequencyTable [256]int

// Frequencies counts the bytes of buf.
func Frequencies(buf []byte) FrequencyTable {
	var t FrequencyTable
	for _, c := range buf {
		t[c]++
	}
	return t
}

// String lists the byte values that occur at least once.
func (t FrequencyTable) String() string {
	var sb strings.Builder
	for i, n := range t {
		if n == 0 {
			continue
		}
		if isPrint(byte(i)) {
			fmt.Fprintf(&sb, "  %d (%c): %d times\n", i, i, n)
		} else {
			fmt.Fprintf(&sb, "  %d (nonprint): %d times\n", i, n)
		}
	}
	return sb.String()
}

func isPrint(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

func isSpace(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Score returns how much buf looks like English text. Buffers holding any
// byte that is neither printable nor whitespace score 0; so does the empty
// buffer.
//
// Every byte is worth one point. Letters and spaces are worth one more, and
// the five most common English letters (e, t, a, o, i) two more.
func Score(buf []byte) int {
	for _, c := range buf {
		if !isPrint(c) && !isSpace(c) {
			return 0
		}
	}
	return scoreTable(len(buf), Frequencies(buf))
}

func scoreTable(n int, t FrequencyTable) int {
	score := n
	// ascii is 7 bits
	for c := byte(0); c < 0x7f; c++ {
		if !isAlpha(c) && c != ' ' {
			continue
		}
		switch c | 0x20 {
		case 'e', 't', 'a', 'o', 'i':
			score += 2 * t[c]
		default:
			score += t[c]
		}
	}
	return score
}
