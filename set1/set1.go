package set1

import (
	"crypto/aes"
	"encoding/hex"
	"math"

	"github.com/pkg/errors"
)

// Symbols used in Base64
const base64Symbols string = ("ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz0123456789+/")

// Base64Encode returns a Base64-encoded version of the given byte array.
func Base64Encode(s []byte) []byte {
	length := len(s)
	// output always takes ceil(length * 4/3) bytes because padding symbols are
	// added
	result := make([]byte, 0, int(math.Ceil(float64(length)*4/3)))
	wholeBlockLength := length / 3 * 3
	var i int
	for i = 0; i < wholeBlockLength; i += 3 {
		// 1st symbol is bits 1-6 of 1st byte
		// 2nd symbol is bits 7-8 of 1st byte + bits 1-4 of 2nd byte
		// 3rd symbol is bits 5-8 of 2nd byte + bits 1-2 of 3rd byte
		// 4th symbol is bits 3-8 of 3rd byte
		result = append(result,
			base64Symbols[s[i]&0xfc>>2],
			base64Symbols[s[i]&0x03<<4|s[i+1]&0xf0>>4],
			base64Symbols[s[i+1]&0x0f<<2|s[i+2]&0xc0>>6],
			base64Symbols[s[i+2]&0x3f])
	}

	// last 1 or 2 bytes + padding
	if length != wholeBlockLength {
		result = append(result, base64Symbols[s[i]&0xfc>>2])
		byte1End := s[i] & 0x03 << 4
		if length-wholeBlockLength == 1 {
			// 1 leftover byte: rest of 2nd symbol is 0. 2 padding symbols.
			result = append(result, base64Symbols[byte1End], '=', '=')
		} else {
			// 2 leftover bytes: 2nd symbol also includes first 4 bits of byte
			// 2. 1 padding symbol.
			result = append(result, base64Symbols[byte1End|s[i+1]&0xf0>>4],
				base64Symbols[s[i+1]&0x0f<<2], '=')
		}
	}
	return result
}

// HexToBase64 takes a hexadecimal-encoded string and returns a
// Base64-encoded version of the bytes it represents.
func HexToBase64(hexStr string) (string, error) {
	bytearray, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", errors.Wrap(err, "decoding hex")
	}
	return string(Base64Encode(bytearray)), nil
}

// ErrLengthMismatch is returned by FixedXOR for inputs of different lengths.
var ErrLengthMismatch = errors.New("inputs must have the same length")

// FixedXOR returns the XOR of two equal-length byte arrays.
func FixedXOR(s1, s2 []byte) ([]byte, error) {
	if len(s1) != len(s2) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d and %d bytes", len(s1), len(s2))
	}
	result := make([]byte, len(s1))
	for i := range s1 {
		result[i] = s1[i] ^ s2[i]
	}
	return result, nil
}

// DecryptAes128Ecb decrypts the input using the given key using AES-128 in
// ECB mode. (the standard library left out ECB mode because it's insecure.)
// The input must be a whole number of blocks; padding is left in place.
func DecryptAes128Ecb(input []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	size := block.BlockSize()
	if len(input)%size != 0 {
		return nil, errors.Errorf("input length %d is not a multiple of block size %d",
			len(input), size)
	}
	plaintext := make([]byte, len(input))
	for i := 0; i < len(input); i += size {
		block.Decrypt(plaintext[i:i+size], input[i:i+size])
	}
	return plaintext, nil
}
