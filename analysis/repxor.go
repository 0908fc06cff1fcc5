package analysis

import "crypto/cipher"

// RepeatingXOR encrypts or decrypts buf by XORing each byte with the
// corresponding byte of key, repeating the key as needed.
func RepeatingXOR(buf, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(buf))
	for i, c := range buf {
		out[i] = c ^ key[i%len(key)]
	}
	return out, nil
}

// xorCipher is a repeating XOR stream cipher.
type xorCipher struct {
	key []byte
	pos int
}

// NewXORCipher returns a stream that applies repeating XOR with key. The key
// position carries over between calls to XORKeyStream.
func NewXORCipher(key []byte) (cipher.Stream, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &xorCipher{key: append([]byte(nil), key...)}, nil
}

func (x *xorCipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("analysis: output smaller than input")
	}
	for i := range src {
		dst[i] = src[i] ^ x.key[x.pos]
		x.pos++
		if x.pos == len(x.key) {
			x.pos = 0
		}
	}
}
