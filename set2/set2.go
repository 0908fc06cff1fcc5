package set2

import (
	"crypto/aes"
	"math/rand"

	"github.com/pkg/errors"

	"matasano-xor-cryptanalysis/analysis"
	"matasano-xor-cryptanalysis/set1"
)

// all-0 initialization vector for AES-128 in CBC mode
var ZeroIV = make([]byte, aes.BlockSize)

// ErrBadPadding is returned for input that isn't valid PKCS#7.
var ErrBadPadding = errors.New("malformed PKCS#7 padding")

// Pkcs7Pad returns the input with padding appended up to blockSize bytes
// according to PKCS#7. see https://tools.ietf.org/html/rfc5652#section-6.3
func Pkcs7Pad(input []byte, blockSize int) ([]byte, error) {
	if blockSize <= 0 {
		return nil, errors.New("block size must be positive")
	}
	// if the input is a whole number of blocks, it gets padded with an
	// extra block so there are always some padding bytes.
	paddingBytes := blockSize - len(input)%blockSize
	if paddingBytes > 0xff {
		return nil, errors.Errorf("padding bytes can't exceed 255, got %d", paddingBytes)
	}
	output := make([]byte, len(input), len(input)+paddingBytes)
	copy(output, input)
	for i := 0; i < paddingBytes; i++ {
		output = append(output, byte(paddingBytes))
	}
	return output, nil
}

// Pkcs7Unpad returns a slice of the input with padding removed, assuming it
// was padded according to PKCS#7.
func Pkcs7Unpad(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, errors.Wrap(ErrBadPadding, "empty input")
	}
	lastByte := int(input[len(input)-1])
	if lastByte == 0 || lastByte > len(input) {
		return nil, errors.Wrapf(ErrBadPadding, "length %d with %d padding bytes",
			len(input), lastByte)
	}
	// make sure all the padding bytes match
	paddingStart := len(input) - lastByte
	for i := paddingStart; i < len(input)-1; i++ {
		if int(input[i]) != lastByte {
			return nil, errors.Wrapf(ErrBadPadding, "padding byte %d != %d",
				input[i], lastByte)
		}
	}
	return input[:paddingStart], nil
}

// EncryptAes128EcbWholeBlocks encrypts the input with the given key using
// AES-128 in ECB mode. No padding is used, so the input must be a whole
// number of blocks.
func EncryptAes128EcbWholeBlocks(input []byte, key []byte) ([]byte, error) {
	// NewCipher will complain here if the key is too short
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	size := block.BlockSize()
	if len(input)%size != 0 {
		return nil, errors.Errorf("input length %d is not a multiple of block size %d",
			len(input), size)
	}
	output := make([]byte, len(input))
	for i := 0; i < len(input); i += size {
		block.Encrypt(output[i:i+size], input[i:i+size])
	}
	return output, nil
}

// EncryptAes128Ecb encrypts the input using AES-128 in ECB mode with PKCS#7
// padding.
func EncryptAes128Ecb(input []byte, key []byte) ([]byte, error) {
	input, err := Pkcs7Pad(input, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return EncryptAes128EcbWholeBlocks(input, key)
}

// EncryptAes128Cbc encrypts the input using AES-128 in CBC mode, with
// the given key and initialization vector, using PKCS#7 padding.
func EncryptAes128Cbc(input []byte, key []byte, iv []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, errors.Errorf("IV length must be %d", aes.BlockSize)
	}
	input, err := Pkcs7Pad(input, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	output := make([]byte, 0, len(input))
	prevBlock := iv
	for i := 0; i < len(input); i += aes.BlockSize {
		// XOR with previous block before encrypting
		mixed, err := set1.FixedXOR(prevBlock, input[i:i+aes.BlockSize])
		if err != nil {
			return nil, err
		}
		encryptedBlock, err := EncryptAes128EcbWholeBlocks(mixed, key)
		if err != nil {
			return nil, err
		}
		output = append(output, encryptedBlock...)
		prevBlock = encryptedBlock
	}
	return output, nil
}

// DecryptAes128Cbc decrypts the input using AES-128 in CBC mode, with
// the given key and initialization vector, assuming it was padded
// according to PKCS#7.
func DecryptAes128Cbc(input []byte, key []byte, iv []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, errors.Errorf("IV length must be %d", aes.BlockSize)
	}
	decrypted, err := set1.DecryptAes128Ecb(input, key)
	if err != nil {
		return nil, err
	}
	prevBlock := iv
	for i := 0; i < len(decrypted); i += aes.BlockSize {
		// XOR with previous block (or IV) after decrypting
		for j := 0; j < aes.BlockSize; j++ {
			decrypted[i+j] ^= prevBlock[j]
		}
		prevBlock = input[i : i+aes.BlockSize]
	}
	return Pkcs7Unpad(decrypted)
}

// Block cipher modes chosen by the encryption oracle.
const (
	ModeECB = "ECB"
	ModeCBC = "CBC"
)

// encryptRandom encrypts the input, with 5-10 random bytes added
// before and after it, under a random key. If mode is ModeECB, ECB mode
// is used; otherwise CBC mode is used with a random initialization vector.
func encryptRandom(input []byte, mode string, r *rand.Rand) ([]byte, error) {
	// start with 5-10 random bytes, then append the input, then 5-10
	// more random bytes
	s := make([]byte, 5+r.Intn(6))
	r.Read(s)
	s = append(s, input...)
	end := make([]byte, 5+r.Intn(6))
	r.Read(end)
	s = append(s, end...)

	key := make([]byte, 16)
	r.Read(key)

	if mode == ModeECB {
		return EncryptAes128Ecb(s, key)
	}

	iv := make([]byte, 16)
	r.Read(iv)
	return EncryptAes128Cbc(s, key, iv)
}

// EncryptionOracle encrypts the input, with 5-10 random bytes added before and
// after it, under a random key. It randomly chooses either ECB mode or CBC mode
// with a random initialization vector, and returns the mode it used (for
// checking detection of the mode).
func EncryptionOracle(input []byte, r *rand.Rand) ([]byte, string, error) {
	mode := ModeCBC
	if r.Intn(2) == 0 {
		mode = ModeECB
	}
	ct, err := encryptRandom(input, mode, r)
	return ct, mode, err
}

// DetectMode determines whether encrypt uses ECB mode or CBC mode. Returns
// the detected mode and the actual mode reported by encrypt.
func DetectMode(encrypt func([]byte) ([]byte, string, error)) (detectedMode string, actualMode string, err error) {
	// the random prefix only touches the 1st block and the suffix plus padding
	// the last 2, so 5 blocks of identical input always leave at least 2
	// identical full blocks in the middle under ECB.
	input := make([]byte, 5*aes.BlockSize)
	ciphertext, actualMode, err := encrypt(input)
	if err != nil {
		return "", "", err
	}
	report, err := analysis.DetectECB(ciphertext, aes.BlockSize)
	if err != nil {
		return "", "", err
	}
	if report.Detected() {
		return ModeECB, actualMode, nil
	}
	return ModeCBC, actualMode, nil
}
