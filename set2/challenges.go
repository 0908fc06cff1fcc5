package set2

import (
	"math/rand"

	"github.com/pkg/errors"

	"matasano-xor-cryptanalysis/set1"
)

// Challenge9 pads the whole input to a multiple of blockSize with PKCS#7.
func Challenge9(env set1.Env, blockSize int) error {
	buf, err := set1.ReadAll(env.In)
	if err != nil {
		return err
	}
	env.Printf("Got %d bytes of input: [%s]", len(buf), buf)
	padded, err := Pkcs7Pad(buf, blockSize)
	if err != nil {
		return err
	}
	env.Printf("Padded to %d bytes: %q", len(padded), padded)
	_, err = env.Out.Write(padded)
	return err
}

// Challenge10 decrypts Base64 input encrypted with AES-128 in CBC mode.
func Challenge10(env set1.Env, key, iv []byte) error {
	buf, err := set1.ReadBase64(env.In)
	if err != nil {
		return err
	}
	pt, err := DecryptAes128Cbc(buf, key, iv)
	if err != nil {
		return err
	}
	_, err = env.Out.Write(pt)
	return err
}

// Challenge11 runs the ECB/CBC detection oracle count times with the given
// seed and fails on the first wrong guess.
func Challenge11(env set1.Env, count int, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	encrypt := func(input []byte) ([]byte, string, error) {
		return EncryptionOracle(input, r)
	}
	var ecb int
	for i := 0; i < count; i++ {
		detectedMode, actualMode, err := DetectMode(encrypt)
		if err != nil {
			return err
		}
		if detectedMode != actualMode {
			return errors.Errorf("trial %d: detected mode %s, actual %s",
				i, detectedMode, actualMode)
		}
		if detectedMode == ModeECB {
			ecb++
		}
	}
	env.Printf("Detected mode %d times (%d ECB, %d CBC)", count, ecb, count-ecb)
	return nil
}
