package analysis

import "github.com/pkg/errors"

var (
	// ErrLengthMismatch is returned when two buffers that must be compared
	// position by position have different lengths.
	ErrLengthMismatch = errors.New("buffers have different lengths")

	// ErrNoViableKey is returned when no single-byte key decrypts a buffer
	// to something printable.
	ErrNoViableKey = errors.New("no key byte yields printable output")

	// ErrEmptyKey is returned by the repeating XOR cipher for a zero-length
	// key.
	ErrEmptyKey = errors.New("key must not be empty")

	// ErrInputTooShort is returned when the ciphertext can't hold four
	// chunks of even the smallest key size.
	ErrInputTooShort = errors.New("input too short to estimate key size")

	// ErrInvalidCount is returned when fewer than one key size candidate
	// is requested.
	ErrInvalidCount = errors.New("candidate count must be positive")

	// ErrInvalidKeySize is returned for a key size of zero or less.
	ErrInvalidKeySize = errors.New("key size must be positive")

	// ErrInvalidBlockSize is returned for a block size of zero or less.
	ErrInvalidBlockSize = errors.New("block size must be positive")
)
