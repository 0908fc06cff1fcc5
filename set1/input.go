package set1

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"io/ioutil"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// maxLine bounds a single line of hex input.
const maxLine = 1 << 20

// Env is where a challenge reads its input, writes its results and logs
// diagnostics.
type Env struct {
	In  io.Reader
	Out io.Writer
	// Log receives diagnostics; nil discards them.
	Log *log.Logger
	// Verbose enables the detailed diagnostics.
	Verbose bool
}

// Printf logs a diagnostic.
func (e Env) Printf(format string, v ...interface{}) {
	if e.Log != nil {
		e.Log.Printf(format, v...)
	}
}

// Verbosef logs a diagnostic only in verbose mode.
func (e Env) Verbosef(format string, v ...interface{}) {
	if e.Verbose {
		e.Printf(format, v...)
	}
}

// ReadAll reads the whole input.
func ReadAll(in io.Reader) ([]byte, error) {
	return ioutil.ReadAll(in)
}

// ReadHex reads hex-encoded input, ignoring line breaks and surrounding
// whitespace, and returns the decoded bytes.
func ReadHex(in io.Reader) ([]byte, error) {
	lines, err := ReadHexLines(in)
	if err != nil {
		return nil, err
	}
	return bytes.Join(lines, nil), nil
}

// ReadHexLines decodes every non-empty line of hex-encoded input.
func ReadHexLines(in io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines [][]byte
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		b, err := hex.DecodeString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		lines = append(lines, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadBase64 reads standard Base64 input, ignoring line breaks.
func ReadBase64(in io.Reader) ([]byte, error) {
	buf, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, err
	}
	buf = bytes.Join(bytes.Fields(buf), nil)
	out := make([]byte, base64.StdEncoding.DecodedLen(len(buf)))
	n, err := base64.StdEncoding.Decode(out, buf)
	if err != nil {
		return nil, errors.Wrap(err, "bad base64 input")
	}
	return out[:n], nil
}
