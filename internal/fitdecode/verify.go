package fitdecode

import (
	"bufio"
	"fmt"
	"os"

	"github.com/muktihari/fit/decoder"
)

// Verify checks the header and CRC of every FIT sequence in path without
// decoding messages. It returns the number of sequences found.
func Verify(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open fit file: %w", err)
	}
	defer file.Close()

	seq, err := decoder.New(bufio.NewReader(file)).CheckIntegrity()
	if err != nil {
		return seq, &DecodeError{Path: path, Err: err}
	}
	return seq, nil
}
