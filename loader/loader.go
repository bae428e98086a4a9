// Package loader reads a Universal Machine program image — a stream
// of big-endian 32-bit words — from a file or stdin and decodes it
// into the word slice vm.VM.Boot expects.
package loader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cmoultrie/umvm/vm"
)

// ErrTruncatedImage is returned when the byte stream's length is not a
// multiple of 4: the architecture defines a program image as a whole
// number of 32-bit words, so a partial trailing word is a malformed
// image rather than something the loader can round off.
var ErrTruncatedImage = fmt.Errorf("program image length is not a multiple of 4 bytes")

// Load reads an entire program image from r and decodes it into
// big-endian 32-bit words, one per instruction slot.
func Load(r io.Reader) ([]uint32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read program image: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("loader: %w (got %d bytes)", ErrTruncatedImage, len(raw))
	}

	// Segment 0's length is a uint32 word count once it reaches the
	// VM, so reject an image so large that the conversion would
	// truncate rather than silently wrapping it at boot time.
	wordCount, err := vm.SafeIntToUint32(len(raw) / 4)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	words := make([]uint32, wordCount)
	reader := bytes.NewReader(raw)
	if err := binary.Read(reader, binary.BigEndian, words); err != nil {
		return nil, fmt.Errorf("loader: decode program image: %w", err)
	}
	return words, nil
}

// LoadFile reads and decodes a program image from the named file.
func LoadFile(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	return words, nil
}

// LoadStdin reads and decodes a program image from os.Stdin, the
// default source when no program path is given on the command line.
func LoadStdin() ([]uint32, error) {
	return Load(os.Stdin)
}
