package domain

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// compareBlockSize is the fixed block length used when streaming file
// contents. The trailing partial block is compared separately.
const compareBlockSize = 4096

// CompareFiles reports whether two files have byte-identical content.
//
// Sizes are checked first from metadata so files of different lengths are
// rejected without any content read. Equal-sized files are then streamed in
// compareBlockSize chunks through two reusable buffers; the first mismatching
// block settles the answer. No hashing is involved. Both descriptors are
// closed before returning, so at most two are open at any time.
func CompareFiles(pathA, pathB m.Path) (bool, error) {
	infoA, err := os.Stat(string(pathA))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", pathA, err)
	}

	infoB, err := os.Stat(string(pathB))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", pathB, err)
	}

	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fileA, err := os.Open(string(pathA))
	if err != nil {
		return false, fmt.Errorf("open %s: %w", pathA, err)
	}
	defer fileA.Close()

	fileB, err := os.Open(string(pathB))
	if err != nil {
		return false, fmt.Errorf("open %s: %w", pathB, err)
	}
	defer fileB.Close()

	bufA := make([]byte, compareBlockSize)
	bufB := make([]byte, compareBlockSize)

	remaining := infoA.Size()
	for remaining >= compareBlockSize {
		if _, err := io.ReadFull(fileA, bufA); err != nil {
			return false, fmt.Errorf("read %s: %w", pathA, err)
		}

		if _, err := io.ReadFull(fileB, bufB); err != nil {
			return false, fmt.Errorf("read %s: %w", pathB, err)
		}

		if !bytes.Equal(bufA, bufB) {
			return false, nil
		}

		remaining -= compareBlockSize
	}

	if remaining > 0 {
		tailA := bufA[:remaining]
		tailB := bufB[:remaining]

		if _, err := io.ReadFull(fileA, tailA); err != nil {
			return false, fmt.Errorf("read %s: %w", pathA, err)
		}

		if _, err := io.ReadFull(fileB, tailB); err != nil {
			return false, fmt.Errorf("read %s: %w", pathB, err)
		}

		if !bytes.Equal(tailA, tailB) {
			return false, nil
		}
	}

	slog.Debug("content match", "a", pathA, "b", pathB, "size", infoA.Size())

	return true, nil
}
