package domain

import (
	"fmt"
	"os"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// FindDuplicates returns one pair per target file whose content exactly
// matches a same-named file in the reference set.
//
// Candidates for a target are compared in reference index order and the first
// match wins; a target with no same-named reference candidate is skipped
// without any content read. Emitted pairs mirror targetFiles order. Any I/O
// error aborts the whole operation with no partial result.
func FindDuplicates(referenceFiles, targetFiles []m.Path) ([]m.DuplicatePair, error) {
	index, err := NewReferenceIndex(referenceFiles)
	if err != nil {
		return nil, err
	}

	var duplicates []m.DuplicatePair

	for _, target := range targetFiles {
		name, err := baseName(target)
		if err != nil {
			return nil, err
		}

		for _, candidate := range index.Candidates(name) {
			same, err := CompareFiles(target, candidate)
			if err != nil {
				return nil, err
			}

			if !same {
				continue
			}

			info, err := os.Stat(string(target))
			if err != nil {
				return nil, fmt.Errorf("stat %s: %w", target, err)
			}

			duplicates = append(duplicates, m.DuplicatePair{
				Target:    target,
				Reference: candidate,
				Size:      info.Size(),
			})

			break
		}
	}

	return duplicates, nil
}
