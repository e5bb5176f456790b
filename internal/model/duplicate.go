package model

import "time"

// DuplicatePair records a target file whose content exactly matches a file in
// the reference tree. Size is the shared byte length of both files, captured
// from the metadata the comparator already read.
type DuplicatePair struct {
	Target    Path  `yaml:"target"`
	Reference Path  `yaml:"reference"`
	Size      int64 `yaml:"size"`
}

// RunSummary aggregates the outcome of one dedup run.
type RunSummary struct {
	ReferenceRoot  Path
	TargetRoot     Path
	ReferenceFiles int
	TargetFiles    int
	Duplicates     []DuplicatePair
	DryRun         bool
}

// BytesReclaimable sums the sizes of all duplicate targets. On a live run this
// is the space actually freed.
func (s RunSummary) BytesReclaimable() int64 {
	var total int64
	for _, pair := range s.Duplicates {
		total += pair.Size
	}

	return total
}

// RunReport is the persisted form of a run, written by the report store when
// reporting is enabled.
type RunReport struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	Reference   Path            `yaml:"reference"`
	Target      Path            `yaml:"target"`
	DryRun      bool            `yaml:"dry_run"`
	Duplicates  []DuplicatePair `yaml:"duplicates"`
}
