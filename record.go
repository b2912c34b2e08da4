// Record types for reference data.
//
// Four value types describe a reference genome: Range (a half-open
// coordinate interval on a named contig), Contig (a catalog descriptor
// for one chromosome), Sequence (the cached bases covering a region),
// and Record (the name/bases pair yielded by iteration). All are plain
// immutable values; the JSON tags carry the conventional wire names
// used by genomics record formats.
package genome

import "fmt"

// Range is a half-open, 0-indexed coordinate interval [Start, End) on
// the contig called Name.
type Range struct {
	Name  string `json:"reference_name"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
}

// String renders the range in name:start-end form, e.g. "chr1:0-4".
func (r Range) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Name, r.Start, r.End)
}

// IsValid reports whether the range is a sane interval: a non-empty
// contig name and 0 <= Start <= End. The empty interval [n, n) is
// valid.
func (r Range) IsValid() bool {
	return r.Name != "" && r.Start >= 0 && r.Start <= r.End
}

// Len returns the number of bases the range spans.
func (r Range) Len() int64 {
	return r.End - r.Start
}

// Contains reports whether q lies fully within r on the same contig.
func (r Range) Contains(q Range) bool {
	return r.Name == q.Name && q.Start >= r.Start && q.End <= r.End
}

// Contig describes one chromosome or scaffold of the reference: its
// name and its full length. The length covers the entire chromosome
// even when only a subset of its bases is cached.
type Contig struct {
	Name   string `json:"name"`
	Length int64  `json:"length"`
}

// Sequence is a cached span of reference bases: the exact characters
// covering Region. A sequence is well formed when its region is valid
// and the region size equals len(Bases).
type Sequence struct {
	Region Range  `json:"region"`
	Bases  string `json:"bases"`
}

// Record is one item of a full scan: a contig name and the complete
// cached bases for it.
type Record struct {
	Name  string
	Bases string
}
