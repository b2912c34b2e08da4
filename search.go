// Motif search over cached sequence bases.
//
// Search walks the contig catalog in order and scans each cached
// sequence for a pattern, yielding every hit as a Range in chromosome
// coordinates. Literal patterns (no regex metacharacters) take a fast
// path: strings.Index over the raw bases, avoiding regex overhead on
// the common case of a fixed motif. Patterns with metacharacters
// compile with regexp and are matched per sequence.
//
// Matching is case-insensitive unless CaseSensitive is set, because
// reference bases mix case: soft-masked repeats are conventionally
// lowercase, and a motif query almost never cares about masking.
//
// Case-insensitive literal search uses strings.ToUpper on both needle
// and bases. This allocates a copy of the cached sequence per contig.
// A zero-alloc alternative (a sliding strings.EqualFold window) would
// trade the copy for O(n*m) comparisons per contig. We keep ToUpper
// for now because the copy is transient and the regex path scans the
// same bases anyway. Revisit if profiling shows GC pressure from
// search over chromosome-scale sequences.
package genome

import (
	"iter"
	"regexp"
	"strings"
)

// SearchOptions configures Search behaviour. Callers control result
// count by breaking out of the range loop; no Limit field is needed.
type SearchOptions struct {
	CaseSensitive bool
}

// Search matches a pattern against the cached bases of every contig in
// the catalog, in catalog order; contigs with no cached sequence are
// skipped. Each hit is yielded as a Range in chromosome coordinates
// (the cached region's start plus the match offset). Hits within a
// contig are non-overlapping and ascend by position. The empty pattern
// and patterns that fail to compile yield ErrInvalidPattern; a closed
// store yields ErrClosed.
func (s *Store) Search(pattern string, opts SearchOptions) iter.Seq2[Range, error] {
	return func(yield func(Range, error) bool) {
		if err := s.alive(); err != nil {
			yield(Range{}, err)
			return
		}
		if pattern == "" {
			yield(Range{}, ErrInvalidPattern)
			return
		}

		var find func(bases string) [][2]int64

		if regexp.QuoteMeta(pattern) == pattern {
			needle := pattern
			if !opts.CaseSensitive {
				needle = strings.ToUpper(needle)
			}
			find = func(bases string) [][2]int64 {
				if !opts.CaseSensitive {
					bases = strings.ToUpper(bases)
				}
				var hits [][2]int64
				for off := 0; ; {
					i := strings.Index(bases[off:], needle)
					if i < 0 {
						return hits
					}
					lo := off + i
					hi := lo + len(needle)
					hits = append(hits, [2]int64{int64(lo), int64(hi)})
					off = hi
				}
			}
		} else {
			if !opts.CaseSensitive {
				pattern = "(?i)" + pattern
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				yield(Range{}, ErrInvalidPattern)
				return
			}
			find = func(bases string) [][2]int64 {
				var hits [][2]int64
				for _, loc := range re.FindAllStringIndex(bases, -1) {
					if loc[0] == loc[1] {
						continue
					}
					hits = append(hits, [2]int64{int64(loc[0]), int64(loc[1])})
				}
				return hits
			}
		}

		for _, c := range s.contigs {
			seq, ok := s.seqs[c.Name]
			if !ok {
				continue
			}
			for _, hit := range find(seq.Bases) {
				r := Range{
					Name:  c.Name,
					Start: seq.Region.Start + hit[0],
					End:   seq.Region.Start + hit[1],
				}
				if !yield(r, nil) {
					return
				}
			}
		}
	}
}
