// Bounded base queries by coordinate range.
package genome

import "fmt"

// Bases returns the bases covered by r, half-open and zero-based. The
// query must name a contig whose sequence is cached and must lie
// entirely inside that sequence's region. The returned string shares
// the cached sequence's backing array; strings being immutable, the
// caller cannot corrupt the store through it.
func (s *Store) Bases(r Range) (string, error) {
	if err := s.alive(); err != nil {
		return "", err
	}
	if !r.IsValid() {
		return "", fmt.Errorf("%w: Invalid interval: %s", ErrInvalidArgument, r)
	}
	seq, ok := s.seqs[r.Name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, r.Name)
	}
	if !seq.Region.Contains(r) {
		return "", fmt.Errorf("%w: Cannot query range=%s as this store only has bases in the interval=%s",
			ErrInvalidArgument, r, seq.Region)
	}
	off := r.Start - seq.Region.Start
	return seq.Bases[off : off+r.Len()], nil
}
