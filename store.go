// Core store type, construction-time validation, and lifecycle.
//
// A Store owns an ordered contig catalog and a name-to-sequence map,
// both fixed at construction. New validates every candidate sequence
// before the store comes into existence, so a caller can never observe
// a partially valid store. The only mutable state is the closed flag,
// an atomic bool that acts as the liveness token for queries and
// outstanding iterators.
package genome

import (
	"fmt"
	"sync/atomic"
)

// Reference provides read access to a reference genome: its contig
// catalog, bounded base queries by coordinate range, and full-record
// iteration. Store is the in-memory implementation; disk-backed
// readers can share the same boundary.
type Reference interface {
	Contigs() []Contig
	Contig(name string) (Contig, bool)
	HasContig(name string) bool
	Bases(r Range) (string, error)
	Iterate() *Records
	Close() error
}

// Store is an immutable in-memory mapping from contig name to cached
// sequence, queried by coordinate range. Build it with New, ReadFasta,
// or ReadManifest.
type Store struct {
	contigs []Contig
	seqs    map[string]Sequence
	closed  atomic.Bool
}

var _ Reference = (*Store)(nil)

// New validates the supplied catalog and sequences and builds a store.
// Every sequence must have a valid region, bases of exactly the region
// size, and a reference name distinct from every other sequence (at
// most one cached sequence per contig). Contigs are not cross-checked
// against sequences: a catalog entry with no cached sequence is
// allowed, as is a sequence whose name has no catalog entry; the
// latter is reachable through Bases but never through iteration, which
// walks the catalog.
func New(contigs []Contig, seqs []Sequence) (*Store, error) {
	m := make(map[string]Sequence, len(seqs))
	for _, seq := range seqs {
		if !seq.Region.IsValid() {
			return nil, fmt.Errorf("%w: Malformed region %s", ErrInvalidArgument, seq.Region)
		}
		if n := seq.Region.Len(); n != int64(len(seq.Bases)) {
			return nil, fmt.Errorf("%w: Region size = %d not equal to bases.length() %d",
				ErrInvalidArgument, n, len(seq.Bases))
		}
		if _, dup := m[seq.Region.Name]; dup {
			return nil, fmt.Errorf("%w: Each ReferenceSequence must be on a different chromosome but multiple ones were found on %s",
				ErrInvalidArgument, seq.Region.Name)
		}
		m[seq.Region.Name] = seq
	}

	return &Store{
		contigs: append([]Contig(nil), contigs...),
		seqs:    m,
	}, nil
}

// Contigs returns a copy of the contig catalog in its original order.
func (s *Store) Contigs() []Contig {
	return append([]Contig(nil), s.contigs...)
}

// Contig returns the catalog descriptor for name.
func (s *Store) Contig(name string) (Contig, bool) {
	for _, c := range s.contigs {
		if c.Name == name {
			return c, true
		}
	}
	return Contig{}, false
}

// HasContig reports whether name appears in the contig catalog.
func (s *Store) HasContig(name string) bool {
	_, ok := s.Contig(name)
	return ok
}

// Close tears the store down. Queries and outstanding iterators fail
// with ErrClosed afterwards; catalog accessors keep answering, since
// they return copied descriptors. Close is idempotent and never fails.
func (s *Store) Close() error {
	s.closed.Store(true)
	return nil
}

// alive returns ErrClosed once the store has been torn down.
func (s *Store) alive() error {
	if s.closed.Load() {
		return ErrClosed
	}
	return nil
}
