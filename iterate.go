// Catalog-order iteration over cached records.
package genome

// Records iterates over the store's cached sequences in contig catalog
// order. Obtain one with Iterate and drain it with Next. A Records is
// not safe for concurrent use; take one per goroutine instead.
type Records struct {
	s   *Store
	pos int
}

// Iterate returns an iterator positioned before the first contig.
func (s *Store) Iterate() *Records {
	return &Records{s: s}
}

// Next returns the next record in catalog order. It stops, returning
// false, at the end of the catalog or at the first contig with no
// cached sequence; contigs after such a gap are unreachable by
// iteration even when their sequences are cached. After the store is
// closed Next fails with ErrClosed.
func (it *Records) Next() (Record, bool, error) {
	if err := it.s.alive(); err != nil {
		return Record{}, false, err
	}
	if it.pos >= len(it.s.contigs) {
		return Record{}, false, nil
	}
	seq, ok := it.s.seqs[it.s.contigs[it.pos].Name]
	if !ok {
		it.pos = len(it.s.contigs)
		return Record{}, false, nil
	}
	it.pos++
	return Record{Name: seq.Region.Name, Bases: seq.Bases}, true, nil
}
