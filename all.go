// Full record enumeration in a single pass.
package genome

import "iter"

// All yields every record reachable by iteration, in contig catalog
// order, with the same stop-at-gap behavior as Next. Callers consume
// results lazily via range and can break early to stop the walk. A
// closed store yields a single ErrClosed.
func (s *Store) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		it := s.Iterate()
		for {
			rec, ok, err := it.Next()
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !ok {
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}
