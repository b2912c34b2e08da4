// JSON manifest interchange.
//
// A manifest is the declarative form of a store: the contig catalog,
// the cached sequences, and optional per-sequence checksums, as one
// JSON document. Tests and synthetic references use it to pin down a
// store without shipping FASTA. Checksums verify that bases survived
// the round trip intact; they are keyed by reference name and computed
// with the algorithm named in the manifest, defaulting to xxHash3.
package genome

import (
	"fmt"
	"io"
	"maps"
	"slices"

	json "github.com/goccy/go-json"
)

// Manifest is the JSON form of a store.
type Manifest struct {
	Algorithm int               `json:"algorithm,omitempty"` // 1=xxHash3, 2=FNV1a, 3=Blake2b
	Contigs   []Contig          `json:"contigs"`
	Sequences []Sequence        `json:"sequences"`
	Checksums map[string]string `json:"checksums,omitempty"`
}

// Store validates the manifest and builds a store from it. Structural
// validation happens first, exactly as in New; checksums, when
// present, are then verified against the cached sequences in name
// order. A checksum that names no sequence, or that does not match the
// recomputed digest, is ErrChecksum.
func (m Manifest) Store() (*Store, error) {
	s, err := New(m.Contigs, m.Sequences)
	if err != nil {
		return nil, err
	}

	alg := m.Algorithm
	if alg == 0 {
		alg = AlgXXHash3
	}
	for _, name := range slices.Sorted(maps.Keys(m.Checksums)) {
		seq, ok := s.seqs[name]
		if !ok {
			return nil, fmt.Errorf("%w: no sequence named %s", ErrChecksum, name)
		}
		want := m.Checksums[name]
		if got := Checksum(seq.Bases, alg); got != want {
			return nil, fmt.Errorf("%w: %s: computed %s, manifest has %s", ErrChecksum, name, got, want)
		}
	}
	return s, nil
}

// ReadManifest decodes a JSON manifest from r and builds its store.
// Undecodable input is ErrMalformedManifest; structural and checksum
// failures are reported as in Manifest.Store.
func ReadManifest(r io.Reader) (*Store, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedManifest, err)
	}
	return m.Store()
}

// WriteManifest encodes s as an indented JSON manifest with checksums
// computed by alg (0 means xxHash3). Sequences appear in catalog order
// first, then any sequence without a catalog entry, sorted by name, so
// output is deterministic.
func WriteManifest(w io.Writer, s *Store, alg int) error {
	if err := s.alive(); err != nil {
		return err
	}
	if alg == 0 {
		alg = AlgXXHash3
	}

	seqs := make([]Sequence, 0, len(s.seqs))
	cataloged := make(map[string]bool, len(s.seqs))
	for _, c := range s.contigs {
		if seq, ok := s.seqs[c.Name]; ok {
			seqs = append(seqs, seq)
			cataloged[c.Name] = true
		}
	}
	var rest []string
	for name := range s.seqs {
		if !cataloged[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		seqs = append(seqs, s.seqs[name])
	}

	sums := make(map[string]string, len(seqs))
	for _, seq := range seqs {
		sums[seq.Region.Name] = Checksum(seq.Bases, alg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Manifest{
		Algorithm: alg,
		Contigs:   s.Contigs(),
		Sequences: seqs,
		Checksums: sums,
	})
}
