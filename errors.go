// Package genome provides an in-memory store of reference genome
// sequences answering bounded substring queries by coordinate range.
// Callers supply the contig catalog and cached sequence spans directly
// as in-memory records instead of loading a sequence file from
// storage; FASTA and JSON manifest loaders cover data that does start
// life in a file.
//
// A Store is validated and built once, then immutable. Bases answers
// range queries against the cached spans, Iterate walks (name, bases)
// records in contig catalog order, and Search locates motifs in
// chromosome coordinates. All reads are lock-free and safe for
// concurrent use; Close tears the store down and fails outstanding
// iterators.
package genome

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is
// to distinguish rejected input (ErrInvalidArgument), unknown contigs
// (ErrNotFound), use after teardown (ErrClosed), and damaged interchange
// data (ErrChecksum, ErrMalformedFasta, ErrMalformedManifest).
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("reference not found")
	ErrClosed            = errors.New("store is closed")
	ErrInvalidPattern    = errors.New("invalid regex pattern")
	ErrChecksum          = errors.New("checksum mismatch")
	ErrMalformedFasta    = errors.New("malformed fasta")
	ErrMalformedManifest = errors.New("malformed manifest")
)
