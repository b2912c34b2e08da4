// Checksum correctness tests.
//
// A checksum is a 16-character hex digest of a sequence's case-folded
// bases, carried in manifests so that a store rebuilt from interchange
// can prove its bases match the originals. Three properties matter:
//  1. Determinism: the same bases must always produce the same
//     digest, otherwise every manifest read would fail verification.
//  2. Case folding: soft-masked (lowercase) and unmasked bases are
//     the same sequence, so they must digest identically.
//  3. Algorithm independence: different algorithms must produce
//     different digests for the same bases, so a manifest verified
//     with the wrong algorithm fails loudly instead of passing by
//     accident.
package genome

import (
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// TestChecksumXXHash3 verifies that the default algorithm produces a
// valid 16-hex-char digest. xxHash3 is the fastest option and what
// WriteManifest uses when no algorithm is chosen.
func TestChecksumXXHash3(t *testing.T) {
	result := Checksum("ACGT", AlgXXHash3)
	if !hexPattern.MatchString(result) {
		t.Errorf("xxHash3 did not produce 16 hex chars: %q", result)
	}
}

// TestChecksumFNV1a verifies the FNV-1a alternative. This is a simpler
// hash with no external dependencies, offered for environments where
// xxHash3 or Blake2b are unavailable.
func TestChecksumFNV1a(t *testing.T) {
	result := Checksum("ACGT", AlgFNV1a)
	if !hexPattern.MatchString(result) {
		t.Errorf("FNV-1a did not produce 16 hex chars: %q", result)
	}
}

// TestChecksumBlake2b verifies the cryptographic alternative. Blake2b
// is slower but provides stronger collision resistance when manifests
// cross trust boundaries.
func TestChecksumBlake2b(t *testing.T) {
	result := Checksum("ACGT", AlgBlake2b)
	if !hexPattern.MatchString(result) {
		t.Errorf("Blake2b did not produce 16 hex chars: %q", result)
	}
}

// TestChecksumDeterministic verifies that digesting the same bases
// twice produces the same value. Without determinism, WriteManifest
// followed by ReadManifest would always fail verification.
func TestChecksumDeterministic(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		h1 := Checksum("ACGTACGT", alg)
		h2 := Checksum("ACGTACGT", alg)
		if h1 != h2 {
			t.Errorf("alg %d: same bases produced different digests: %q vs %q", alg, h1, h2)
		}
	}
}

// TestChecksumCaseFolded verifies that soft-masked bases digest the
// same as their uppercase form. Maskers rewrite repeats to lowercase
// without changing the sequence; if masking changed the digest, a
// masked FASTA and its unmasked original would look like different
// references.
func TestChecksumCaseFolded(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		upper := Checksum("ACGT", alg)
		lower := Checksum("acgt", alg)
		if upper != lower {
			t.Errorf("alg %d: case changed digest: %q vs %q", alg, upper, lower)
		}
	}
}

// TestChecksumDifferentBases verifies that different sequences produce
// different digests. If "ACGT" and "TGCA" collided, a manifest could
// verify bases that are not the bases it was written with.
func TestChecksumDifferentBases(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		h1 := Checksum("ACGT", alg)
		h2 := Checksum("TGCA", alg)
		if h1 == h2 {
			t.Errorf("alg %d: different bases produced same digest: %q", alg, h1)
		}
	}
}

// TestChecksumDifferentAlgorithms verifies that each algorithm
// produces a different digest for the same bases, so a manifest
// declaring one algorithm never passes verification under another.
func TestChecksumDifferentAlgorithms(t *testing.T) {
	h1 := Checksum("ACGT", AlgXXHash3)
	h2 := Checksum("ACGT", AlgFNV1a)
	h3 := Checksum("ACGT", AlgBlake2b)

	if h1 == h2 || h1 == h3 || h2 == h3 {
		t.Errorf("same bases with different algs produced same digest: xxh3=%q fnv=%q blake2b=%q", h1, h2, h3)
	}
}

// TestChecksumEmptyBases verifies that an empty sequence produces a
// valid digest rather than panicking. Empty cached sequences are legal
// (a region [n, n) has zero bases) and manifests checksum them like
// any other.
func TestChecksumEmptyBases(t *testing.T) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b} {
		result := Checksum("", alg)
		if !hexPattern.MatchString(result) {
			t.Errorf("alg %d: empty bases did not produce valid digest: %q", alg, result)
		}
	}
}

// TestChecksumInvalidAlgorithm verifies that an unrecognised algorithm
// ID returns an empty string. A made-up digest for unknown algorithms
// would be written into manifests that no valid algorithm could ever
// verify.
func TestChecksumInvalidAlgorithm(t *testing.T) {
	result := Checksum("ACGT", 99)
	if result != "" {
		t.Errorf("invalid alg should return empty string, got: %q", result)
	}
}

// TestChecksumAlgorithmConstants guards the numeric values written
// into manifests. If a constant changed (e.g. AlgFNV1a became 3),
// existing manifests would verify with the wrong hash function and
// every load would fail with a checksum mismatch.
func TestChecksumAlgorithmConstants(t *testing.T) {
	if AlgXXHash3 != 1 {
		t.Errorf("AlgXXHash3 = %d, want 1", AlgXXHash3)
	}
	if AlgFNV1a != 2 {
		t.Errorf("AlgFNV1a = %d, want 2", AlgFNV1a)
	}
	if AlgBlake2b != 3 {
		t.Errorf("AlgBlake2b = %d, want 3", AlgBlake2b)
	}
}
