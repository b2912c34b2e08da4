// Checksum algorithms for sequence identity.
//
// A checksum is a 16 hex character digest of a sequence's bases, used
// by manifests to verify that cached bases survived interchange
// intact. Three algorithms are supported, selectable via the manifest
// Algorithm field. Bases are folded to upper case before hashing so
// that soft-masking (lowercase runs) never changes a sequence's
// identity.
package genome

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Checksum algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// Checksum generates a 16 hex character digest of the case-folded
// bases using the specified algorithm. Unknown algorithms return "".
func Checksum(bases string, alg int) string {
	folded := strings.ToUpper(bases)
	switch alg {
	case AlgXXHash3:
		h := xxh3.HashString(folded)
		return fmt.Sprintf("%016x", h)
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write([]byte(folded))
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write([]byte(folded))
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}
