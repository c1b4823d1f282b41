package folio

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// HashSource computes the xxHash of raw source bytes and returns it as
// a hex string. Parsers record it on the Document so a persisted
// artifact can be traced back to the exact source text it came from.
func HashSource(b []byte) string {
	h := xxhash.Sum64(b)
	out := make([]byte, 8)
	out[0] = byte(h >> 56)
	out[1] = byte(h >> 48)
	out[2] = byte(h >> 40)
	out[3] = byte(h >> 32)
	out[4] = byte(h >> 24)
	out[5] = byte(h >> 16)
	out[6] = byte(h >> 8)
	out[7] = byte(h)
	return hex.EncodeToString(out)
}
