package usecase

import (
	"crypto/md5"
	"encoding/binary"
	"math/rand"
	"regexp"
)

// asinRegex matches the 10-character alphanumeric ASIN in a /dp/ URL segment
var asinRegex = regexp.MustCompile(`/dp/([A-Z0-9]{10})(?:/|$)`)

// ExtractASIN pulls the ASIN out of a product page URL, or returns ""
// when the URL has no /dp/ segment.
func ExtractASIN(pageURL string) string {
	m := asinRegex.FindStringSubmatch(pageURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// seedValue derives a 32-bit seed from a stable identifier. The identifier is
// the ASIN when one is present, otherwise the lowercased title, so the same
// product always seeds the same random stream.
func seedValue(identifier string) uint32 {
	sum := md5.Sum([]byte(identifier))
	// The full digest interpreted as a big-endian integer, reduced mod 2^32,
	// is just its last four bytes.
	return binary.BigEndian.Uint32(sum[12:16])
}

// newSeededRand returns the request-local random stream for an identifier.
// All draws for one estimate must come from a single stream so that identical
// input yields identical output.
func newSeededRand(identifier string) *rand.Rand {
	return rand.New(rand.NewSource(int64(seedValue(identifier))))
}

// uniform draws a value in [lo, hi) from the request stream.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
