package booking

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const referencePrefix = "TND"

// Timestamp and randomness sources, swappable in tests.
var (
	referenceNow  = time.Now
	referenceRand = func() int64 { return rand.Int63n(1 << 40) }
)

// NewReferenceCode builds a human-shareable booking code: prefix, base36
// millisecond timestamp, base36 random tail, uppercased. Unique with
// overwhelming probability but the store's id remains the primary key.
func NewReferenceCode() string {
	timestamp := strconv.FormatInt(referenceNow().UnixMilli(), 36)
	random := strconv.FormatInt(referenceRand(), 36)

	return strings.ToUpper(referencePrefix + timestamp + random)
}
