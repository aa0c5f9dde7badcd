package domain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies the part of a configuration that determines histogram counts:
// the area, the dimensions and the ordered layer thresholds.
// Two fingerprints are equal exactly when those inputs are equal.
type Fingerprint struct {
	key string
}

// NewFingerprint derives the fingerprint of the given histogram inputs.
func NewFingerprint(area Area, dims Dimensions, thresholds []int) Fingerprint {
	buf := make([]byte, 0, 8*(4+2+1+len(thresholds)))
	for _, v := range [...]float64{area.X.Min, area.X.Max, area.Y.Min, area.Y.Max} {
		if v == 0 {
			v = 0 // fold -0 into +0
		}
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(dims.X))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(dims.Y))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(thresholds)))
	for _, t := range thresholds {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t))
	}
	return Fingerprint{key: string(buf)}
}

// Equal reports whether both fingerprints describe the same histogram inputs.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.key == other.key
}

// Sum64 returns the xxhash digest of the fingerprint.
func (f Fingerprint) Sum64() uint64 {
	return xxhash.Sum64String(f.key)
}

// String returns the digest as a fixed-width hex string.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", f.Sum64())
}
