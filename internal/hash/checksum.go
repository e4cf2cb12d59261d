package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ChecksumReader computes the xxHash64 of everything read from r.
func ChecksumReader(r io.Reader) (uint64, int64, error) {
	d := xxhash.New()
	n, err := io.Copy(d, r)
	if err != nil {
		return 0, n, err
	}

	return d.Sum64(), n, nil
}

// Digest is a streaming xxHash64 state.
type Digest = xxhash.Digest

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return xxhash.New()
}
