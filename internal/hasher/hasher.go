// Package hasher provides fast, non-cryptographic content identity for
// frames and source files.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// FrameHash fingerprints a raw RGBA frame buffer with xxHash64, returning
// 16 hex chars. Used to spot duplicate frames within a run; xxHash64 is
// collision-safe for practical frame counts.
func FrameHash(pix []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(pix))
	return hex.EncodeToString(b[:])
}

// FileHash computes the xxHash64 of a reader, streaming, returning 16 hex
// chars. Used for source-file identity in reports.
func FileHash(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h.Sum64())
	return hex.EncodeToString(b[:]), nil
}
