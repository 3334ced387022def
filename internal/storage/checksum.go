package storage

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ChecksumMetadataKey is the object metadata key holding the snapshot digest.
const ChecksumMetadataKey = "blake2b-256"

// Checksum returns the hex-encoded BLAKE2b-256 digest of data.
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum compares data against a digest produced by Checksum.
func VerifyChecksum(data []byte, want string) error {
	got := Checksum(data)
	if subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksumMismatch, want, got)
	}
	return nil
}
