package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// checksumLen is the number of hex digits kept by Checksum.
const checksumLen = 16

// Fingerprint returns the lowercase hex SHA256 digest of data.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Checksum returns a short, stable hex checksum of data. It is the leading
// 64 bits of Fingerprint and is used to disambiguate synthetic keys, not to
// compare content.
func Checksum(data []byte) string {
	return Fingerprint(data)[:checksumLen]
}
