package identity

import (
	"crypto/md5"
	"encoding/hex"
)

// HashLength is the number of hex characters kept from the digest.
const HashLength = 10

// Hash returns the truncated hex md5 digest of key.
func Hash(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:HashLength]
}
