package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns prefix:digest, where digest covers the JSON encoding of
// parts. Every part therefore changes the key.
func hashKey(prefix string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Keys are built from strings and ResultKeyOpts only.
		panic(err)
	}
	return prefix + ":" + Hash(data)
}
