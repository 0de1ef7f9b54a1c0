package exportsvc

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// digestHex returns the hex SHA-256 of data.
func digestHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// signHex returns the hex HMAC-SHA256 of data under key.
func signHex(key, data []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
