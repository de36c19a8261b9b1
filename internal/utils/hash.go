package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// TokenDigest is the hex HMAC-SHA256 of token under key. Password reset
// tokens are stored and looked up only by their digest.
func TokenDigest(token, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
