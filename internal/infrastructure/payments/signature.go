package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignHMACSHA256 returns the lowercase hex HMAC-SHA256 of message under key.
// This is the gateway's signature scheme for both the client-side verify
// ("{order_id}|{payment_id}" under the key secret) and webhooks (raw body
// under the webhook secret).
func SignHMACSHA256(key, message []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMACSHA256 checks signature against the expected HMAC in constant
// time.
func VerifyHMACSHA256(key, message []byte, signature string) bool {
	expected := SignHMACSHA256(key, message)
	return hmac.Equal([]byte(expected), []byte(signature))
}
