package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// formattedID builds a human-readable identifier like TXN-20260115-3FA9C2B1.
// The 8-hex suffix comes from crypto/rand, so collisions within a day are
// vanishingly unlikely and the conditional create catches them anyway.
func formattedID(prefix string, now time.Time) string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), strings.ToUpper(hex.EncodeToString(b[:])))
}

// newQRSecret returns a 64-char hex secret. The first 32 characters double as
// the upload token handed out by QR verification.
func newQRSecret() string {
	var b [32]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// qrData assembles the payload printed on the site QR code.
func qrData(kind, projectID, entityID, secret string) string {
	return fmt.Sprintf("%s:%s:%s:%s", kind, projectID, entityID, uploadTokenFromSecret(secret))
}

func uploadTokenFromSecret(secret string) string {
	if len(secret) < 32 {
		return secret
	}
	return secret[:32]
}
