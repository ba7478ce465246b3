package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateCode returns a random hex token of byteLen bytes, used for account
// activation and password reset links.
func GenerateCode(byteLen int) (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func GenerateOrderNumber() string {
	return "ORD-" + uuid.NewString()
}
