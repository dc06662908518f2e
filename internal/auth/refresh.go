package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// refreshTokenBytes gives 256 bits of entropy; hex encoding makes 64 chars.
const refreshTokenBytes = 32

// MakeRefreshToken returns a fresh opaque token from the OS CSPRNG.
func MakeRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}
