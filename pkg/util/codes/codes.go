// Package codes generates cryptographically random tokens used for password
// reset links and attachment storage keys.
package codes

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

var ErrInvalidLength = errors.New("invalid code length")

// DefaultTokenByteLength produces 32 hex chars.
const DefaultTokenByteLength = 16

// GenerateSecureToken creates a cryptographically secure hex token.
// byteLength specifies the number of random bytes (output is 2x in hex).
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateURLSafeToken creates a base64 URL-safe token without padding.
func GenerateURLSafeToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateResetToken creates the token embedded in password reset links.
func GenerateResetToken() (string, error) {
	return GenerateSecureToken(DefaultTokenByteLength)
}
