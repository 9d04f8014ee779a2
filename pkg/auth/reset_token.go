package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// ResetTokenGenerator issues password reset tokens. Only the hash of a
// token is ever stored.
type ResetTokenGenerator interface {
	// Generate creates a new token and returns it with its hash.
	Generate() (token string, hash string, err error)
	// Hash returns the SHA-256 hash of a token.
	Hash(token string) string
	// CompareHashes securely compares two token hashes.
	CompareHashes(hash1, hash2 string) bool
}

type resetTokenGenerator struct{}

// NewResetTokenGenerator creates a new ResetTokenGenerator.
func NewResetTokenGenerator() ResetTokenGenerator {
	return &resetTokenGenerator{}
}

// Generate creates a 64-character hex token (32 random bytes).
func (g *resetTokenGenerator) Generate() (string, string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(bytes)
	return token, g.Hash(token), nil
}

// Hash returns the SHA-256 hash of the token as a hex string.
func (g *resetTokenGenerator) Hash(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// CompareHashes securely compares two token hashes using constant-time comparison.
func (g *resetTokenGenerator) CompareHashes(hash1, hash2 string) bool {
	return subtle.ConstantTimeCompare([]byte(hash1), []byte(hash2)) == 1
}
