package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const saltSize = 32

type saltGenerator struct{}

// NewSaltGenerator creates a SaltGenerator producing 32 random bytes encoded
// as unpadded base64url.
func NewSaltGenerator() SaltGenerator {
	return &saltGenerator{}
}

func (g *saltGenerator) Generate() (string, error) {
	buf := make([]byte, saltSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
