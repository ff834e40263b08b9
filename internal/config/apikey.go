// Package config provides operator API key configuration and hashing.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyConfig holds the bcrypt-hashed operator API key that token
// issuance verifies against. The plaintext key is never stored.
type APIKeyConfig struct {
	Hash       string
	BcryptCost int
}

// NewAPIKeyConfig creates an API key configuration from environment
// variables. It reads either API_KEY_HASH (a precomputed bcrypt hash)
// or API_KEY (plaintext, hashed at startup), plus BCRYPT_COST
// (default: 12).
func NewAPIKeyConfig() (*APIKeyConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	config := &APIKeyConfig{BcryptCost: cost}

	if hash := os.Getenv("API_KEY_HASH"); hash != "" {
		config.Hash = hash
		return config, nil
	}

	key := os.Getenv("API_KEY")
	if key == "" {
		return nil, fmt.Errorf("either API_KEY_HASH or API_KEY must be set")
	}
	hash, err := config.HashKey(key)
	if err != nil {
		return nil, err
	}
	config.Hash = hash
	return config, nil
}

// HashKey hashes an API key with bcrypt at the configured cost.
func (c *APIKeyConfig) HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hash), nil
}

// VerifyKey verifies a presented API key against the stored hash.
func (c *APIKeyConfig) VerifyKey(key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(key)) == nil
}
