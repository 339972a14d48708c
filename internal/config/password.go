package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Bounds for BCRYPT_COST. Costs below 10 are too weak for stored
// credentials; costs above 14 make login latency unacceptable.
const (
	minBcryptCost = 10
	maxBcryptCost = 14
)

// PasswordConfig controls password hashing. Pepper, when set, is appended
// to every password before hashing so leaked hashes alone cannot be
// cracked offline.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string
}

// NewPasswordConfig reads hashing settings from the environment:
// BCRYPT_COST (default 12) and PASSWORD_PEPPER (optional).
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}
	if cost < minBcryptCost || cost > maxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cost, minBcryptCost, maxBcryptCost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// peppered appends the configured pepper to the password.
func (c *PasswordConfig) peppered(pw string) []byte {
	return []byte(pw + c.Pepper)
}

// HashPassword hashes a password with bcrypt at the configured cost.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(c.peppered(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), c.peppered(pw)) == nil
}
