package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
	MinLength  int
}

// NewPasswordConfig reads BCRYPT_COST (default 12), PASSWORD_MIN_LENGTH
// (default 8) and the optional PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := envInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	minLen, err := envInt("PASSWORD_MIN_LENGTH", 8)
	if err != nil {
		return nil, err
	}

	cfg := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
		MinLength:  minLen,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-14)", c.BcryptCost, bcrypt.MinCost)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("PASSWORD_MIN_LENGTH must be positive, got: %d", c.MinLength)
	}
	if len(c.Pepper) >= maxPasswordBytes-c.MinLength {
		return fmt.Errorf("PASSWORD_PEPPER is too long")
	}
	return nil
}

// ErrWeakPassword is wrapped by CheckPassword failures.
var ErrWeakPassword = errors.New("password does not meet requirements")

// CheckPassword rejects passwords that are too short, or too long to hash
// once the pepper is appended.
func (c *PasswordConfig) CheckPassword(pw string) error {
	if len(pw) < c.MinLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, c.MinLength)
	}
	if len(pw)+len(c.Pepper) > maxPasswordBytes {
		return fmt.Errorf("%w: must be at most %d bytes", ErrWeakPassword, maxPasswordBytes-len(c.Pepper))
	}
	return nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}
