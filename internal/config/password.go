package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/password-guesser/internal/cracker"
	"github.com/jonathan/password-guesser/internal/types"
)

// DefaultBcryptCost is used by the hash command when neither --cost nor BCRYPT_COST is set.
const DefaultBcryptCost = 10

// HashConfig holds the settings for producing target hashes.
type HashConfig struct {
	BcryptCost int
}

// NewHashConfig creates a hash configuration from environment variables.
// It reads BCRYPT_COST (default: 10).
func NewHashConfig() (*HashConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = strconv.Itoa(DefaultBcryptCost)
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &HashConfig{BcryptCost: cost}
	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// WithCost returns a copy using cost when it is non-zero.
func (c *HashConfig) WithCost(cost int) (*HashConfig, error) {
	out := *c
	if cost != 0 {
		out.BcryptCost = cost
	}
	if err := out.normalize(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HashConfig) normalize() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// Hash renders plaintext as a target hash for algo.
func (c *HashConfig) Hash(algo types.Algorithm, plaintext string) (string, error) {
	return cracker.Hash(algo, plaintext, c.BcryptCost)
}
