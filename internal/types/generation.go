// Package types provides type definitions for structured data used throughout the password-guesser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Depth controls how many generation tiers run.
type Depth int

const (
	// DepthFast runs the common-password and mutated-seed tiers.
	DepthFast Depth = 1
	// DepthMedium adds affixes, combinations and keyboard patterns.
	DepthMedium Depth = 2
	// DepthDeep adds mutations of combinations and the full numeric suffix catalog.
	DepthDeep Depth = 3
)

// MaxTier returns the last tier number that runs at this depth.
func (d Depth) MaxTier() int {
	switch d {
	case DepthFast:
		return 2
	case DepthMedium:
		return 5
	case DepthDeep:
		return 6
	default:
		return 0
	}
}

func (d Depth) String() string {
	switch d {
	case DepthFast:
		return "fast"
	case DepthMedium:
		return "medium"
	case DepthDeep:
		return "deep"
	default:
		return fmt.Sprintf("depth(%d)", int(d))
	}
}

// ParseDepth accepts either the numeric form (1-3) or the name (fast, medium, deep).
func ParseDepth(s string) (Depth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "fast":
		return DepthFast, nil
	case "2", "medium":
		return DepthMedium, nil
	case "3", "deep":
		return DepthDeep, nil
	}
	return 0, &InvalidConfigError{Message: fmt.Sprintf("unknown depth %q (use 1-3 or fast, medium, deep)", s)}
}

// GenerationConfig bounds a single candidate generation run.
type GenerationConfig struct {
	Depth     Depth `json:"depth" validate:"oneof=1 2 3"`
	MinLength int   `json:"min_length" validate:"gt=0"`
	MaxLength int   `json:"max_length" validate:"gt=0,gtefield=MinLength"`
}

// DefaultGenerationConfig mirrors the CLI defaults.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Depth:     DepthMedium,
		MinLength: 6,
		MaxLength: 32,
	}
}

// Validate rejects configurations that would make generation meaningless.
func (c GenerationConfig) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &InvalidConfigError{Message: "invalid generation config", Cause: err}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Depth":
			msgs = append(msgs, fmt.Sprintf("depth must be 1, 2 or 3, got %v", fe.Value()))
		case "MinLength":
			msgs = append(msgs, fmt.Sprintf("min_length must be positive, got %v", fe.Value()))
		case "MaxLength":
			if fe.Tag() == "gtefield" {
				msgs = append(msgs, fmt.Sprintf("min_length (%d) must not exceed max_length (%d)", c.MinLength, c.MaxLength))
			} else {
				msgs = append(msgs, fmt.Sprintf("max_length must be positive, got %v", fe.Value()))
			}
		default:
			msgs = append(msgs, fe.Error())
		}
	}
	return &InvalidConfigError{Message: strings.Join(msgs, "; ")}
}

// InvalidConfigError is returned before generation starts when the configuration is unusable.
type InvalidConfigError struct {
	Message string
	Cause   error
}

func (e *InvalidConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid config: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid config: %s", e.Message)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Cause
}
