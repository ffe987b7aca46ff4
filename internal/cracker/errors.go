// Package cracker tests candidate streams against target hashes with a fixed pool of workers.
package cracker

import (
	"fmt"

	"github.com/jonathan/password-guesser/internal/types"
)

// MalformedHashError reports a target whose hash text cannot be parsed for its algorithm.
// Such targets are reported as types.OutcomeMalformed and never reach the workers.
type MalformedHashError struct {
	Hash      string
	Algorithm types.Algorithm
	Message   string
	Cause     error
}

func (e *MalformedHashError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed %s hash %q: %s: %v", e.Algorithm.Display(), e.Hash, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed %s hash %q: %s", e.Algorithm.Display(), e.Hash, e.Message)
}

func (e *MalformedHashError) Unwrap() error {
	return e.Cause
}
