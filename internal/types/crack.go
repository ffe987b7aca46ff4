package types

import (
	"fmt"
	"strings"
)

// Algorithm identifies how a target hash was produced.
type Algorithm string

const (
	AlgorithmMD5    Algorithm = "md5"
	AlgorithmSHA1   Algorithm = "sha1"
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
	AlgorithmBcrypt Algorithm = "bcrypt"
	AlgorithmNTLM   Algorithm = "ntlm"
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{
	AlgorithmMD5,
	AlgorithmSHA1,
	AlgorithmSHA256,
	AlgorithmSHA512,
	AlgorithmBcrypt,
	AlgorithmNTLM,
}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range Algorithms {
		if a == name {
			return a, nil
		}
	}
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = string(a)
	}
	return "", fmt.Errorf("unknown algorithm: %s (supported: %s)", s, strings.Join(names, ", "))
}

// DigestSize is the raw digest length in bytes, or 0 for algorithms that are not a plain digest.
func (a Algorithm) DigestSize() int {
	switch a {
	case AlgorithmMD5, AlgorithmNTLM:
		return 16
	case AlgorithmSHA1:
		return 20
	case AlgorithmSHA256:
		return 32
	case AlgorithmSHA512:
		return 64
	default:
		return 0
	}
}

// Display returns the conventional upper-case name.
func (a Algorithm) Display() string {
	if a == AlgorithmBcrypt {
		return "bcrypt"
	}
	return strings.ToUpper(string(a))
}

// CrackTarget is one hash to recover.
type CrackTarget struct {
	Hash      string    `json:"hash"`
	Algorithm Algorithm `json:"algorithm"`
}

func (t CrackTarget) String() string {
	return fmt.Sprintf("%s (%s)", t.Hash, t.Algorithm.Display())
}

// Outcome is the terminal state of a CrackTarget.
type Outcome string

const (
	OutcomeFound     Outcome = "found"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeMalformed Outcome = "malformed"
)

// CrackResult is the immutable outcome for a single target.
type CrackResult struct {
	Target    CrackTarget `json:"target"`
	Outcome   Outcome     `json:"outcome"`
	Candidate string      `json:"candidate,omitempty"`
	// AttemptsTried is the 1-based stream position of the match for found targets,
	// and the number of candidates compared otherwise.
	AttemptsTried int64 `json:"attempts_tried"`
	// FromPotfile marks results resolved from previously stored cracks.
	FromPotfile bool  `json:"from_potfile,omitempty"`
	Err         error `json:"-"`
}

// Found reports whether the target was cracked.
func (r CrackResult) Found() bool {
	return r.Outcome == OutcomeFound
}

func (r CrackResult) String() string {
	switch r.Outcome {
	case OutcomeFound:
		if r.FromPotfile {
			return fmt.Sprintf("%s: found: %s (potfile)", r.Target, r.Candidate)
		}
		return fmt.Sprintf("%s: found: %s (%d attempts)", r.Target, r.Candidate, r.AttemptsTried)
	case OutcomeMalformed:
		return fmt.Sprintf("%s: malformed: %v", r.Target, r.Err)
	default:
		return fmt.Sprintf("%s: not found (%d attempts)", r.Target, r.AttemptsTried)
	}
}
