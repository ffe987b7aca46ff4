package db

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/password-guesser/internal/types"
)

// Session status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusFailed    = "failed"
)

// Session is one crack-hash invocation.
type Session struct {
	ID             uuid.UUID   `json:"id"`
	Depth          types.Depth `json:"depth"`
	TargetCount    int         `json:"target_count"`
	CandidateCount int64       `json:"candidate_count"`
	FoundCount     int         `json:"found_count"`
	Status         string      `json:"status"`
	StartedAt      time.Time   `json:"started_at"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// CrackedHash is a potfile entry.
type CrackedHash struct {
	Algorithm types.Algorithm `json:"algorithm"`
	Hash      string          `json:"hash"`
	Plaintext string          `json:"plaintext"`
	Attempts  int64           `json:"attempts"`
	SessionID *uuid.UUID      `json:"session_id,omitempty"`
	CrackedAt time.Time       `json:"cracked_at"`
}

// NormalizeHash is the potfile key of a target: hex digests are compared case-insensitively,
// bcrypt strings are kept verbatim.
func NormalizeHash(t types.CrackTarget) string {
	h := strings.TrimSpace(t.Hash)
	if t.Algorithm == types.AlgorithmBcrypt {
		return h
	}
	return strings.ToLower(h)
}
