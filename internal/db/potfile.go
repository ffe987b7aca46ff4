package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/password-guesser/internal/types"
)

// CreateSession records the start of a crack run and returns its ID
func (db *DB) CreateSession(ctx context.Context, depth types.Depth, targetCount int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO crack_sessions (id, depth, target_count, status)
		 VALUES ($1, $2, $3, $4)`,
		id, int(depth), targetCount, StatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// CompleteSession stores the final counters of a crack run
func (db *DB) CompleteSession(ctx context.Context, id uuid.UUID, candidates int64, found int, status string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE crack_sessions
		 SET candidate_count = $2, found_count = $3, status = $4, completed_at = NOW()
		 WHERE id = $1`,
		id, candidates, found, status,
	)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s not found", id)
	}
	return nil
}

// GetSession retrieves a session by ID, or nil if it does not exist
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	var s Session
	var depth int
	err := db.pool.QueryRow(ctx,
		`SELECT id, depth, target_count, candidate_count, found_count, status, started_at, completed_at
		 FROM crack_sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &depth, &s.TargetCount, &s.CandidateCount, &s.FoundCount, &s.Status, &s.StartedAt, &s.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	s.Depth = types.Depth(depth)
	return &s, nil
}

// SaveResult stores a found result. Results that are not found, or that came from the
// potfile itself, are ignored; a hash already present keeps its first plaintext.
func (db *DB) SaveResult(ctx context.Context, sessionID uuid.UUID, res types.CrackResult) error {
	if !res.Found() || res.FromPotfile {
		return nil
	}
	var session *uuid.UUID
	if sessionID != uuid.Nil {
		session = &sessionID
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO cracked_hashes (algorithm, hash, plaintext, attempts, session_id)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (algorithm, hash) DO NOTHING`,
		string(res.Target.Algorithm), NormalizeHash(res.Target), res.Candidate, res.AttemptsTried, session,
	)
	if err != nil {
		return fmt.Errorf("failed to save cracked hash: %w", err)
	}
	return nil
}

// LookupCracked returns the potfile entries for targets, keyed by target index.
func (db *DB) LookupCracked(ctx context.Context, targets []types.CrackTarget) (map[int]CrackedHash, error) {
	found := make(map[int]CrackedHash)
	if len(targets) == 0 {
		return found, nil
	}

	algos := make([]string, len(targets))
	hashes := make([]string, len(targets))
	for i, t := range targets {
		algos[i] = string(t.Algorithm)
		hashes[i] = NormalizeHash(t)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT algorithm, hash, plaintext, attempts, session_id, cracked_at
		 FROM cracked_hashes
		 WHERE (algorithm, hash) IN (SELECT * FROM unnest($1::text[], $2::text[]))`,
		algos, hashes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cracked hashes: %w", err)
	}
	defer rows.Close()

	byKey := make(map[string]CrackedHash)
	for rows.Next() {
		c, err := scanCracked(rows)
		if err != nil {
			return nil, err
		}
		byKey[string(c.Algorithm)+":"+c.Hash] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cracked hashes: %w", err)
	}

	for i := range targets {
		if c, ok := byKey[algos[i]+":"+hashes[i]]; ok {
			found[i] = c
		}
	}
	return found, nil
}

// ListCracked lists potfile entries, most recent first. A limit of zero lists everything.
func (db *DB) ListCracked(ctx context.Context, algo types.Algorithm, limit int) ([]CrackedHash, error) {
	query := `SELECT algorithm, hash, plaintext, attempts, session_id, cracked_at
		 FROM cracked_hashes
		 WHERE ($1::text = '' OR algorithm = $1::text)
		 ORDER BY cracked_at DESC, id DESC`
	args := []any{string(algo)}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cracked hashes: %w", err)
	}
	defer rows.Close()

	var out []CrackedHash
	for rows.Next() {
		c, err := scanCracked(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cracked hashes: %w", err)
	}
	return out, nil
}

// Result converts a potfile entry into a pre-resolved crack result for target.
func (c CrackedHash) Result(target types.CrackTarget) types.CrackResult {
	return types.CrackResult{
		Target:      target,
		Outcome:     types.OutcomeFound,
		Candidate:   c.Plaintext,
		FromPotfile: true,
	}
}

func scanCracked(rows pgx.Rows) (CrackedHash, error) {
	var c CrackedHash
	var algo string
	if err := rows.Scan(&algo, &c.Hash, &c.Plaintext, &c.Attempts, &c.SessionID, &c.CrackedAt); err != nil {
		return c, fmt.Errorf("failed to scan cracked hash: %w", err)
	}
	c.Algorithm = types.Algorithm(algo)
	return c, nil
}
