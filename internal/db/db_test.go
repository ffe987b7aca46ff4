package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/password-guesser/internal/types"
)

func TestNormalizeHash(t *testing.T) {
	tests := []struct {
		target types.CrackTarget
		want   string
	}{
		{types.CrackTarget{Hash: " 5F4DCC3B5AA765D61D8327DEB882CF99\n", Algorithm: types.AlgorithmMD5}, "5f4dcc3b5aa765d61d8327deb882cf99"},
		{types.CrackTarget{Hash: "8846F7EAEE8FB117AD06BDD830B7586C", Algorithm: types.AlgorithmNTLM}, "8846f7eaee8fb117ad06bdd830b7586c"},
		{types.CrackTarget{Hash: "$2a$04$AbCdEfGhIjKlMnOpQrStUu", Algorithm: types.AlgorithmBcrypt}, "$2a$04$AbCdEfGhIjKlMnOpQrStUu"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHash(tt.target))
	}
}

func TestCrackedHash_Result(t *testing.T) {
	target := types.CrackTarget{Hash: "5f4dcc3b5aa765d61d8327deb882cf99", Algorithm: types.AlgorithmMD5}
	c := CrackedHash{Algorithm: types.AlgorithmMD5, Hash: target.Hash, Plaintext: "password", Attempts: 4}

	res := c.Result(target)
	assert.True(t, res.Found())
	assert.True(t, res.FromPotfile)
	assert.Equal(t, "password", res.Candidate)
	assert.Zero(t, res.AttemptsTried)
	assert.Equal(t, target, res.Target)
}

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS crack_sessions")
	assert.Contains(t, schemaSQL, "UNIQUE (algorithm, hash)")
}

func TestSessionStatuses(t *testing.T) {
	for _, s := range []string{StatusRunning, StatusCompleted, StatusCancelled, StatusFailed} {
		assert.NotEmpty(t, s)
	}
	assert.Nil(t, Session{}.CompletedAt)
}
