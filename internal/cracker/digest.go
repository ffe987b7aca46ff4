package cracker

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/md4" //nolint:staticcheck // NTLM is defined over MD4
	"golang.org/x/text/encoding/unicode"

	"github.com/jonathan/password-guesser/internal/types"
)

// Digest computes the raw digest of candidate for a plain-digest algorithm.
func Digest(algo types.Algorithm, candidate string) ([]byte, error) {
	switch algo {
	case types.AlgorithmMD5:
		sum := md5.Sum([]byte(candidate))
		return sum[:], nil
	case types.AlgorithmSHA1:
		sum := sha1.Sum([]byte(candidate))
		return sum[:], nil
	case types.AlgorithmSHA256:
		sum := sha256.Sum256([]byte(candidate))
		return sum[:], nil
	case types.AlgorithmSHA512:
		sum := sha512.Sum512([]byte(candidate))
		return sum[:], nil
	case types.AlgorithmNTLM:
		return ntlm(candidate)
	default:
		return nil, fmt.Errorf("%s is not a plain digest algorithm", algo.Display())
	}
}

// ntlm is MD4 over the UTF-16LE encoding of the password.
func ntlm(candidate string) ([]byte, error) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(candidate))
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidate as UTF-16LE: %w", err)
	}
	h := md4.New()
	_, _ = h.Write(encoded)
	return h.Sum(nil), nil
}

// Hash renders plaintext the way a stored target would look: lower-case hex for digests,
// a modular-crypt string for bcrypt.
func Hash(algo types.Algorithm, plaintext string, bcryptCost int) (string, error) {
	if algo == types.AlgorithmBcrypt {
		out, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(out), nil
	}

	sum, err := Digest(algo, plaintext)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// parsedTarget is a target prepared for verification.
type parsedTarget struct {
	index  int
	target types.CrackTarget
	digest []byte
	stored []byte
}

func parseTarget(index int, t types.CrackTarget) (*parsedTarget, error) {
	text := strings.TrimSpace(t.Hash)
	p := &parsedTarget{index: index, target: t}

	if t.Algorithm == types.AlgorithmBcrypt {
		if _, err := bcrypt.Cost([]byte(text)); err != nil {
			return nil, &MalformedHashError{Hash: t.Hash, Algorithm: t.Algorithm, Message: "cannot parse bcrypt salt and cost", Cause: err}
		}
		p.stored = []byte(text)
		return p, nil
	}

	size := t.Algorithm.DigestSize()
	if size == 0 {
		return nil, &MalformedHashError{Hash: t.Hash, Algorithm: t.Algorithm, Message: "unsupported algorithm"}
	}
	if len(text) != size*2 {
		return nil, &MalformedHashError{
			Hash:      t.Hash,
			Algorithm: t.Algorithm,
			Message:   fmt.Sprintf("expected %d hex characters, got %d", size*2, len(text)),
		}
	}
	digest, err := hex.DecodeString(text)
	if err != nil {
		return nil, &MalformedHashError{Hash: t.Hash, Algorithm: t.Algorithm, Message: "not valid hex", Cause: err}
	}
	p.digest = digest
	return p, nil
}

// verifyBcrypt re-derives the bcrypt hash with the stored salt and cost.
func verifyBcrypt(stored []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(stored, []byte(candidate)) == nil
}
