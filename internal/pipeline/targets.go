package pipeline

import (
	"fmt"
	"strings"

	"github.com/jonathan/password-guesser/internal/types"
	"github.com/jonathan/password-guesser/internal/wordlist"
)

// LoadTargets combines hashes given directly with those listed in hashFile (one per line,
// '#' starts a comment). Every target uses algo. Hash text is kept as given; malformed
// values are reported per target by the matcher.
func LoadTargets(hashes []string, hashFile string, algo types.Algorithm) ([]types.CrackTarget, error) {
	var lines []string
	lines = append(lines, hashes...)
	if hashFile != "" {
		fromFile, err := wordlist.ReadFile(hashFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read hash file: %w", err)
		}
		lines = append(lines, fromFile...)
	}

	var targets []types.CrackTarget
	for _, line := range lines {
		h := strings.TrimSpace(line)
		if h == "" || strings.HasPrefix(h, "#") {
			continue
		}
		targets = append(targets, types.CrackTarget{Hash: h, Algorithm: algo})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no target hashes given")
	}
	return targets, nil
}
