// Command import_potfile loads a hashcat or john potfile ("hash:plaintext" per line) into the
// Postgres potfile so later crack-hash runs answer those hashes without cracking.
//
// Every line is verified by hashing its plaintext before it is stored.
//
// Usage:
//
//	go run cmd/tools/import_potfile/main.go <algorithm> <potfile>
//
// Requires DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jonathan/password-guesser/internal/config"
	"github.com/jonathan/password-guesser/internal/cracker"
	"github.com/jonathan/password-guesser/internal/db"
	"github.com/jonathan/password-guesser/internal/types"
	"github.com/jonathan/password-guesser/internal/wordlist"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: import_potfile <algorithm> <potfile>")
		os.Exit(2)
	}
	algo, err := types.ParseAlgorithm(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	dsn := config.DatabaseURLFromEnv()
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	lines, err := wordlist.ReadFile(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to read potfile: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()
	if err := database.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Potfile Import ===")
	fmt.Println()

	sessionID, err := database.CreateSession(ctx, 0, len(lines))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	matcher := cracker.NewMatcher(cracker.Options{Workers: 1})
	imported, skipped := 0, 0
	for i, line := range lines {
		hash, plain, ok := parsePotLine(line)
		if !ok {
			fmt.Printf("  ✗ line %d: expected hash:plaintext\n", i+1)
			skipped++
			continue
		}

		target := types.CrackTarget{Hash: hash, Algorithm: algo}
		results, err := matcher.Crack(ctx, slices.Values([]string{plain}), []types.CrackTarget{target})
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		res := results[0]
		if !res.Found() {
			fmt.Printf("  ✗ line %d: %s\n", i+1, res)
			skipped++
			continue
		}
		if err := database.SaveResult(ctx, sessionID, res); err != nil {
			fmt.Printf("  ✗ line %d: %v\n", i+1, err)
			skipped++
			continue
		}
		imported++
	}

	if err := database.CompleteSession(ctx, sessionID, int64(len(lines)), imported, db.StatusCompleted); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: %v\n", err)
	}

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("  Imported: %d\n", imported)
	fmt.Printf("  Skipped: %d\n", skipped)
	fmt.Printf("  Total: %d\n", len(lines))
}

// parsePotLine splits "hash:plaintext" at the first colon; plaintexts may contain colons.
func parsePotLine(line string) (hash, plain string, ok bool) {
	hash, plain, ok = strings.Cut(line, ":")
	hash = strings.TrimSpace(hash)
	if !ok || hash == "" || plain == "" {
		return "", "", false
	}
	return hash, plain, true
}
