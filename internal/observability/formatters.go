// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/password-guesser/internal/db"
	"github.com/jonathan/password-guesser/internal/generator"
	"github.com/jonathan/password-guesser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSeeds outputs the seed words and numbers extracted from the profile.
func (p *Printer) PrintSeeds(words, numbers []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Seed words:   %d\n", len(words)))
	sb.WriteString(fmt.Sprintf("Seed numbers: %d\n", len(numbers)))

	if len(words) > 0 {
		sb.WriteString("\nWords:\n")
		writeList(&sb, words, maxItemsToShow*2)
	}
	if len(numbers) > 0 {
		sb.WriteString("\nNumbers:\n")
		writeList(&sb, numbers, maxItemsToShow*2)
	}

	p.printBox("PROFILE SEEDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGenerationStats outputs per-tier counters of a generation pass.
func (p *Printer) PrintGenerationStats(stats generator.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Seeds: %d  Numbers: %d  Emitted: %d\n\n", stats.Seeds, stats.Numbers, stats.Emitted))
	sb.WriteString(fmt.Sprintf("%-24s %9s %9s %7s\n", "Tier", "Emitted", "Raw", "Dups"))
	for _, ts := range stats.Tiers {
		sb.WriteString(fmt.Sprintf("%d. %-21s %9d %9d %7d\n", int(ts.Tier), ts.Tier, ts.Emitted, ts.Raw, ts.RejectedDuplicate))
	}
	for _, w := range stats.Warnings {
		sb.WriteString(fmt.Sprintf("\n⚠ %v\n", w))
	}

	p.printBox("CANDIDATE GENERATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCrackResults outputs one line per target plus a summary count.
func (p *Printer) PrintCrackResults(results []types.CrackResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	found := 0
	for _, r := range results {
		if r.Found() {
			found++
		}
	}
	sb.WriteString(fmt.Sprintf("Cracked: %d / %d\n\n", found, len(results)))

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%s %s\n", outcomeMark(r), shortHash(r.Target.Hash)))
		switch r.Outcome {
		case types.OutcomeFound:
			source := fmt.Sprintf("%d attempts", r.AttemptsTried)
			if r.FromPotfile {
				source = "potfile"
			}
			sb.WriteString(fmt.Sprintf("    %s: %s (%s)\n", r.Target.Algorithm.Display(), r.Candidate, source))
		case types.OutcomeMalformed:
			sb.WriteString(fmt.Sprintf("    %s: malformed\n", r.Target.Algorithm.Display()))
		default:
			sb.WriteString(fmt.Sprintf("    %s: not found after %d attempts\n", r.Target.Algorithm.Display(), r.AttemptsTried))
		}
	}

	p.printBox("CRACK RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCrackedHashes outputs potfile entries.
func (p *Printer) PrintCrackedHashes(entries []db.CrackedHash) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Entries: %d\n", len(entries)))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("\n%s %s\n", e.Algorithm.Display(), shortHash(e.Hash)))
		sb.WriteString(fmt.Sprintf("    → %s (%s)\n", e.Plaintext, e.CrackedAt.Format("2006-01-02 15:04")))
	}
	p.printBox("POTFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func outcomeMark(r types.CrackResult) string {
	switch r.Outcome {
	case types.OutcomeFound:
		return "✓"
	case types.OutcomeMalformed:
		return "!"
	default:
		return "✗"
	}
}

// shortHash keeps long hashes readable inside the box.
func shortHash(h string) string {
	if len(h) <= 40 {
		return h
	}
	return h[:18] + "…" + h[len(h)-18:]
}
