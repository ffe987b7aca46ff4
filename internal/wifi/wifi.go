// Package wifi hands generated wordlists to external WPA handshake crackers.
package wifi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/password-guesser/internal/types"
	"github.com/jonathan/password-guesser/internal/wordlist"
)

// WPA pre-shared keys are 8 to 63 characters long.
const (
	MinPSKLength = 8
	MaxPSKLength = 63
)

// Tool names a supported external cracker.
type Tool string

const (
	ToolAircrack Tool = "aircrack-ng"
	ToolHashcat  Tool = "hashcat"
)

// ParseTool maps a user-supplied name to a Tool.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aircrack", "aircrack-ng":
		return ToolAircrack, nil
	case "hashcat":
		return ToolHashcat, nil
	default:
		return "", fmt.Errorf("unknown tool: %s (supported: aircrack, hashcat)", s)
	}
}

// GenerationConfig returns cfg with its length bounds clamped to valid WPA key lengths.
func GenerationConfig(cfg types.GenerationConfig) types.GenerationConfig {
	cfg.MinLength = max(cfg.MinLength, MinPSKLength)
	cfg.MaxLength = min(cfg.MaxLength, MaxPSKLength)
	if cfg.MaxLength < cfg.MinLength {
		cfg.MaxLength = cfg.MinLength
	}
	return cfg
}

// ToolError reports a missing or failing external tool.
type ToolError struct {
	Tool    Tool
	Message string
	Output  string
	Cause   error
}

func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Tool, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Tool, e.Message)
}

func (e *ToolError) Unwrap() error {
	return e.Cause
}

// Result is the outcome of one cracker run.
type Result struct {
	Tool     Tool
	Found    bool
	Key      string
	Output   string
	ExitCode int
}

var keyFound = regexp.MustCompile(`KEY FOUND!\s*\[\s*(.*?)\s*\]`)

// Aircrack runs aircrack-ng over handshake with wordlistPath.
func Aircrack(ctx context.Context, handshake, wordlistPath string) (*Result, error) {
	if err := preflight(ToolAircrack, handshake, wordlistPath); err != nil {
		return nil, err
	}

	out, code, err := run(ctx, ToolAircrack, "-w", wordlistPath, handshake)
	if err != nil {
		return nil, err
	}

	res := &Result{Tool: ToolAircrack, Output: out, ExitCode: code}
	if m := keyFound.FindStringSubmatch(out); m != nil {
		res.Found = true
		res.Key = m[1]
	}
	return res, nil
}

// Hashcat runs hashcat in WPA mode over handshake. Capture files (.cap, .pcap) are first
// converted to .hccapx next to the original with aircrack-ng.
func Hashcat(ctx context.Context, handshake, wordlistPath string) (*Result, error) {
	if err := preflight(ToolHashcat, handshake, wordlistPath); err != nil {
		return nil, err
	}

	target := handshake
	switch strings.ToLower(filepath.Ext(handshake)) {
	case ".cap", ".pcap":
		converted, err := convertToHCCAPX(ctx, handshake)
		if err != nil {
			return nil, err
		}
		target = converted
	}

	outfile, err := os.CreateTemp("", "password-guesser-hashcat-*.out")
	if err != nil {
		return nil, &ToolError{Tool: ToolHashcat, Message: "failed to create outfile", Cause: err}
	}
	_ = outfile.Close()
	defer func() { _ = os.Remove(outfile.Name()) }()

	out, code, err := run(ctx, ToolHashcat,
		"-m", "2500", "-a", "0",
		"--potfile-disable",
		"--outfile", outfile.Name(), "--outfile-format", "2",
		target, wordlistPath, "--force",
	)
	if err != nil {
		return nil, err
	}

	res := &Result{Tool: ToolHashcat, Output: out, ExitCode: code}
	if keys, err := wordlist.ReadFile(outfile.Name()); err == nil && len(keys) > 0 {
		res.Found = true
		res.Key = keys[0]
	}
	if code != 0 && !res.Found {
		log.Printf("[WIFI] hashcat exited with code %d", code)
	}
	return res, nil
}

func convertToHCCAPX(ctx context.Context, capture string) (string, error) {
	if _, err := exec.LookPath(string(ToolAircrack)); err != nil {
		return "", &ToolError{Tool: ToolAircrack, Message: "needed to convert capture files to hccapx; install it first", Cause: err}
	}
	base := strings.TrimSuffix(capture, filepath.Ext(capture))
	log.Printf("[WIFI] Converting %s to hccapx format", capture)

	out, code, err := run(ctx, ToolAircrack, capture, "-J", base)
	if err != nil {
		return "", err
	}
	if code != 0 {
		return "", &ToolError{Tool: ToolAircrack, Message: fmt.Sprintf("failed to convert capture file (exit %d)", code), Output: out}
	}
	return base + ".hccapx", nil
}

func preflight(tool Tool, handshake, wordlistPath string) error {
	if _, err := exec.LookPath(string(tool)); err != nil {
		return &ToolError{Tool: tool, Message: "not found on PATH; " + installHint(tool), Cause: err}
	}
	if _, err := os.Stat(handshake); err != nil {
		return &ToolError{Tool: tool, Message: fmt.Sprintf("handshake file not found: %s", handshake), Cause: err}
	}
	n, err := wordlist.CountLines(wordlistPath)
	if err != nil {
		return &ToolError{Tool: tool, Message: "cannot read wordlist", Cause: err}
	}
	log.Printf("[WIFI] Running %s with wordlist (%d entries)", tool, n)
	return nil
}

// run executes tool and returns its combined output and exit code. A non-zero exit is not an error.
func run(ctx context.Context, tool Tool, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, string(tool), args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return buf.String(), 0, nil
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		return buf.String(), exitErr.ExitCode(), nil
	case ctx.Err() != nil:
		return buf.String(), -1, ctx.Err()
	default:
		return buf.String(), -1, &ToolError{Tool: tool, Message: "failed to execute", Output: buf.String(), Cause: err}
	}
}

func installHint(tool Tool) string {
	switch tool {
	case ToolHashcat:
		return "install it with your package manager (brew/apt/pacman install hashcat) or from https://hashcat.net/hashcat/"
	default:
		return "install it with your package manager (brew/apt/pacman install aircrack-ng)"
	}
}
