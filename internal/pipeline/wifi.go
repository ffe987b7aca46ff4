package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/password-guesser/internal/wifi"
)

// WifiRunner runs one external cracker; wifi.Aircrack and wifi.Hashcat satisfy it.
type WifiRunner func(ctx context.Context, handshake, wordlistPath string) (*wifi.Result, error)

// WifiOutcome summarizes a crack-wifi run.
type WifiOutcome struct {
	Result       *wifi.Result
	WordlistPath string
	Generated    *GenerateResult
}

// RunCrackWifi cracks a WPA handshake with tool. Without wordlistPath the profile's candidates
// are generated into a temporary file, restricted to valid WPA key lengths.
func RunCrackWifi(ctx context.Context, opts RunOptions, handshake string, tool wifi.Tool, wordlistPath string) (*WifiOutcome, error) {
	var runner WifiRunner
	switch tool {
	case wifi.ToolAircrack:
		runner = wifi.Aircrack
	case wifi.ToolHashcat:
		runner = wifi.Hashcat
	default:
		return nil, fmt.Errorf("unsupported tool: %s", tool)
	}
	return runCrackWifi(ctx, opts, handshake, runner, wordlistPath)
}

func runCrackWifi(ctx context.Context, opts RunOptions, handshake string, runner WifiRunner, wordlistPath string) (*WifiOutcome, error) {
	outcome := &WifiOutcome{WordlistPath: wordlistPath}

	if wordlistPath == "" {
		dir, err := os.MkdirTemp("", "password-guesser-wifi-")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp dir: %w", err)
		}
		defer func() { _ = os.RemoveAll(dir) }()

		opts.Generation = wifi.GenerationConfig(opts.Generation)
		gen, err := RunGenerate(ctx, opts, filepath.Join(dir, "wordlist.txt"))
		if err != nil {
			return nil, err
		}
		outcome.Generated = gen
		outcome.WordlistPath = gen.OutputPath
	}

	fmt.Printf("Running handshake cracker on %s...\n", handshake)
	res, err := runner(ctx, handshake, outcome.WordlistPath)
	if err != nil {
		return nil, err
	}
	outcome.Result = res
	if outcome.Generated != nil {
		// the temporary list is removed on return
		outcome.WordlistPath = ""
	}

	msg := "Key not found in wordlist. Try increasing --depth or adding more profile data."
	if res.Found {
		msg = fmt.Sprintf("WiFi key cracked: %s", res.Key)
	}
	emitProgress(&opts, "crack_wifi", CategoryCracking, msg, res)
	return outcome, nil
}
