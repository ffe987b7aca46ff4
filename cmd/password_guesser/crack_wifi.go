package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/password-guesser/internal/pipeline"
	"github.com/jonathan/password-guesser/internal/wifi"
)

var crackWifiCommand = &cobra.Command{
	Use:   "crack-wifi",
	Short: "Crack a captured WPA handshake with aircrack-ng or hashcat",
	Long: `Generates WPA-length candidates (8-63 characters) from --profile, or uses --wordlist, and runs
the chosen external tool against the handshake capture. The tool must be installed and on PATH.`,
	RunE: runCrackWifiCmd,
}

var (
	crackWifiFlags     generationFlags
	crackWifiHandshake string
	crackWifiTool      string
	crackWifiWordlist  string
)

func init() {
	crackWifiFlags.register(crackWifiCommand)
	crackWifiCommand.Flags().StringVar(&crackWifiHandshake, "handshake", "", "Path to the handshake capture (.cap, .pcap or .hccapx)")
	crackWifiCommand.Flags().StringVarP(&crackWifiTool, "tool", "t", string(wifi.ToolAircrack), "Cracking tool: aircrack-ng or hashcat")
	crackWifiCommand.Flags().StringVarP(&crackWifiWordlist, "wordlist", "w", "", "Use an existing wordlist instead of generating candidates")

	_ = crackWifiCommand.MarkFlagRequired("handshake")

	rootCmd.AddCommand(crackWifiCommand)
}

func runCrackWifiCmd(cmd *cobra.Command, _ []string) error {
	tool, err := wifi.ParseTool(crackWifiTool)
	if err != nil {
		return err
	}

	cfg, err := crackWifiFlags.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := crackWifiFlags.runOptions(cfg)
	if err != nil {
		return err
	}

	out, err := pipeline.RunCrackWifi(cmd.Context(), opts, crackWifiHandshake, tool, crackWifiWordlist)
	if err != nil {
		return err
	}

	if out.Generated != nil {
		fmt.Printf("Tested %d generated candidates\n", out.Generated.Written)
	}
	if !out.Result.Found {
		fmt.Println("Key not found. Try increasing --depth or adding more profile data.")
		return nil
	}
	fmt.Printf("KEY FOUND: %s\n", out.Result.Key)
	return nil
}
