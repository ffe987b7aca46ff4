package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/password-guesser/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a candidate wordlist from a target profile",
	Long: `Extracts seed words and numbers from the profile (and any harvest URLs it lists), expands them
through the generation tiers up to --depth, and writes one candidate per line to --output.`,
	RunE: runGenerateCmd,
}

var (
	generateFlags  generationFlags
	generateOutput string
)

func init() {
	generateFlags.register(generateCommand)
	generateCommand.Flags().StringVarP(&generateOutput, "output", "o", "", "Path to output wordlist file")

	_ = generateCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := generateFlags.resolve(cmd)
	if err != nil {
		return err
	}
	opts, err := generateFlags.runOptions(cfg)
	if err != nil {
		return err
	}

	res, err := pipeline.RunGenerate(cmd.Context(), opts, generateOutput)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully generated candidates\n")
	fmt.Printf("Seeds: %d words, %d numbers\n", len(res.Seeds.Words), len(res.Seeds.Numbers))
	fmt.Printf("Wrote %d candidates to %s\n", res.Written, res.OutputPath)
	return nil
}
