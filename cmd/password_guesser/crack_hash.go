package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/password-guesser/internal/pipeline"
	"github.com/jonathan/password-guesser/internal/types"
)

var crackHashCommand = &cobra.Command{
	Use:   "crack-hash",
	Short: "Crack password hashes with profile-generated candidates or a wordlist",
	Long: `Tests candidates against one or more target hashes in parallel. Candidates come from --wordlist
when given, and are generated from --profile otherwise. With a potfile database configured,
previously cracked hashes are answered without cracking and new results are saved.`,
	RunE: runCrackHashCmd,
}

var (
	crackHashFlags       generationFlags
	crackHashHashes      []string
	crackHashFile        string
	crackHashAlgo        string
	crackHashWordlist    string
	crackHashWorkers     int
	crackHashChunkSize   int
	crackHashDatabaseURL string
)

func init() {
	crackHashFlags.register(crackHashCommand)
	crackHashCommand.Flags().StringSliceVar(&crackHashHashes, "hash", nil, "Target hash (repeatable or comma separated)")
	crackHashCommand.Flags().StringVar(&crackHashFile, "hash-file", "", "File with one target hash per line")
	crackHashCommand.Flags().StringVarP(&crackHashAlgo, "algo", "a", "md5", "Hash algorithm: md5, sha1, sha256, sha512, ntlm, bcrypt")
	crackHashCommand.Flags().StringVarP(&crackHashWordlist, "wordlist", "w", "", "Use an existing wordlist instead of generating candidates")
	crackHashCommand.Flags().IntVar(&crackHashWorkers, "workers", 0, "Number of matcher workers (defaults to MAX_WORKERS or the CPU count)")
	crackHashCommand.Flags().IntVar(&crackHashChunkSize, "chunk-size", 0, "Candidates per work unit (default automatic)")

	// Database URL for the potfile
	crackHashCommand.Flags().StringVar(&crackHashDatabaseURL, "db-url", "", "PostgreSQL potfile URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(crackHashCommand)
}

func runCrackHashCmd(cmd *cobra.Command, _ []string) error {
	algo, err := types.ParseAlgorithm(crackHashAlgo)
	if err != nil {
		return err
	}
	targets, err := pipeline.LoadTargets(crackHashHashes, crackHashFile, algo)
	if err != nil {
		return fmt.Errorf("%w (use --hash or --hash-file)", err)
	}

	cfg, err := crackHashFlags.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = crackHashWorkers
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.ChunkSize = crackHashChunkSize
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = crackHashDatabaseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := crackHashFlags.runOptions(cfg)
	if err != nil {
		return err
	}

	out, err := pipeline.RunCrackHash(cmd.Context(), opts, targets, crackHashWordlist)
	if out != nil {
		fmt.Println()
		for _, r := range out.Results {
			fmt.Println(r.String())
		}
		fmt.Printf("\nCracked %d/%d hash(es), %d candidates tested\n", out.Found(), len(out.Results), out.Candidates)
	}
	return err
}
