package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/password-guesser/internal/config"
	"github.com/jonathan/password-guesser/internal/types"
)

var hashCommand = &cobra.Command{
	Use:   "hash <plaintext>",
	Short: "Print the hash of a plaintext, for producing test targets",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashCmd,
}

var (
	hashAlgo string
	hashCost int
)

func init() {
	hashCommand.Flags().StringVarP(&hashAlgo, "algo", "a", "md5", "Hash algorithm: md5, sha1, sha256, sha512, ntlm, bcrypt")
	hashCommand.Flags().IntVar(&hashCost, "cost", 0, "bcrypt cost 4-31 (defaults to BCRYPT_COST env var, then 10)")

	rootCmd.AddCommand(hashCommand)
}

func runHashCmd(_ *cobra.Command, args []string) error {
	algo, err := types.ParseAlgorithm(hashAlgo)
	if err != nil {
		return err
	}
	hc, err := config.NewHashConfig()
	if err != nil {
		return err
	}
	hc, err = hc.WithCost(hashCost)
	if err != nil {
		return err
	}

	h, err := hc.Hash(algo, args[0])
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}
