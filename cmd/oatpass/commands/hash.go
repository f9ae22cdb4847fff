package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oatpass/oatpass-go/internal/crypto"
	"github.com/spf13/cobra"
)

func newHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Compute MD5/SHA hashes for text or files",
	}

	for _, algorithm := range crypto.DigestAlgorithms {
		cmd.AddCommand(newDigestCommand(algorithm))
	}
	cmd.AddCommand(newDigestAllCommand())

	return cmd
}

func newDigestCommand(algorithm string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [text]...", algorithm),
		Short: fmt.Sprintf("Generate %s hash from text or file", strings.ToUpper(algorithm)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if file != "" {
				digest, err := crypto.DigestFile(algorithm, file)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%s): %s\n", strings.ToUpper(algorithm), file, digest)
				return nil
			}

			if len(args) == 0 {
				return errors.New("please provide text to hash or use the --file flag")
			}

			digest, err := crypto.DigestText(algorithm, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(algorithm), digest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "hash the contents of a file instead of text")

	return cmd
}

func newDigestAllCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "all [text]...",
		Short: "Print MD5, SHA-256 and SHA-512 for input or file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if file == "" && len(args) == 0 {
				return errors.New("please provide text to hash or use the --file flag")
			}

			for _, algorithm := range crypto.DigestAlgorithms {
				var (
					digest string
					err    error
				)
				if file != "" {
					digest, err = crypto.DigestFile(algorithm, file)
				} else {
					digest, err = crypto.DigestText(algorithm, strings.Join(args, " "))
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(algorithm), digest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "hash the contents of a file instead of text")

	return cmd
}
