package commands

import (
	"errors"
	"fmt"

	"github.com/oatpass/oatpass-go/internal/charset"
	"github.com/oatpass/oatpass-go/internal/crypto"
	"github.com/spf13/cobra"
)

func newPasswordCommand() *cobra.Command {
	var (
		length        int
		count         int
		noUppercase   bool
		noLowercase   bool
		noNumbers     bool
		noSymbols     bool
		customSymbols string
		exclude       string
		include       string
		noAmbiguous   bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate secure passwords with customizable rules",
		Example: `  # 12-character password with all character types
  oatpass password

  # Five 20-character passwords without symbols
  oatpass password -l 20 -c 5 --no-symbols

  # Readable password: no ambiguous characters, no symbols
  oatpass password --no-ambiguous --no-symbols`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Rejected here, before the engine is ever constructed.
			if length <= 0 {
				return errors.New("password length must be greater than 0")
			}
			if count <= 0 {
				return errors.New("password count must be greater than 0")
			}

			spec := charset.Spec{
				Length:        length,
				Uppercase:     !noUppercase,
				Lowercase:     !noLowercase,
				Digits:        !noNumbers,
				Symbols:       !noSymbols,
				CustomSymbols: customSymbols,
				Exclude:       exclude,
				Include:       include,
				NoAmbiguous:   noAmbiguous,
			}

			alphabet, err := charset.Build(spec)
			if err != nil {
				return err
			}

			passwords, err := crypto.SampleMany(alphabet, length, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, password := range passwords {
				if count == 1 {
					fmt.Fprintln(out, password)
				} else {
					fmt.Fprintf(out, "Password %d: %s\n", i+1, password)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 12, "password length")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&noUppercase, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "exclude numbers")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().StringVarP(&customSymbols, "symbols", "s", "", "custom symbol set (overrides default symbols)")
	cmd.Flags().StringVarP(&exclude, "exclude", "e", "", "characters to exclude from password")
	cmd.Flags().StringVarP(&include, "include", "i", "", "additional characters to include")
	cmd.Flags().BoolVar(&noAmbiguous, "no-ambiguous", false, "exclude ambiguous characters (0, O, l, 1, I)")

	return cmd
}
