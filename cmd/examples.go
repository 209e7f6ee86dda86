package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/dealtone/internal/hand"
	"github.com/arcanaland/dealtone/internal/phone"
)

var challengeInputs = []string{"❤️234567890", "4085554321", "2175551212"}

// examplesCmd represents the examples command
var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Run the built-in examples",
	Long: `Examples deals one three-card hand and dials a fixed set of keypad inputs
against the built-in contacts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		seed, _ := cmd.Flags().GetInt64("seed")

		fmt.Fprintf(out, "\n---Example of %s---\n", "Create a Blackjack card dealer")
		if err := dealOnce(cmd, 3, seed); err != nil && !errors.Is(err, hand.ErrBusted) {
			return err
		}

		fmt.Fprintf(out, "\n---Example of %s---\n", "Challenge: Transforming & Filtering operators")
		dir := phone.DefaultDirectory()
		for _, input := range challengeInputs {
			if err := dialOne(cmd, dir, phone.DefaultFillDigit, input); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(examplesCmd)

	examplesCmd.Flags().Int64("seed", 0, "Random seed for the dealer example (0 seeds from the clock)")
}
