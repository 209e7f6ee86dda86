package cmd

import (
	"errors"
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealtone/internal/card"
	"github.com/arcanaland/dealtone/internal/hand"
	"github.com/arcanaland/dealtone/internal/randutil"
	"github.com/arcanaland/dealtone/internal/stream"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a blackjack hand",
	Long: `Deal draws cards from a fresh 52-card deck without replacement and scores
them: face cards count 10 and aces always count 11. A hand over 21 is busted
and the command exits with an error.

Examples:
  dealtone deal
  dealtone deal -n 2
  dealtone deal -n 4 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := cfg.Dealer.Count
		if cmd.Flags().Changed("count") {
			count, _ = cmd.Flags().GetInt("count")
		}
		seed := cfg.Dealer.Seed
		if cmd.Flags().Changed("seed") {
			seed, _ = cmd.Flags().GetInt64("seed")
		}

		return dealOnce(cmd, count, seed)
	},
}

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score [card]...",
	Short: "Score a hand of cards",
	Long: `Score evaluates the given cards without drawing. Cards are written as a
rank followed by a suit, e.g. A♠, 10h, Td or kc.

Examples:
  dealtone score K♠ A♥
  dealtone score ks qh 5c`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.ParseAll(args)
		if err != nil {
			return err
		}

		h := hand.New(cards...)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderHand(h))
		if h.Busted() {
			fmt.Fprintln(out, colorize.RedString("Busted!"))
		}
		return nil
	},
}

// dealOnce deals a single hand and prints what arrives on the hand stream
func dealOnce(cmd *cobra.Command, count int, seed int64) error {
	out := cmd.OutOrStdout()
	dealer := hand.NewDealer(randutil.New(seed), logger)

	var bag stream.Bag
	defer bag.Close()

	var result error
	bag.Add(stream.Sink(dealer.Hands(),
		func(h hand.Hand) {
			fmt.Fprintln(out, renderHand(h))
		},
		func(err error) {
			if errors.Is(err, hand.ErrBusted) {
				fmt.Fprintln(out, colorize.RedString("Busted!"))
				result = err
			}
		}))

	if err := dealer.Deal(cmd.Context(), count); err != nil {
		return err
	}
	dealer.Close()

	return result
}

func init() {
	RootCmd.AddCommand(dealCmd)
	RootCmd.AddCommand(scoreCmd)

	dealCmd.Flags().IntP("count", "n", 3, "Number of cards to deal (0-52)")
	dealCmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
}
