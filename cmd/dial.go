package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealtone/internal/phone"
	"github.com/arcanaland/dealtone/internal/stream"
)

// dialCmd represents the dial command
var dialCmd = &cobra.Command{
	Use:   "dial [text]...",
	Short: "Dial numbers spelled on a phone keypad",
	Long: `Dial converts each character of the input to a keypad digit, groups the
digits by ten, formats them as NNN-NNN-NNNN and looks the number up in your
contacts. Characters with no digit are replaced by the fill digit.

Each argument is dialed separately. With no arguments, each line of stdin is
dialed.

Examples:
  dealtone dial 4085554321
  dealtone dial "m03JKL1234" "❤️234567890"
  dealtone dial --fill 5 "408!!!4321"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fill := cfg.Phone.FillDigit
		if cmd.Flags().Changed("fill") {
			fill, _ = cmd.Flags().GetInt("fill")
		}

		dir, source, err := loadDirectory()
		if err != nil {
			return err
		}
		logger.Debug("Loaded contacts", "source", source, "count", dir.Len())

		inputs := args
		if len(inputs) == 0 {
			if inputs, err = readLines(cmd.InOrStdin()); err != nil {
				return err
			}
		}

		failed := 0
		for _, input := range inputs {
			if err := dialOne(cmd, dir, fill, input); err != nil {
				if !errors.Is(err, phone.ErrInvalidLength) {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), colorize.RedString("Cannot dial %q: %v", input, err))
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d inputs could not be dialed", failed, len(inputs))
		}
		return nil
	},
}

// dialOne runs input through a fresh pipeline and prints each result
func dialOne(cmd *cobra.Command, dir *phone.Directory, fill int, input string) error {
	p, err := phone.NewPipeline(dir, phone.WithFillDigit(fill), phone.WithLogger(logger))
	if err != nil {
		return err
	}

	var bag stream.Bag
	defer bag.Close()

	out := cmd.OutOrStdout()
	var result error
	bag.Add(stream.Sink(p.Results(),
		func(msg string) {
			fmt.Fprintln(out, msg)
		},
		func(err error) {
			result = err
		}))

	p.Feed(input)
	p.Close()

	return result
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %v", err)
	}
	return lines, nil
}

func init() {
	RootCmd.AddCommand(dialCmd)

	dialCmd.Flags().Int("fill", phone.DefaultFillDigit, "Digit used for characters with no keypad digit (0-9)")
}
