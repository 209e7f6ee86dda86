package cmd

import (
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/dealtone/internal/card"
	"github.com/arcanaland/dealtone/internal/hand"
)

var (
	redCard   = colorize.New(colorize.FgHiRed, colorize.Bold).SprintFunc()
	blackCard = colorize.New(colorize.FgHiWhite, colorize.Bold).SprintFunc()
)

// renderCard colors a card label by suit
func renderCard(c card.Card) string {
	if c.Suit.IsRed() {
		return redCard(c.String())
	}
	return blackCard(c.String())
}

// renderHand formats a hand as "<cards> for <points> points."
func renderHand(h hand.Hand) string {
	cards := h.Cards()
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = renderCard(c)
	}
	return strings.Join(labels, " ") + colorize.CyanString(" for ") +
		colorize.HiWhiteString("%d", h.Points()) + colorize.CyanString(" points.")
}

// terminalWidth returns the stdout width, or 80 when it can't be determined
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			// Word doesn't fit, start a new line
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
