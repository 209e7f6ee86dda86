package hand

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/arcanaland/dealtone/internal/card"
	"github.com/arcanaland/dealtone/internal/deck"
)

// BustLimit is the highest point total a hand can hold without busting
const BustLimit = 21

// MaxCount is the largest number of cards a single deal can draw
const MaxCount = 52

var (
	// ErrBusted is signalled when a dealt hand scores over BustLimit
	ErrBusted = errors.New("busted")

	// ErrInvalidCount is returned for deal counts outside 0..MaxCount
	ErrInvalidCount = errors.New("invalid card count")
)

// Hand is an ordered sequence of cards in draw order
type Hand struct {
	cards []card.Card
}

// New creates a hand from cards in the given order
func New(cards ...card.Card) Hand {
	return Hand{cards: append([]card.Card(nil), cards...)}
}

// Cards returns a copy of the cards in draw order
func (h Hand) Cards() []card.Card {
	return append([]card.Card(nil), h.cards...)
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Points returns the sum of the card values
func (h Hand) Points() int {
	points := 0
	for _, c := range h.cards {
		points += c.Value()
	}
	return points
}

// Busted returns true if the hand scores over BustLimit
func (h Hand) Busted() bool {
	return h.Points() > BustLimit
}

// CardString returns the card labels joined by spaces
func (h Hand) CardString() string {
	labels := make([]string, len(h.cards))
	for i, c := range h.cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}

func (h Hand) String() string {
	return fmt.Sprintf("%s for %d points.", h.CardString(), h.Points())
}

// ValidateCount checks that count is a drawable number of cards
func ValidateCount(count int) error {
	if count < 0 || count > MaxCount {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidCount, count, MaxCount)
	}
	return nil
}

// Draw deals count cards from a fresh deck without replacement.
// The hand is scored once all cards are drawn; a busted hand is never
// returned alongside ErrBusted.
func Draw(rng *rand.Rand, count int) (Hand, error) {
	if err := ValidateCount(count); err != nil {
		return Hand{}, err
	}

	cards, err := deck.New(rng).DrawN(count)
	if err != nil {
		return Hand{}, err
	}

	h := Hand{cards: cards}
	if h.Busted() {
		return Hand{}, ErrBusted
	}
	return h, nil
}
