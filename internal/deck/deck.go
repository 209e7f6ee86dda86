package deck

import (
	"errors"
	rand "math/rand/v2"

	"github.com/arcanaland/dealtone/internal/card"
)

// ErrEmpty is returned when drawing from a deck with no cards left
var ErrEmpty = errors.New("deck is empty")

// Deck is a working copy of the 52-card set consumed by a single deal.
// Drawn cards are removed, so a deck never yields the same card twice.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand
}

// New creates a fresh, ordered 52-card deck drawing from rng
func New(rng *rand.Rand) *Deck {
	return &Deck{
		cards: card.Standard(),
		rng:   rng,
	}
}

// Draw removes and returns a uniformly random card from the remaining cards
func (d *Deck) Draw() (card.Card, error) {
	n := len(d.cards)
	if n == 0 {
		return card.Card{}, ErrEmpty
	}

	index := d.rng.IntN(n)
	c := d.cards[index]

	// Remove the card, keeping the remaining order
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	return c, nil
}

// DrawN draws n cards in draw order
func (d *Deck) DrawN(n int) ([]card.Card, error) {
	if n > len(d.cards) {
		return nil, ErrEmpty
	}

	cards := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
