package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card label cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a playing card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the four suits in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a playing card rank
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the rank label (A, 2..10, J, Q, K)
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "A"
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	default:
		return "?"
	}
}

// IsFace returns true for jack, queen and king
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// Value returns the blackjack value of the rank.
// Aces always count 11; there is no soft/hard revaluation.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r.IsFace():
		return 10
	default:
		return int(r)
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card label (e.g., "A♠", "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value returns the blackjack value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// Standard returns the ordered 52-card set, suit by suit from ace to king
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, New(rank, suit))
		}
	}
	return cards
}

// Parse parses a card label such as "A♠", "10h", "Td" or "kc"
func Parse(label string) (Card, error) {
	runes := []rune(strings.TrimSpace(label))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, label)
	}

	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, label)
	}

	rank, ok := parseRank(strings.ToUpper(string(runes[:len(runes)-1])))
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, label)
	}

	return New(rank, suit), nil
}

// ParseAll parses a list of card labels
func ParseAll(labels []string) ([]Card, error) {
	cards := make([]Card, 0, len(labels))
	for _, label := range labels {
		c, err := Parse(label)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case '♠', 's', 'S':
		return Spades, true
	case '♥', 'h', 'H':
		return Hearts, true
	case '♦', 'd', 'D':
		return Diamonds, true
	case '♣', 'c', 'C':
		return Clubs, true
	}
	return 0, false
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "A":
		return Ace, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), true
	}
	return 0, false
}
