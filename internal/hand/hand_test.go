package hand

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealtone/internal/card"
	"github.com/arcanaland/dealtone/internal/logging"
	"github.com/arcanaland/dealtone/internal/randutil"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name     string
		cards    []card.Card
		expected int
		busted   bool
	}{
		{
			name:     "empty hand",
			expected: 0,
		},
		{
			name:     "blackjack",
			cards:    []card.Card{card.New(card.King, card.Spades), card.New(card.Ace, card.Hearts)},
			expected: 21,
		},
		{
			name: "bust",
			cards: []card.Card{
				card.New(card.King, card.Spades),
				card.New(card.Queen, card.Hearts),
				card.New(card.Five, card.Clubs),
			},
			expected: 25,
			busted:   true,
		},
		{
			name:     "two aces always count eleven",
			cards:    []card.Card{card.New(card.Ace, card.Spades), card.New(card.Ace, card.Hearts)},
			expected: 22,
			busted:   true,
		},
		{
			name: "numerals",
			cards: []card.Card{
				card.New(card.Two, card.Diamonds),
				card.New(card.Nine, card.Clubs),
				card.New(card.Ten, card.Hearts),
			},
			expected: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.cards...)
			assert.Equal(t, tt.expected, h.Points())
			assert.Equal(t, tt.busted, h.Busted())
			assert.Equal(t, len(tt.cards), h.Len())
		})
	}
}

func TestCardString(t *testing.T) {
	h := New(card.New(card.King, card.Spades), card.New(card.Ace, card.Hearts))
	assert.Equal(t, "K♠ A♥", h.CardString())
	assert.Equal(t, "K♠ A♥ for 21 points.", h.String())
	assert.Equal(t, "", New().CardString())
}

func TestHandIsImmutable(t *testing.T) {
	cards := []card.Card{card.New(card.Two, card.Spades)}
	h := New(cards...)
	cards[0] = card.New(card.King, card.Spades)

	got := h.Cards()
	got[0] = card.New(card.Queen, card.Spades)

	assert.Equal(t, 2, h.Points())
}

func TestDrawZero(t *testing.T) {
	h, err := Draw(randutil.New(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Points())
}

func TestDrawInvalidCount(t *testing.T) {
	for _, count := range []int{-1, 53, 100} {
		_, err := Draw(randutil.New(1), count)
		assert.ErrorIs(t, err, ErrInvalidCount, "count %d", count)
	}
}

func TestDrawFullDeckBusts(t *testing.T) {
	h, err := Draw(randutil.New(1), 52)
	assert.ErrorIs(t, err, ErrBusted)
	assert.Equal(t, 0, h.Len(), "no partial hand alongside the error")
}

func TestDrawYieldsHandOrBust(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		for _, count := range []int{0, 1, 2, 3, 4, 10, 52} {
			h, err := Draw(randutil.New(seed), count)
			if err != nil {
				require.True(t, errors.Is(err, ErrBusted), "seed %d count %d: %v", seed, count, err)
				assert.Equal(t, 0, h.Len())
				continue
			}

			require.Equal(t, count, h.Len(), "seed %d", seed)
			assert.LessOrEqual(t, h.Points(), BustLimit)

			seen := make(map[card.Card]bool)
			for _, c := range h.Cards() {
				assert.False(t, seen[c], "seed %d: duplicate %s", seed, c)
				seen[c] = true
			}
		}
	}
}

func TestDrawSingleCardNeverBusts(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		h, err := Draw(randutil.New(seed), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, h.Len())
	}
}

func TestDealerPublishesHands(t *testing.T) {
	d := NewDealer(randutil.New(5), logging.Discard())

	var hands []Hand
	var done []error
	sub := d.Hands().Subscribe(
		func(h Hand) { hands = append(hands, h) },
		func(err error) { done = append(done, err) })
	defer sub.Cancel()

	require.NoError(t, d.Deal(context.Background(), 1))
	require.NoError(t, d.Deal(context.Background(), 1))
	d.Close()

	assert.Len(t, hands, 2)
	assert.Equal(t, []error{nil}, done)
}

func TestDealerBustIsTerminal(t *testing.T) {
	d := NewDealer(randutil.New(5), nil)

	var hands []Hand
	var done []error
	d.Hands().Subscribe(
		func(h Hand) { hands = append(hands, h) },
		func(err error) { done = append(done, err) })

	require.NoError(t, d.Deal(context.Background(), 52))
	require.NoError(t, d.Deal(context.Background(), 1))

	assert.Empty(t, hands)
	require.Len(t, done, 1)
	assert.ErrorIs(t, done[0], ErrBusted)
}

func TestDealerRejectsInvalidCount(t *testing.T) {
	d := NewDealer(randutil.New(5), nil)

	var events int
	d.Hands().Subscribe(
		func(Hand) { events++ },
		func(error) { events++ })

	err := d.Deal(context.Background(), 53)
	assert.ErrorIs(t, err, ErrInvalidCount)
	assert.Equal(t, 0, events, "channel must be untouched")
}

func TestDealerCancelledContext(t *testing.T) {
	d := NewDealer(randutil.New(5), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.Deal(ctx, 3), context.Canceled)
}
