package hand

import (
	"context"
	"errors"
	"io"
	rand "math/rand/v2"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/arcanaland/dealtone/internal/stream"
)

// Dealer deals hands onto a push channel. A bust completes the channel with
// ErrBusted; hands dealt afterwards are dropped by the completed channel.
type Dealer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	hands  *stream.Subject[Hand]
	logger *log.Logger
}

// NewDealer creates a dealer drawing from rng. A nil logger discards output.
func NewDealer(rng *rand.Rand, logger *log.Logger) *Dealer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dealer{
		rng:    rng,
		hands:  stream.NewSubject[Hand](),
		logger: logger,
	}
}

// Hands returns the channel carrying dealt hands
func (d *Dealer) Hands() stream.Publisher[Hand] {
	return d.hands
}

// Deal draws count cards and publishes the result. Only invalid input or a
// cancelled context is returned as an error; a bust is delivered on the
// channel.
func (d *Dealer) Deal(ctx context.Context, count int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateCount(count); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.NewString()
	h, err := Draw(d.rng, count)
	switch {
	case errors.Is(err, ErrBusted):
		d.logger.Debug("Hand busted", "deal", id, "count", count)
		d.hands.Complete(ErrBusted)
	case err != nil:
		return err
	default:
		d.logger.Debug("Hand dealt", "deal", id, "count", count, "cards", h.CardString(), "points", h.Points())
		d.hands.Send(h)
	}
	return nil
}

// Close completes the channel normally
func (d *Dealer) Close() {
	d.hands.Complete(nil)
}
