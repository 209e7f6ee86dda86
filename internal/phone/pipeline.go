package phone

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/rivo/uniseg"

	"github.com/arcanaland/dealtone/internal/stream"
)

// DefaultFillDigit replaces tokens that convert to no digit
const DefaultFillDigit = 0

// Pipeline turns a stream of keypad tokens into dial results:
// convert, fill absent digits, batch by DigitCount, format, dial.
//
// Subscribe to Results before sending; each subscriber batches
// independently from the point it subscribed.
type Pipeline struct {
	mu      sync.Mutex
	input   *stream.Subject[string]
	results stream.Publisher[string]
	dir     *Directory
	fill    int
	logger  *log.Logger
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithFillDigit sets the digit used for unconvertible tokens
func WithFillDigit(d int) Option {
	return func(p *Pipeline) {
		p.fill = d
	}
}

// WithLogger sets the pipeline logger
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline builds a pipeline dialing through dir
func NewPipeline(dir *Directory, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		input: stream.NewSubject[string](),
		dir:   dir,
		fill:  DefaultFillDigit,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.fill < 0 || p.fill > 9 {
		return nil, fmt.Errorf("%w: fill digit %d", ErrInvalidDigit, p.fill)
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	if p.dir == nil {
		p.dir = DefaultDirectory()
	}

	digits := stream.MapOr[string, int](p.input, Convert, p.fill)
	batches := stream.Collect(digits, DigitCount)
	numbers := stream.TryMap(batches, p.format)
	p.results = stream.Map(numbers, p.dial)

	return p, nil
}

// Results returns the channel of dial messages
func (p *Pipeline) Results() stream.Publisher[string] {
	return p.results
}

// Send pushes one token into the pipeline
func (p *Pipeline) Send(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input.Send(token)
}

// Feed sends text one user-perceived character at a time, so multi-rune
// characters such as emoji count as a single token.
func (p *Pipeline) Feed(text string) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		p.Send(gr.Str())
	}
}

// Close completes the input. A trailing partial batch is flushed and fails
// formatting, which terminates Results with ErrInvalidLength.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input.Complete(nil)
}

func (p *Pipeline) format(digits []int) (string, error) {
	number, err := Format(digits)
	if err != nil {
		p.logger.Warn("Rejecting batch", "digits", digits, "error", err)
		return "", err
	}
	p.logger.Debug("Formatted number", "number", number)
	return number, nil
}

func (p *Pipeline) dial(number string) string {
	msg := p.dir.Dial(number)
	p.logger.Debug("Dialed", "number", number, "message", msg)
	return msg
}
