package browser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/browser"
)

// Default batch behavior. Five tabs per batch keeps the browser responsive,
// and thirty seconds gives the user time to review each batch before the
// next one lands.
const (
	DefaultBatchSize = 5
	DefaultPause     = 30 * time.Second
)

// LaunchFunc opens a single URL as a new tab in a browser.
// A failing launch aborts the whole run.
type LaunchFunc func(url string) error

// Opener iterates a link list in consecutive chunks, launching every link
// in a chunk and pausing between chunks.
//
// Design decision: The launch function is injectable rather than hardwired
// to the OS browser so that tests can observe launches without opening
// windows, and so that a dry run can substitute a no-op.
type Opener struct {
	// batchSize is the number of links opened per chunk.
	batchSize int

	// pause is the wait after each chunk, the final chunk included.
	pause time.Duration

	// launch opens one URL. Defaults to the OS default browser.
	launch LaunchFunc

	// output receives the per-chunk progress lines.
	output io.Writer

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// Option configures an Opener.
type Option func(*Opener)

// WithBatchSize sets the number of links opened per chunk.
// Non-positive values are ignored and the default is kept.
func WithBatchSize(n int) Option {
	return func(o *Opener) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithPause sets the wait between chunks.
// Negative values are ignored and the default is kept.
func WithPause(d time.Duration) Option {
	return func(o *Opener) {
		if d >= 0 {
			o.pause = d
		}
	}
}

// WithLaunchFunc sets a custom launch function.
func WithLaunchFunc(launch LaunchFunc) Option {
	return func(o *Opener) {
		if launch != nil {
			o.launch = launch
		}
	}
}

// WithOutput sets the writer for progress lines.
func WithOutput(w io.Writer) Option {
	return func(o *Opener) {
		if w != nil {
			o.output = w
		}
	}
}

// WithLogger sets a custom logger for the opener.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Opener) {
		o.logger = logger
	}
}

// NopLaunch is a LaunchFunc that does nothing. Used for dry runs.
func NopLaunch(string) error { return nil }

// New creates an Opener that launches links in the default OS browser.
func New(opts ...Option) *Opener {
	o := &Opener{
		batchSize: DefaultBatchSize,
		pause:     DefaultPause,
		launch:    browser.OpenURL,
		output:    os.Stdout,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// Chunks partitions links into consecutive chunks of the configured batch
// size. The final chunk may be shorter; a list of length L yields
// ceil(L/batchSize) chunks. The chunks share the backing array of links.
func (o *Opener) Chunks(links []string) [][]string {
	chunks := make([][]string, 0, (len(links)+o.batchSize-1)/o.batchSize)
	for start := 0; start < len(links); start += o.batchSize {
		end := min(start+o.batchSize, len(links))
		chunks = append(chunks, links[start:end])
	}
	return chunks
}

// Open launches every link in order, chunk by chunk, printing each link and
// the running chunk offset, and pausing after every chunk. Returns the
// context error when cancelled mid-pause and the launch error when the
// browser cannot be opened.
func (o *Opener) Open(ctx context.Context, links []string) error {
	o.logger.Debug("opening links",
		"total", len(links),
		"batch_size", o.batchSize,
		"pause", o.pause,
	)

	for i, chunk := range o.Chunks(links) {
		fmt.Fprintln(o.output, "Opening new links in chunks of", i*o.batchSize)
		for _, link := range chunk {
			fmt.Fprintln(o.output, link)
			if err := o.launch(link); err != nil {
				return fmt.Errorf("failed to open %s in browser: %w", link, err)
			}
		}
		if err := o.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// wait pauses for the configured duration or until the context is done.
func (o *Opener) wait(ctx context.Context) error {
	if o.pause <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(o.pause)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
