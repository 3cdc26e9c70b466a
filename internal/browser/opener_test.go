package browser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

// TestOpenerNew tests the Opener constructor and options.
func TestOpenerNew(t *testing.T) {
	t.Parallel()

	t.Run("creates opener with defaults", func(t *testing.T) {
		t.Parallel()

		o := New()
		if o.batchSize != DefaultBatchSize {
			t.Errorf("expected batch size %d, got %d", DefaultBatchSize, o.batchSize)
		}
		if o.pause != DefaultPause {
			t.Errorf("expected pause %v, got %v", DefaultPause, o.pause)
		}
		if o.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("applies WithBatchSize option", func(t *testing.T) {
		t.Parallel()

		o := New(WithBatchSize(3))
		if o.batchSize != 3 {
			t.Errorf("expected batch size 3, got %d", o.batchSize)
		}
	})

	t.Run("ignores non-positive batch size", func(t *testing.T) {
		t.Parallel()

		o := New(WithBatchSize(0))
		if o.batchSize != DefaultBatchSize {
			t.Errorf("expected default batch size, got %d", o.batchSize)
		}
	})

	t.Run("ignores negative pause", func(t *testing.T) {
		t.Parallel()

		o := New(WithPause(-1))
		if o.pause != DefaultPause {
			t.Errorf("expected default pause, got %v", o.pause)
		}
	})

	t.Run("accepts zero pause", func(t *testing.T) {
		t.Parallel()

		o := New(WithPause(0))
		if o.pause != 0 {
			t.Errorf("expected zero pause, got %v", o.pause)
		}
	})
}

// TestOpenerChunks tests list partitioning.
func TestOpenerChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		batchSize int
		wantSizes []int
	}{
		{name: "even split", total: 6, batchSize: 3, wantSizes: []int{3, 3}},
		{name: "short final chunk", total: 7, batchSize: 3, wantSizes: []int{3, 3, 1}},
		{name: "single chunk", total: 2, batchSize: 5, wantSizes: []int{2}},
		{name: "batch size one", total: 3, batchSize: 1, wantSizes: []int{1, 1, 1}},
		{name: "empty list", total: 0, batchSize: 5, wantSizes: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			links := make([]string, 0, tt.total)
			for i := range tt.total {
				links = append(links, fmt.Sprintf("https://www.instagram.com/user%d/", i))
			}

			chunks := New(WithBatchSize(tt.batchSize)).Chunks(links)
			if len(chunks) != len(tt.wantSizes) {
				t.Fatalf("expected %d chunks, got %d", len(tt.wantSizes), len(chunks))
			}
			for i, want := range tt.wantSizes {
				if len(chunks[i]) != want {
					t.Errorf("chunk %d: expected size %d, got %d", i, want, len(chunks[i]))
				}
			}
		})
	}
}

// TestOpenerOpen tests sequential batch opening.
func TestOpenerOpen(t *testing.T) {
	t.Parallel()

	t.Run("launches every link in order", func(t *testing.T) {
		t.Parallel()

		var launched []string
		o := New(
			WithBatchSize(2),
			WithPause(0),
			WithOutput(&bytes.Buffer{}),
			WithLaunchFunc(func(url string) error {
				launched = append(launched, url)
				return nil
			}),
		)

		links := []string{
			"https://www.instagram.com/a/",
			"https://www.instagram.com/b/",
			"https://www.instagram.com/c/",
		}
		if err := o.Open(context.Background(), links); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(launched) != len(links) {
			t.Fatalf("expected %d launches, got %d", len(links), len(launched))
		}
		for i := range links {
			if launched[i] != links[i] {
				t.Errorf("launch %d: expected %q, got %q", i, links[i], launched[i])
			}
		}
	})

	t.Run("prints links and chunk offsets", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		o := New(
			WithBatchSize(2),
			WithPause(0),
			WithOutput(&out),
			WithLaunchFunc(NopLaunch),
		)

		links := []string{
			"https://www.instagram.com/a/",
			"https://www.instagram.com/b/",
			"https://www.instagram.com/c/",
		}
		if err := o.Open(context.Background(), links); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "Opening new links in chunks of 0") {
			t.Errorf("expected first chunk header, got %q", got)
		}
		if !strings.Contains(got, "Opening new links in chunks of 2") {
			t.Errorf("expected second chunk header, got %q", got)
		}
		for _, link := range links {
			if !strings.Contains(got, link) {
				t.Errorf("expected output to contain %q", link)
			}
		}
	})

	t.Run("empty list launches nothing", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		o := New(
			WithPause(0),
			WithOutput(&out),
			WithLaunchFunc(func(string) error {
				t.Error("launch should not be called")
				return nil
			}),
		)

		if err := o.Open(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("expected no output, got %q", out.String())
		}
	})

	t.Run("launch failure aborts run", func(t *testing.T) {
		t.Parallel()

		launchErr := errors.New("no display")
		var launched int
		o := New(
			WithBatchSize(1),
			WithPause(0),
			WithOutput(&bytes.Buffer{}),
			WithLaunchFunc(func(string) error {
				launched++
				return launchErr
			}),
		)

		err := o.Open(context.Background(), []string{
			"https://www.instagram.com/a/",
			"https://www.instagram.com/b/",
		})
		if !errors.Is(err, launchErr) {
			t.Fatalf("expected launch error, got %v", err)
		}
		if launched != 1 {
			t.Errorf("expected run to stop after first failure, got %d launches", launched)
		}
	})

	t.Run("pauses after every chunk including the last", func(t *testing.T) {
		t.Parallel()

		// Timers never fire early, so elapsed time is a reliable lower
		// bound: three chunks of one link each must accumulate three
		// pauses. Without the trailing pause it would be two.
		const pause = 30 * time.Millisecond

		o := New(
			WithBatchSize(1),
			WithPause(pause),
			WithOutput(&bytes.Buffer{}),
			WithLaunchFunc(NopLaunch),
		)

		start := time.Now()
		err := o.Open(context.Background(), []string{
			"https://www.instagram.com/a/",
			"https://www.instagram.com/b/",
			"https://www.instagram.com/c/",
		})
		elapsed := time.Since(start)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed < 3*pause {
			t.Errorf("expected at least %v of pauses (one per chunk), got %v", 3*pause, elapsed)
		}
	})

	t.Run("cancelled context aborts pause", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		o := New(
			WithBatchSize(1),
			WithPause(DefaultPause),
			WithOutput(&bytes.Buffer{}),
			WithLaunchFunc(NopLaunch),
		)

		err := o.Open(ctx, []string{"https://www.instagram.com/a/"})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
