// Package progress draws a single-line progress bar for corpus builds.
//
// On a terminal the bar is redrawn in place with a carriage return. When
// the output is not a terminal, a plain line is printed every tenth of the
// way so that logs stay readable.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	defaultWidth    = 40
	defaultInterval = 100 * time.Millisecond
	maxMessageLen   = 24
)

// Options configure a Bar.
type Options struct {
	// TTY forces terminal mode on or off. Nil detects it from the writer.
	TTY *bool
	// Width is the bar width in cells. Zero fits the terminal.
	Width int
	// Interval is the minimum time between redraws in terminal mode.
	Interval time.Duration
}

// Bar reports progress of a known number of steps.
type Bar struct {
	mu sync.Mutex

	w        io.Writer
	total    int
	tty      bool
	width    int
	interval time.Duration

	start    time.Time
	lastDraw time.Time
	lastStep int
	done     int
	finished bool

	now func() time.Time
}

// New creates a bar for total steps writing to w.
func New(w io.Writer, total int, opts Options) *Bar {
	b := &Bar{
		w:        w,
		total:    total,
		width:    opts.Width,
		interval: opts.Interval,
		now:      time.Now,
	}
	b.start = b.now()

	fd := -1
	if f, ok := w.(*os.File); ok {
		fd = int(f.Fd())
	}

	if opts.TTY != nil {
		b.tty = *opts.TTY
	} else if fd >= 0 && os.Getenv("CI") == "" {
		b.tty = term.IsTerminal(fd)
	}

	if b.width <= 0 {
		b.width = defaultWidth
		if b.tty && fd >= 0 {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				// Room for the counters and message around the bar.
				b.width = min(defaultWidth, max(10, cols-60))
			}
		}
	}
	if b.interval <= 0 {
		b.interval = defaultInterval
	}

	return b
}

// Update records that done steps are complete. msg is usually the word
// being processed.
func (b *Bar) Update(done int, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return
	}
	b.done = done

	if b.tty {
		now := b.now()
		if done < b.total && now.Sub(b.lastDraw) < b.interval {
			return
		}
		b.lastDraw = now
		fmt.Fprintf(b.w, "\r%s", b.line(msg))
		return
	}

	if b.total <= 0 {
		return
	}
	step := done * 10 / b.total
	if step > b.lastStep {
		b.lastStep = step
		fmt.Fprintln(b.w, b.line(msg))
	}
}

// Finish draws the final state and ends the line.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return
	}
	b.finished = true

	if b.tty {
		fmt.Fprintf(b.w, "\r%s\n", b.line(""))
		return
	}
	if b.lastStep < 10 {
		fmt.Fprintln(b.w, b.line(""))
	}
}

func (b *Bar) line(msg string) string {
	elapsed := b.now().Sub(b.start)

	filled := 0
	if b.total > 0 {
		filled = min(b.width, b.done*b.width/b.total)
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", b.width-filled)

	rate := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(b.done) / secs
	}

	if r := []rune(msg); len(r) > maxMessageLen {
		msg = string(r[:maxMessageLen])
	}

	return fmt.Sprintf("[%s] %s %7d/%-7d %-*s [%.0f/s]",
		formatElapsed(elapsed), bar, b.done, b.total, maxMessageLen, msg, rate)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
