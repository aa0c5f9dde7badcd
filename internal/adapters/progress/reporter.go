package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/muesli/termenv"
	"go.trai.ch/brot/internal/core/ports"
	"go.trai.ch/brot/internal/ui/output"
	"go.trai.ch/brot/internal/ui/style"
)

const (
	// BarWidth is the number of cells of the bar.
	BarWidth = 30

	// LinearStep is the percentage between two lines in linear mode.
	LinearStep = 10
)

var _ ports.Progress = (*Reporter)(nil)

// Reporter implements ports.Progress.
// Add may be called from many goroutines; drawing happens only when the percentage changes.
type Reporter struct {
	mode Mode
	out  *termenv.Output

	done atomic.Int64

	mu    sync.Mutex
	total int64
	label string
	shown int64
}

// NewReporter creates a Reporter drawing to w in the given mode.
func NewReporter(w io.Writer, mode Mode) *Reporter {
	return &Reporter{
		mode: mode,
		out:  output.New(w),
	}
}

// Start resets the reporter for a pass of total units.
func (r *Reporter) Start(total int, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = int64(total)
	r.label = label
	r.done.Store(0)
	r.drawLocked(r.percent(0))
}

// Add records n completed units.
func (r *Reporter) Add(n int) {
	done := r.done.Add(int64(n))

	r.mu.Lock()
	defer r.mu.Unlock()

	pct := r.percent(done)
	if pct <= r.shown {
		return
	}
	if r.mode == ModeLinear {
		for step := r.shown - r.shown%LinearStep + LinearStep; step <= pct; step += LinearStep {
			r.drawLocked(step)
		}
		return
	}
	r.drawLocked(pct)
}

// Finish completes the pass.
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.shown < 100 {
		r.drawLocked(100)
	}
	switch r.mode {
	case ModeBar:
		_, _ = r.out.WriteString("\n")
	case ModeLinear:
		_, _ = fmt.Fprintf(r.out, "%s: done\n", r.label)
	}
}

func (r *Reporter) percent(done int64) int64 {
	if r.total <= 0 {
		return 100
	}
	return min(done*100/r.total, 100)
}

func (r *Reporter) drawLocked(pct int64) {
	r.shown = pct

	switch r.mode {
	case ModeBar:
		filled := int(pct) * BarWidth / 100
		bar := r.out.String(strings.Repeat("#", filled)).
			Foreground(termenv.RGBColor(string(style.Iris))).String()
		rest := strings.Repeat(".", BarWidth-filled)
		_, _ = fmt.Fprintf(r.out, "\r%s [%s%s] %3d%%", r.label, bar, rest, pct)
	case ModeLinear:
		_, _ = fmt.Fprintf(r.out, "%s: %d%%\n", r.label, pct)
	}
}
