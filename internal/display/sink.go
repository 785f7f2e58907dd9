// Package display writes countdown frames to a terminal line that is
// redrawn in place.
package display

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// Sink receives countdown frames.
type Sink interface {
	// Write shows text on the current line.
	Write(text string) error
	// ClearLine erases the current line and returns the cursor to column one.
	ClearLine() error
}

// clearLine moves to column one and erases the whole line.
const clearLine = "\r" + ansi.EraseEntireLine

// TerminalSink redraws a single terminal line using ANSI control sequences.
type TerminalSink struct {
	w io.Writer
}

// NewTerminalSink creates a sink writing to w.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: w}
}

// Write writes text without a trailing newline.
func (s *TerminalSink) Write(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

// ClearLine erases the line last written.
func (s *TerminalSink) ClearLine() error {
	_, err := io.WriteString(s.w, clearLine)
	return err
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Visible strips control sequences from captured terminal output and
// returns the text left on screen after the last line clear.
func Visible(raw string) string {
	if i := strings.LastIndex(raw, clearLine); i >= 0 {
		raw = raw[i+len(clearLine):]
	}
	return ansi.Strip(raw)
}

// BufferSink records frames in memory.
type BufferSink struct {
	mu      sync.Mutex
	frames  []string
	clears  int
	current strings.Builder
}

// NewBufferSink creates an empty capturing sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Write appends text to the current line and records it as a frame.
func (b *BufferSink) Write(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frames = append(b.frames, text)
	b.current.WriteString(text)
	return nil
}

// ClearLine empties the current line.
func (b *BufferSink) ClearLine() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clears++
	b.current.Reset()
	return nil
}

// Frames returns every text passed to Write, in order.
func (b *BufferSink) Frames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.frames...)
}

// Clears returns how many times ClearLine was called.
func (b *BufferSink) Clears() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.clears
}

// Line returns what is currently on the line.
func (b *BufferSink) Line() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.current.String()
}
