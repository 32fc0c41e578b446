// Package logbuf provides a bounded in-memory line buffer that backs the
// on-screen log panel. It implements io.Writer so a structured logger can
// write straight into it.
package logbuf

import (
	"strings"
	"sync"
)

// DefaultCap is the default number of retained lines.
const DefaultCap = 300

// Buffer is a bounded FIFO of log lines. Oldest lines are dropped once the
// capacity is reached. Safe for concurrent writers.
type Buffer struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// New creates a buffer retaining at most max lines. A non-positive max
// falls back to DefaultCap.
func New(max int) *Buffer {
	if max <= 0 {
		max = DefaultCap
	}
	return &Buffer{
		lines: make([]string, 0, max),
		max:   max,
	}
}

// Write splits p into lines and appends each. It never fails; the
// io.Writer signature exists so loggers can target the buffer directly.
func (b *Buffer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			b.Append(line)
		}
	}
	return len(p), nil
}

// Append adds one line, evicting the oldest line when full.
func (b *Buffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.lines) >= b.max {
		copy(b.lines, b.lines[1:])
		b.lines = b.lines[:len(b.lines)-1]
	}
	b.lines = append(b.lines, line)
}

// Lines returns a copy of the retained lines, oldest first.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// Len returns the number of retained lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Clear drops all retained lines.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = b.lines[:0]
}
