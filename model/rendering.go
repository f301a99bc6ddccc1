package model

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '

	// cursor home followed by erase display
	ansiClearSeq = "\033[H\033[2J"
)

// Renderer draws generations to some display
type Renderer interface {
	Display(g *Grid) error
	Clear() error
}

// TerminalRenderer writes frames as plain text rows and clears with ANSI escapes
type TerminalRenderer struct {
	out io.Writer
	buf bytes.Buffer
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display renders the grid, one line per row and one glyph per cell
func (r *TerminalRenderer) Display(g *Grid) error {
	r.buf.Reset()
	for y := range g.height {
		for x := range g.width {
			if g.Get(x, y) {
				r.buf.WriteRune(gridPosBlock)
			} else {
				r.buf.WriteRune(gridPosEmpty)
			}
		}
		r.buf.WriteByte('\n')
	}

	if _, err := r.out.Write(r.buf.Bytes()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ansiClearSeq); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to write clear sequence")
	}
	return nil
}
