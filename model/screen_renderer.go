package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer draws generations into a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenRenderer initializes screen and takes ownership of it until Close
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.Clear()

	return &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorReset),
	}, nil
}

// Display renders the grid and flushes it to the terminal
func (r *ScreenRenderer) Display(g *Grid) error {
	for y := range g.height {
		for x := range g.width {
			glyph := gridPosEmpty
			if g.Get(x, y) {
				glyph = gridPosBlock
			}
			r.screen.SetContent(x, y, glyph, nil, r.style)
		}
	}
	r.screen.Show()
	return nil
}

// Clear blanks the screen buffer; the next Display overwrites it in place
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// WaitForQuit blocks until the user presses Ctrl+C, Esc or q, or the screen is closed
func (r *ScreenRenderer) WaitForQuit() {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				return
			}
		}
	}
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
