package model

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimulationRenderer(t *testing.T) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewScreenRenderer(screen)
	if err != nil {
		t.Fatalf("NewScreenRenderer: %v", err)
	}
	t.Cleanup(r.Close)
	screen.SetSize(20, 10)
	return r, screen
}

func TestScreenRendererDisplay(t *testing.T) {
	r, screen := newSimulationRenderer(t)

	g := NewGrid(5, 4)
	g.AddBlinker(1, 2)
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}

	cells, width, _ := screen.GetContents()
	for y := range 4 {
		for x := range 5 {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				t.Fatalf("cell (%d,%d) was not drawn", x, y)
			}
			want := gridPosEmpty
			if g.Get(x, y) {
				want = gridPosBlock
			}
			if runes[0] != want {
				t.Fatalf("cell (%d,%d) shows %q, expected %q", x, y, runes[0], want)
			}
		}
	}
}

func TestScreenRendererWaitForQuit(t *testing.T) {
	r, screen := newSimulationRenderer(t)

	done := make(chan struct{})
	go func() {
		r.WaitForQuit()
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForQuit did not return after q was pressed")
	}
}
