package model

import "testing"

func TestWorldKeepsDimensions(t *testing.T) {
	const w, h = 50, 30
	world := NewWorld(w, h)
	world.Seed(NewRand(3), 0.2)

	for range 25 {
		g := world.Current()
		if g.GetWidth() != w || g.GetHeight() != h || len(g.cells) != w*h {
			t.Fatalf("generation %d has shape %dx%d (%d cells)", world.Generation(), g.GetWidth(), g.GetHeight(), len(g.cells))
		}
		world.Step()
	}
	if world.Generation() != 25 {
		t.Fatalf("generation counter = %d, expected 25", world.Generation())
	}
}

func TestWorldStepDoesNotMutatePreviousGeneration(t *testing.T) {
	world := NewWorld(10, 10)
	world.Current().AddBlinker(3, 4)
	prev := world.Current()
	snapshot := NewGrid(10, 10)
	copy(snapshot.cells, prev.cells)

	world.Step()
	if world.Current() == prev {
		t.Fatal("Step should adopt the scratch buffer as the current grid")
	}
	if !prev.Equal(snapshot) {
		t.Fatal("Step wrote into the generation it was reading from")
	}
}

func TestWorldSeedResetsGeneration(t *testing.T) {
	world := NewWorld(8, 8)
	world.Step()
	world.Step()
	world.Seed(NewRand(9), 0.5)
	if world.Generation() != 0 {
		t.Fatalf("generation after Seed = %d", world.Generation())
	}
	if world.Current().CountLivingCells() == 0 {
		t.Fatal("Seed at density 0.5 produced an empty grid")
	}
}
