package model

import "math/rand/v2"

// World holds the authoritative generation and the scratch buffer its
// successor is computed into. Step swaps the two, so the current grid is
// never written to while a generation is being computed.
type World struct {
	current    *Grid
	next       *Grid
	generation int
}

// NewWorld creates a world of dead cells with the specified dimensions
func NewWorld(width, height int) *World {
	return &World{
		current: NewGrid(width, height),
		next:    NewGrid(width, height),
	}
}

// NewWorldFromGrid adopts g as the current generation
func NewWorldFromGrid(g *Grid) *World {
	return &World{
		current: g,
		next:    NewGrid(g.width, g.height),
	}
}

// Seed randomizes the current generation and resets the generation counter
func (w *World) Seed(rng *rand.Rand, density float64) {
	w.current.Randomize(rng, density)
	w.generation = 0
}

// Current returns the authoritative grid. Callers must not keep it across Step.
func (w *World) Current() *Grid {
	return w.current
}

// Generation returns how many steps have been applied since seeding
func (w *World) Generation() int {
	return w.generation
}

// Step advances the world by one generation
func (w *World) Step() {
	w.current.NextGenerationInto(w.next)
	w.current, w.next = w.next, w.current
	w.generation++
}
