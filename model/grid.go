package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/cgol/rules"
)

// Grid is a toroidal board of cells stored row-major in a flat buffer
type Grid struct {
	width  int
	height int
	cells  []bool
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resizes the grid to new dimensions, leaving every cell dead
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	if cap(g.cells) < width*height {
		g.cells = make([]bool, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if g.inBounds(x, y) {
		g.cells[g.index(x, y)] = alive
	}
}

// Get returns the state of a cell, out of range cells read as dead
func (g *Grid) Get(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[g.index(x, y)]
}

// wrap maps any coordinate onto the torus
func (g *Grid) wrap(x, y int) (int, int) {
	return (x%g.width + g.width) % g.width, (y%g.height + g.height) % g.height
}

// CountNeighbors counts the live cells among the 8 cells surrounding (x, y),
// wrapping around both edges
func (g *Grid) CountNeighbors(x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.width) % g.width
			ny := (y + dy + g.height) % g.height
			if g.cells[g.index(nx, ny)] {
				count++
			}
		}
	}
	return
}

// NextGenerationInto writes the successor of g into next. Neighbor counts are
// read only from g, so every cell transitions from the same generation.
// next is resized first if its dimensions differ from g.
func (g *Grid) NextGenerationInto(next *Grid) {
	if next.width != g.width || next.height != g.height {
		next.Reset(g.width, g.height)
	}

	for y := range g.height {
		for x := range g.width {
			i := g.index(x, y)
			next.cells[i] = rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cells[i])
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Randomize sets each cell alive independently with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
}
