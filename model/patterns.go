package model

// setWrapped sets a cell, wrapping coordinates around the torus
func (g *Grid) setWrapped(x, y int, alive bool) {
	x, y = g.wrap(x, y)
	g.cells[g.index(x, y)] = alive
}

// AddBlock adds a 2x2 block still life with its top-left cell at the given position
func (g *Grid) AddBlock(startX, startY int) {
	for dy := range 2 {
		for dx := range 2 {
			g.setWrapped(startX+dx, startY+dy, true)
		}
	}
}

// AddBlinker adds a horizontal blinker oscillator starting at the given position
func (g *Grid) AddBlinker(startX, startY int) {
	for dx := range 3 {
		g.setWrapped(startX+dx, startY, true)
	}
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.setWrapped(startX+x, startY+y, cell)
		}
	}
}
