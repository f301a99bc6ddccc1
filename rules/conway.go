package rules

const (
	survivalLow  = 2
	survivalHigh = 3
	birthCount   = 3
)

/*
ApplyConwayRules returns the next state of a cell under B3/S23.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == survivalLow || neighbors == survivalHigh
	}
	return neighbors == birthCount
}
