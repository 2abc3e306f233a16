package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

  - alive with fewer than 2 neighbors dies (underpopulation)
  - alive with 2 or 3 neighbors survives
  - alive with more than 3 neighbors dies (overpopulation)
  - dead with exactly 3 neighbors is born (reproduction)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
