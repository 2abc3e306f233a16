package model

const (
	// LiveGlyph is a black square.
	LiveGlyph = "■"
	// DeadGlyph is a white square.
	DeadGlyph = "□"
)

// Cell is a single unit of the grid. The zero value is a dead cell.
type Cell struct {
	alive bool
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.alive
}

// SetAlive sets the cell state
func (c *Cell) SetAlive(alive bool) {
	c.alive = alive
}

// Glyph returns the one-character representation of the cell
func (c Cell) Glyph() string {
	if c.alive {
		return LiveGlyph
	}
	return DeadGlyph
}

// String implements fmt.Stringer with the cell glyph
func (c Cell) String() string {
	return c.Glyph()
}
