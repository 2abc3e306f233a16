package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// DefaultProbability is the chance of a cell starting alive under random seeding
	DefaultProbability = 0.2

	cellSeparator = " "
	rowSeparator  = "\n"
	liveInput     = '1'
)

// ErrInvalidDimensions is returned when a grid is requested with a non-positive size
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// RandomSource supplies uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// Grid is a bounded rectangle of cells evolved one generation at a time.
//
// The grid owns two buffers. The next generation is always computed into the
// inactive buffer from the current one and the two are swapped afterwards, so
// no cell ever sees an already-updated neighbor.
type Grid struct {
	rows       int
	cols       int
	cells      [][]Cell
	next       [][]Cell
	generation int
}

// NewGrid creates a new grid with every cell dead
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
		next:  newCells(rows, cols),
	}, nil
}

func newCells(rows, cols int) [][]Cell {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return cells
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Generation returns how many updates have been applied
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive returns the state of a cell. Coordinates outside the grid are dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col].IsAlive()
}

// Set sets a cell to alive (true) or dead (false). Coordinates outside the grid are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col].SetAlive(alive)
	}
}

// InitializeRandom overwrites every cell, making it alive with the given probability
func (g *Grid) InitializeRandom(src RandomSource, probability float64) {
	for i := range g.rows {
		for j := range g.cols {
			g.cells[i][j].SetAlive(src.Float64() < probability)
		}
	}
}

// InitializeFromInput marks a cell alive for every '1' in lines, where line i
// describes row i and its character j describes column j. Short lines,
// missing lines and extra input are tolerated; uncovered cells keep their state.
func (g *Grid) InitializeFromInput(lines []string) {
	for i := 0; i < g.rows && i < len(lines); i++ {
		line := []rune(lines[i])
		for j := 0; j < g.cols && j < len(line); j++ {
			if line[j] == liveInput {
				g.cells[i][j].SetAlive(true)
			}
		}
	}
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of (row, col).
// The grid does not wrap: neighbors past an edge do not exist.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c].IsAlive() {
				count++
			}
		}
	}

	return count
}

// computeRows writes the successor of rows [startRow, endRow) into the inactive buffer
func (g *Grid) computeRows(startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		for j := range g.cols {
			g.next[i][j].SetAlive(rules.ApplyConwayRules(g.CountLiveNeighbors(i, j), g.cells[i][j].IsAlive()))
		}
	}
}

func (g *Grid) swap() {
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// Update advances the grid by one generation
func (g *Grid) Update() {
	g.computeRows(0, g.rows)
	g.swap()
}

// UpdateParallel advances the grid by one generation, splitting the rows
// between workers. If ctx is cancelled before every row is computed the grid
// is left on its current generation and the context error is returned.
func (g *Grid) UpdateParallel(ctx context.Context, workers int) error {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "[UpdateParallel] cancelled")
		}
		g.Update()
		return nil
	}

	var (
		eg, egCtx     = errgroup.WithContext(ctx)
		numWorkers    = min(workers, g.rows)
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				g.computeRows(row, row+1)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrapf(err, "[UpdateParallel] generation %d", g.generation+1)
	}

	g.swap()
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j].IsAlive() {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (g *Grid) Hash() string {
	h := md5.New()
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j].IsAlive() {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Render returns the grid as text: one line per row, glyphs separated by a space
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols*(len(LiveGlyph)+len(cellSeparator)) + len(rowSeparator)))
	for i := range g.rows {
		for j := range g.cols {
			if j > 0 {
				sb.WriteString(cellSeparator)
			}
			sb.WriteString(g.cells[i][j].Glyph())
		}
		sb.WriteString(rowSeparator)
	}
	return sb.String()
}

// WriteTo writes the rendered grid to w
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Render())
	if err != nil {
		return int64(n), errors.Wrap(err, "[WriteTo] failed to write grid")
	}
	return int64(n), nil
}
