package model

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

// TerminalRenderer draws generations to a terminal
type TerminalRenderer struct {
	out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, clearScreen); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

// Display renders the grid followed by an empty line
func (r *TerminalRenderer) Display(g *Grid) error {
	if _, err := g.WriteTo(r.out); err != nil {
		return errors.Wrap(err, "[Display] failed to render grid")
	}
	if _, err := fmt.Fprintln(r.out); err != nil {
		return errors.Wrap(err, "[Display] failed to render grid")
	}
	return nil
}

// Frame clears the screen and displays g
func (r *TerminalRenderer) Frame(g *Grid) error {
	if err := r.Clear(); err != nil {
		return err
	}
	return r.Display(g)
}
