package model

import "testing"

func TestCell(t *testing.T) {
	var c Cell
	if c.IsAlive() {
		t.Fatal("zero value cell should be dead")
	}
	if got := c.Glyph(); got != DeadGlyph {
		t.Errorf("dead glyph = %q, want %q", got, DeadGlyph)
	}

	c.SetAlive(true)
	if !c.IsAlive() {
		t.Fatal("cell should be alive after SetAlive(true)")
	}
	if got := c.String(); got != LiveGlyph {
		t.Errorf("live glyph = %q, want %q", got, LiveGlyph)
	}
}
