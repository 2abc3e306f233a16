package model

import "testing"

func TestHistoryStatus(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Status // status observed before each update
	}{
		{
			name: "extinct",
			rows: []string{"000", "010", "000"},
			want: []Status{StatusActive, StatusExtinct, StatusExtinct},
		},
		{
			name: "block",
			rows: []string{"0000", "0110", "0110", "0000"},
			want: []Status{StatusActive, StatusStable, StatusStable},
		},
		{
			name: "blinker",
			rows: []string{"000", "111", "000"},
			want: []Status{StatusActive, StatusActive, StatusOscillating, StatusOscillating},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(t, tt.rows...)
			h := NewHistory(DefaultHistorySize)
			for gen, want := range tt.want {
				if got := h.Observe(g); got != want {
					t.Errorf("generation %d: status = %s, want %s", gen, got, want)
				}
				g.Update()
			}
		})
	}
}

func TestHistoryIsBounded(t *testing.T) {
	g := newTestGrid(t, "000", "111", "000")
	h := NewHistory(2)
	for range 5 {
		h.Record(g)
		g.Update()
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	if NewHistory(0).size != DefaultHistorySize {
		t.Error("non-positive size should fall back to the default")
	}
}
