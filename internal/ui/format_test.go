package ui

import (
	"slices"
	"testing"

	"lightsout/internal/core"
)

func TestFormatSnapshot(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{{Label: "Rows", Value: "5"}}},
		{Name: "Progress", Params: []core.Parameter{{Label: "Lit", Value: "3"}, {Label: "Moves", Value: "1"}}},
	}}
	got := formatSnapshot(snap)
	want := []string{"BOARD", "Rows: 5", "", "PROGRESS", "Lit: 3", "Moves: 1"}
	if !slices.Equal(got, want) {
		t.Fatalf("formatSnapshot = %q, expected %q", got, want)
	}
	if lines := formatSnapshot(core.ParameterSnapshot{}); len(lines) != 0 {
		t.Fatalf("empty snapshot produced %q", lines)
	}
}
