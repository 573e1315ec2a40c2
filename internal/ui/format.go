package ui

import (
	"strings"

	"lightsout/internal/core"
)

// formatSnapshot lays out parameter groups as HUD text lines.
func formatSnapshot(snap core.ParameterSnapshot) []string {
	var lines []string
	for i, g := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.ToUpper(g.Name))
		for _, p := range g.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}
