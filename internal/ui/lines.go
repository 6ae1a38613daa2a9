package ui

import (
	"strings"

	"eca/internal/core"
)

// CaptionLines formats a snapshot as one caption line per parameter group,
// e.g. "Rule 30   Boundary wrap".
func CaptionLines(s core.ParameterSnapshot) []string {
	lines := make([]string, 0, len(s.Groups))
	for _, g := range s.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, "   "))
		}
	}
	return lines
}
