package tui

import (
	"strings"

	"geosvg/internal/batch"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// output encodes the current geometry in the footer format as one line.
func (m Model) output() string {
	if m.g == nil {
		return ""
	}
	s, err := batch.Format(m.g, m.format)
	if err != nil {
		return "error: " + err.Error()
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
