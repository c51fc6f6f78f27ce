package hecke

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// Filtration renders c as one line per degree present, lowest degree first.
// A line lists, in canonical order, the names of the elements whose
// coordinate has a term of that degree, separated by single spaces. Lines
// are centred to the widest one (extra padding goes right, except that an
// odd width with odd padding puts it left) and each ends in "\n".
func (a *Algebra) Filtration(c Coordinates) string {
	byDeg := make(map[int][]string)
	for x, p := range c {
		for _, d := range p.Degrees() {
			byDeg[d] = append(byDeg[d], a.group.At(x).Name())
		}
	}
	if len(byDeg) == 0 {
		return ""
	}

	degrees := slices.Sorted(maps.Keys(byDeg))
	lines := make([]string, len(degrees))
	width := 0
	for i, d := range degrees {
		lines[i] = strings.Join(byDeg[d], " ")
		width = max(width, utf8.RuneCountInString(lines[i]))
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(center(line, width))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// center pads s with spaces to width runes.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad/2 + (pad & width & 1)

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// KLFiltration decomposes e in the KL basis and renders the filtration.
func (e *Element) KLFiltration() (string, error) {
	c, err := e.InKLBasis()
	if err != nil {
		return "", err
	}

	return e.alg.Filtration(c), nil
}

// DualKLFiltration decomposes e in the dual KL basis and renders the
// filtration.
func (e *Element) DualKLFiltration() (string, error) {
	c, err := e.InDualKLBasis()
	if err != nil {
		return "", err
	}

	return e.alg.Filtration(c), nil
}
