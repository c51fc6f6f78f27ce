package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hecke/matrix"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleKey  = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCell = lipgloss.NewStyle().Foreground(colorCyan)
)

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printMatrix writes one matrix row per line, labelled by the element
// name of that row.
func printMatrix(w io.Writer, names []string, m *matrix.Bool) {
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	label := lipgloss.NewStyle().Foreground(colorGray).Width(width)
	rows := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	for i, row := range rows {
		fmt.Fprintln(w, label.Render(names[i])+" "+StyleValue.Render(row))
	}
}

// printCells writes each cell as "{a, b, c}" on its own line.
func printCells(w io.Writer, cells [][]string) {
	for _, cell := range cells {
		fmt.Fprintln(w, "  "+StyleDim.Render("{")+styleCell.Render(strings.Join(cell, ", "))+StyleDim.Render("}"))
	}
}
