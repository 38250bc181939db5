package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	rubiks "github.com/ZackJorquera/Rubiks-cube-solver"
)

// faceletStyles maps each facelet color to a styled two-cell block.
var faceletStyles = map[rubiks.Color]lipgloss.Style{
	rubiks.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240")),
	rubiks.Green:  lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("255")),
	rubiks.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	rubiks.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	rubiks.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("233")),
	rubiks.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("233")),
}

func renderFacelet(c rubiks.Color) string {
	return faceletStyles[c].Render(" " + c.String())
}

// RenderState draws the cube as a colored unfolded net: Up on top, the
// Left/Front/Right/Back band in the middle, Down at the bottom.
func RenderState(state *rubiks.CubeState) string {
	n := state.Size()
	nn := n * n
	var b strings.Builder

	pad := strings.Repeat(" ", 2*n+1)
	for i := 0; i < n; i++ {
		b.WriteString(pad)
		for j := 0; j < n; j++ {
			b.WriteString(renderFacelet(state.DataAt(i*n + j)))
		}
		b.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		for face := 1; face <= 4; face++ {
			if face > 1 {
				b.WriteByte(' ')
			}
			for j := 0; j < n; j++ {
				b.WriteString(renderFacelet(state.DataAt(face*nn + i*n + j)))
			}
		}
		b.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		b.WriteString(pad)
		for j := 0; j < n; j++ {
			b.WriteString(renderFacelet(state.DataAt(5*nn + i*n + j)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
