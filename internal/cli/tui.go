package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	rubiks "github.com/ZackJorquera/Rubiks-cube-solver"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive solve console",
	Long: `Start an interactive console: type a facelet state string and the cube is
rendered and solved. 2x2x2 states use the pattern-database descent, larger
cubes a bounded depth-first search.

Keyboard shortcuts:
  Enter   - Solve the typed state
  q/Esc   - Quit (q only on an empty input line)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// Styles
var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tuiPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	tuiSolutionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	tuiErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	tuiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type solvedMsg struct {
	solution rubiks.Move
	elapsed  time.Duration
	err      error
}

// Model
type tuiModel struct {
	solver *rubiks.Solver

	input    string
	cube     string
	solution string
	errText  string
	solving  bool
	quitting bool
}

func newTUIModel(solver *rubiks.Solver) *tuiModel {
	return &tuiModel{solver: solver}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) solveCmd(state *rubiks.CubeState) tea.Cmd {
	return func() tea.Msg {
		t0 := time.Now()
		var solution rubiks.Move
		var err error
		if state.Size() == 2 {
			solution, err = m.solver.Solve2x2x2WithTable(state)
		} else {
			solution, err = m.solver.SolveDPLL(state, 15)
		}
		return solvedMsg{solution: solution, elapsed: time.Since(t0), err: err}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if m.input == "" {
				m.quitting = true
				return m, tea.Quit
			}
			m.input += "q"
		case "enter":
			if m.solving || m.input == "" {
				return m, nil
			}
			state, err := rubiks.FromStateString(strings.TrimSpace(m.input))
			m.input = ""
			if err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.cube = RenderState(state)
			m.solution = ""
			m.errText = ""
			m.solving = true
			return m, m.solveCmd(state)
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			}
		}

	case solvedMsg:
		m.solving = false
		switch {
		case msg.err == nil:
			m.solution = fmt.Sprintf("Solution (%d turns, %s): %s",
				msg.solution.Len(), formatDuration(msg.elapsed), msg.solution)
		case errors.Is(msg.err, rubiks.ErrUnsolvable):
			m.solution = "No Solution"
		default:
			m.errText = msg.err.Error()
		}
	}

	return m, nil
}

func (m *tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(tuiTitleStyle.Render("rubiks solver"))
	b.WriteString("\n\n")

	if m.cube != "" {
		b.WriteString(m.cube)
		b.WriteByte('\n')
	}

	if m.solving {
		b.WriteString("Solving...\n")
	} else if m.solution != "" {
		b.WriteString(tuiSolutionStyle.Render(m.solution))
		b.WriteByte('\n')
	}
	if m.errText != "" {
		b.WriteString(tuiErrorStyle.Render(m.errText))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(tuiPromptStyle.Render("Input cube state: "))
	b.WriteString(m.input)
	b.WriteString("\n\n")
	b.WriteString(tuiHelpStyle.Render("Enter solve  •  Esc quit"))
	b.WriteByte('\n')
	return b.String()
}

func runTUI(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	tables, err := loadTables(db)
	if err != nil {
		return err
	}
	solver := rubiks.NewSolverWithTables(tables)

	p := tea.NewProgram(newTUIModel(solver))
	_, err = p.Run()
	return err
}
