package report

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// reportReadyMsg carries the styled report back into the model.
type reportReadyMsg struct {
	styled string
}

type model struct {
	report   string
	renderer *lipgloss.Renderer
	output   string
}

func newModel(report string, renderer *lipgloss.Renderer) model {
	return model{report: report, renderer: renderer}
}

func (m model) Init() tea.Cmd {
	report, s := m.report, newStyles(m.renderer)
	return func() tea.Msg {
		return reportReadyMsg{styled: renderView(report, s)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportReadyMsg:
		m.output = msg.styled
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render returns the report styled for w. When w is not a colour terminal
// the text is returned unchanged.
func Render(w io.Writer, report string) (string, error) {
	p := tea.NewProgram(
		newModel(report, lipgloss.NewRenderer(w)),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
