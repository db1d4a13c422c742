package report

import (
	"strings"

	"github.com/bnema/flowers-cli/internal/domain"
)

// renderView styles each line of the plain report without changing its text.
func renderView(report string, s styles) string {
	lines := strings.Split(report, "\n")
	for i, line := range lines {
		lines[i] = styleLine(line, s)
	}

	return strings.Join(lines, "\n")
}

func styleLine(line string, s styles) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case line == "":
		return line
	case line == domain.ReportTitle:
		return s.title.Render(line)
	case line == domain.ReportRule:
		return s.rule.Render(line)
	case strings.HasPrefix(line, "input: "):
		return s.label.Render("input: ") + s.sum.Render(strings.TrimPrefix(line, "input: "))
	case line == "flowers:" || line == "counts:":
		return s.label.Render(line)
	case strings.HasPrefix(line, "total: "):
		return s.total.Render(line)
	case strings.Contains(trimmed, " × "):
		return s.count.Render(line)
	default:
		return s.flowers.Render(line)
	}
}
