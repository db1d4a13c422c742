package domain

import (
	"fmt"
	"strings"
)

const (
	ReportTitle = "🌺 Flower Report 🌺"
	ruleWidth   = 40
)

// ReportRule frames the report above and below.
var ReportRule = strings.Repeat("━", ruleWidth)

func FormatReport(sequence []string, num1, num2 int) string {
	total := num1 + num2

	var b strings.Builder
	b.WriteString(ReportTitle + "\n")
	b.WriteString(ReportRule + "\n")
	fmt.Fprintf(&b, "input: %d + %d = %d\n", num1, num2, total)
	b.WriteString("\nflowers:\n")
	b.WriteString(strings.Join(sequence, "") + "\n")
	b.WriteString("\ncounts:\n")
	for _, entry := range NewTally(sequence).Entries() {
		fmt.Fprintf(&b, "  %s × %d\n", entry.Symbol, entry.Count)
	}
	fmt.Fprintf(&b, "\ntotal: %d flowers\n", total)
	b.WriteString(ReportRule)

	return b.String()
}
