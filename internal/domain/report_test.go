package domain

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTallyCountsInFirstSeenOrder(t *testing.T) {
	tally := NewTally([]string{"🌸", "🌺", "🌸", "🌻", "🌸"})

	assert.Equal(t, []TallyEntry{
		{Symbol: "🌸", Count: 3},
		{Symbol: "🌺", Count: 1},
		{Symbol: "🌻", Count: 1},
	}, tally.Entries())
	assert.Equal(t, 5, tally.Total())
	for _, entry := range tally.Entries() {
		assert.NotEqual(t, "🌹", entry.Symbol)
	}
}

func TestNewTallyEmpty(t *testing.T) {
	tally := NewTally(nil)
	assert.Equal(t, 0, tally.Total())
	assert.Empty(t, tally.Entries())
}

func TestTallyTotalMatchesGeneratedLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for n := 0; n <= 2000; n += 125 {
		sequence, err := Generate(n, DefaultPalette(), rng)
		require.NoError(t, err)
		assert.Equal(t, n, NewTally(sequence).Total())
	}
}

func TestFormatReportContainsAllSections(t *testing.T) {
	output := FormatReport([]string{"🌸", "🌺", "🌻"}, 1, 2)

	assert.True(t, strings.HasPrefix(output, ReportTitle))
	assert.Contains(t, output, "1 + 2 = 3")
	assert.Contains(t, output, "🌸🌺🌻")
	assert.Contains(t, output, "counts:")
	assert.Contains(t, output, "🌸 × 1")
	assert.Contains(t, output, "total: 3 flowers")
	assert.True(t, strings.HasSuffix(output, ReportRule))
}

func TestFormatReportZero(t *testing.T) {
	output := FormatReport([]string{}, 0, 0)

	assert.Contains(t, output, "0 + 0 = 0")
	assert.Contains(t, output, "total: 0 flowers")
	assert.NotContains(t, output, "×")
}

func TestFormatReportBreakdownOrder(t *testing.T) {
	output := FormatReport([]string{"🌻", "🌸", "🌸", "🌸"}, 1, 3)

	assert.Contains(t, output, "🌸 × 3")
	assert.Less(t, strings.Index(output, "🌻 × 1"), strings.Index(output, "🌸 × 3"))
	assert.Less(t, strings.Index(output, "1 + 3 = 4"), strings.Index(output, "🌻🌸🌸🌸"))
	assert.Less(t, strings.Index(output, "🌸 × 3"), strings.Index(output, "total: 4 flowers"))
}
