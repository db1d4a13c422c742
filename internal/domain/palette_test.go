package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteHasFifteenDistinctSymbols(t *testing.T) {
	palette := DefaultPalette()
	require.Equal(t, 15, palette.Len())

	seen := map[string]bool{}
	for _, symbol := range palette.Symbols() {
		assert.False(t, seen[symbol], "duplicate %q", symbol)
		seen[symbol] = true
	}
	assert.Equal(t, "🌸", palette.At(0))
	assert.Equal(t, "🌿", palette.At(14))
}

func TestDefaultPaletteCannotBeMutatedThroughSymbols(t *testing.T) {
	symbols := DefaultPalette().Symbols()
	symbols[0] = "x"

	assert.Equal(t, "🌸", DefaultPalette().At(0))
}

func TestNewPaletteCopiesInput(t *testing.T) {
	input := []string{"a", "b"}
	palette, err := NewPalette(input...)
	require.NoError(t, err)

	input[0] = "z"
	assert.Equal(t, []string{"a", "b"}, palette.Symbols())
}

func TestNewPaletteRejectsInvalidSets(t *testing.T) {
	_, err := NewPalette()
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = NewPalette("a", "")
	assert.ErrorIs(t, err, ErrEmptySymbol)

	_, err = NewPalette("a", "b", "a")
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
}
