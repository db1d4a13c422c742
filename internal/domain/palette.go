package domain

import (
	"fmt"
	"slices"
)

var defaultSymbols = []string{
	"🌸", "🌺", "🌻", "🌷", "🌹",
	"🥀", "🏵️", "💐", "🌼", "🪷",
	"🪻", "🌴", "🌵", "🌾", "🌿",
}

// Palette is an ordered set of distinct symbols. The zero value is empty.
type Palette struct {
	symbols []string
}

func DefaultPalette() Palette {
	return Palette{symbols: slices.Clone(defaultSymbols)}
}

func NewPalette(symbols ...string) (Palette, error) {
	if len(symbols) == 0 {
		return Palette{}, ErrEmptyPalette
	}

	seen := make(map[string]struct{}, len(symbols))
	for i, symbol := range symbols {
		if symbol == "" {
			return Palette{}, fmt.Errorf("symbol %d: %w", i, ErrEmptySymbol)
		}
		if _, ok := seen[symbol]; ok {
			return Palette{}, fmt.Errorf("symbol %q: %w", symbol, ErrDuplicateSymbol)
		}
		seen[symbol] = struct{}{}
	}

	return Palette{symbols: slices.Clone(symbols)}, nil
}

func (p Palette) Len() int {
	return len(p.symbols)
}

func (p Palette) At(i int) string {
	return p.symbols[i]
}

func (p Palette) Contains(symbol string) bool {
	return slices.Contains(p.symbols, symbol)
}

// Symbols returns a copy of the palette contents.
func (p Palette) Symbols() []string {
	return slices.Clone(p.symbols)
}
