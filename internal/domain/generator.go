package domain

// IndexPicker draws a uniform index in [0, n).
type IndexPicker interface {
	IntN(n int) int
}

// Generate draws count symbols from palette, independently and with replacement.
func Generate(count int, palette Palette, picker IndexPicker) ([]string, error) {
	if palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}

	sequence := make([]string, count)
	for i := range sequence {
		sequence[i] = palette.At(picker.IntN(palette.Len()))
	}

	return sequence, nil
}
