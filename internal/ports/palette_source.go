package ports

import (
	"context"

	"github.com/bnema/flowers-cli/internal/domain"
)

type PaletteSource interface {
	Load(ctx context.Context) (domain.Palette, error)
}

// DefaultPaletteSource always yields the built-in palette.
type DefaultPaletteSource struct{}

func (DefaultPaletteSource) Load(ctx context.Context) (domain.Palette, error) {
	if err := ctx.Err(); err != nil {
		return domain.Palette{}, err
	}
	return domain.DefaultPalette(), nil
}
