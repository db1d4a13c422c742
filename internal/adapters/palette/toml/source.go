package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/flowers-cli/internal/domain"
	"github.com/bnema/flowers-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// Source loads a palette from a TOML file. An empty path selects the
// built-in palette.
type Source struct {
	path string
}

var _ ports.PaletteSource = (*Source)(nil)

func NewSource(path string) (*Source, error) {
	if path == "" {
		return &Source{}, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve palette path: %w", err)
	}

	return &Source{path: filepath.Clean(absPath)}, nil
}

func (s *Source) Load(ctx context.Context) (domain.Palette, error) {
	if err := ctx.Err(); err != nil {
		return domain.Palette{}, err
	}

	if s.path == "" {
		return domain.DefaultPalette(), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Palette{}, fmt.Errorf("%s: %w", s.path, domain.ErrPaletteNotFound)
		}
		return domain.Palette{}, fmt.Errorf("read palette file: %w", err)
	}

	return Decode(data)
}

func Decode(data []byte) (domain.Palette, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Palette{}, fmt.Errorf("decode palette file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Palette{}, err
	}

	palette, err := domain.NewPalette(file.Symbols...)
	if err != nil {
		return domain.Palette{}, fmt.Errorf("invalid palette file: %w", err)
	}

	return palette, nil
}

func Encode(palette domain.Palette, name string) ([]byte, error) {
	file := fileSchema{Name: name, Symbols: palette.Symbols()}
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode palette file: %w", err)
	}

	return data, nil
}
