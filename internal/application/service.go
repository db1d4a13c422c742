package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/flowers-cli/internal/domain"
	"github.com/bnema/flowers-cli/internal/ports"
	"github.com/rs/zerolog/log"
)

var ErrInternalFault = errors.New("internal fault")

type Service struct {
	palettes ports.PaletteSource
	picker   domain.IndexPicker
}

func NewService(palettes ports.PaletteSource, picker domain.IndexPicker) *Service {
	if palettes == nil {
		palettes = ports.DefaultPaletteSource{}
	}
	if picker == nil {
		picker = ports.SystemRandom{}
	}

	return &Service{
		palettes: palettes,
		picker:   picker,
	}
}

// Run validates args, draws the flowers and builds the report. Validation
// errors are returned untouched so callers can match domain.ErrInvalidInput.
func (s *Service) Run(ctx context.Context, args []string) (Result, error) {
	operands, err := domain.ValidateInput(args)
	if err != nil {
		log.Debug().Err(err).Strs("args", args).Msg("input rejected")
		return Result{}, err
	}

	palette, err := s.palettes.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load palette: %w", err)
	}

	flowers, err := domain.Generate(operands.Total(), palette, s.picker)
	if err != nil {
		return Result{}, fmt.Errorf("generate flowers: %w", err)
	}

	log.Debug().
		Int("num1", operands.Num1).
		Int("num2", operands.Num2).
		Int("palette_size", palette.Len()).
		Msg("flowers generated")

	return Result{
		Input:   operands,
		Flowers: flowers,
		Tally:   domain.NewTally(flowers),
		Report:  domain.FormatReport(flowers, operands.Num1, operands.Num2),
	}, nil
}

func (s *Service) Palette(ctx context.Context) (domain.Palette, error) {
	palette, err := s.palettes.Load(ctx)
	if err != nil {
		return domain.Palette{}, fmt.Errorf("load palette: %w", err)
	}
	return palette, nil
}
