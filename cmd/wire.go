package cmd

import (
	"fmt"
	"io"
	"time"

	palettetoml "github.com/bnema/flowers-cli/internal/adapters/palette/toml"
	"github.com/bnema/flowers-cli/internal/adapters/render/envelope"
	reportadapter "github.com/bnema/flowers-cli/internal/adapters/render/report"
	"github.com/bnema/flowers-cli/internal/application"
	"github.com/bnema/flowers-cli/internal/config"
	"github.com/bnema/flowers-cli/internal/domain"
	"github.com/bnema/flowers-cli/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type app struct {
	settings       *viper.Viper
	clock          ports.Clock
	paletteSource  func(path string) (ports.PaletteSource, error)
	reportRenderer func(w io.Writer, report string) (string, error)
}

var flagBindings = []struct {
	key  string
	flag string
}{
	{key: config.PalettePathKey, flag: "palette"},
	{key: config.OutputFormatKey, flag: "format"},
	{key: config.LogLevelKey, flag: "log-level"},
}

func wireApp(flags *pflag.FlagSet) (*app, error) {
	settings, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for _, binding := range flagBindings {
		if err := settings.BindPFlag(binding.key, flags.Lookup(binding.flag)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", binding.flag, err)
		}
	}

	return &app{
		settings:       settings,
		clock:          ports.SystemClock{},
		paletteSource:  newPaletteSource,
		reportRenderer: reportadapter.Render,
	}, nil
}

func newPaletteSource(path string) (ports.PaletteSource, error) {
	source, err := palettetoml.NewSource(path)
	if err != nil {
		return nil, err
	}
	return source, nil
}

func (a *app) newService(picker domain.IndexPicker) (*application.Service, error) {
	palettes, err := a.paletteSource(a.settings.GetString(config.PalettePathKey))
	if err != nil {
		return nil, fmt.Errorf("wire palette source: %w", err)
	}

	return application.NewService(palettes, picker), nil
}

func (a *app) outputFormat() (envelope.Format, error) {
	return envelope.ParseFormat(a.settings.GetString(config.OutputFormatKey))
}

func (a *app) logLevel() string {
	return a.settings.GetString(config.LogLevelKey)
}

func (a *app) now() time.Time {
	return a.clock.Now()
}
