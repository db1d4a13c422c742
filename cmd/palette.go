package cmd

import (
	"fmt"

	palettetoml "github.com/bnema/flowers-cli/internal/adapters/palette/toml"
	"github.com/spf13/cobra"
)

func newPaletteCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the symbols flowers are drawn from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.newService(nil)
			if err != nil {
				return err
			}

			palette, err := service.Palette(cmd.Context())
			if err != nil {
				return err
			}

			for i, symbol := range palette.Symbols() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, symbol)
			}

			return nil
		},
	}

	cmd.AddCommand(
		newPaletteExportCmd(app),
	)

	return cmd
}

func newPaletteExportCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active palette as a TOML palette file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.newService(nil)
			if err != nil {
				return err
			}

			palette, err := service.Palette(cmd.Context())
			if err != nil {
				return err
			}

			data, err := palettetoml.Encode(palette, name)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "default", "name recorded in the exported file")

	return cmd
}
