package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/bnema/flowers-cli/internal/adapters/render/envelope"
	"github.com/bnema/flowers-cli/internal/application"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

// execute runs root and makes sure every failure ends up as an envelope on
// stdout, including errors cobra raises before a run starts.
func execute(root *cobra.Command, args []string) error {
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, guardNegativeArgs(args)...))

	err := root.Execute()
	if err == nil {
		return nil
	}

	var reported reportedError
	if errors.As(err, &reported) {
		return err
	}

	env := application.NewFailureEnvelope(time.Now(), err)
	if writeErr := envelope.Write(root.OutOrStdout(), env, envelope.FormatJSON); writeErr != nil {
		return errors.Join(err, writeErr)
	}

	return err
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(wireApp)
}

func newRootCmdWith(wire func(*pflag.FlagSet) (*app, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowers <num1> <num2>",
		Short: "Print a random bouquet sized by the sum of two numbers",
		Long: "flowers validates two whole numbers between 0 and 1000, draws that many random flower symbols " +
			"in total, and prints a JSON summary on stdout plus a readable report on stderr.",
		Example:       "  flowers 3 5\n  flowers 10 2 --format yaml\n  flowers 4 4 --seed 7",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("palette", "", "palette TOML file to draw symbols from (default: built-in palette)")
	flags.String("format", "json", "envelope format on stdout (json, yaml)")
	flags.String("log-level", "disabled", "log level (debug, info, warn, error, disabled)")
	rootCmd.Flags().Uint64("seed", 0, "seed the generator for a reproducible bouquet")

	app, err := wire(flags)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		initLogging(cmd.ErrOrStderr(), app.logLevel())
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runFlowers(cmd, app, args)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPaletteCmd(app),
	)

	return rootCmd
}

// reportedError marks a failure whose envelope has already been written.
type reportedError struct {
	err error
}

func (e reportedError) Error() string {
	return e.err.Error()
}

func (e reportedError) Unwrap() error {
	return e.err
}
