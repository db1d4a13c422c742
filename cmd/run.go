package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/flowers-cli/internal/adapters/render/envelope"
	"github.com/bnema/flowers-cli/internal/application"
	"github.com/bnema/flowers-cli/internal/domain"
	"github.com/bnema/flowers-cli/internal/ports"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// runFlowers is the boundary of a run: validation errors and panics alike
// leave as a failure envelope.
func runFlowers(cmd *cobra.Command, app *app, args []string) (err error) {
	format := envelope.FormatJSON
	defer func() {
		if r := recover(); r != nil {
			err = reportFailure(cmd, app, format, &application.FaultError{Cause: r})
		}
	}()

	format, err = app.outputFormat()
	if err != nil {
		return reportFailure(cmd, app, envelope.FormatJSON, err)
	}

	service, err := app.newService(pickerFor(cmd))
	if err != nil {
		return reportFailure(cmd, app, format, err)
	}

	result, err := service.Run(cmd.Context(), args)
	if err != nil {
		return reportFailure(cmd, app, format, err)
	}

	env := application.NewSuccessEnvelope(app.now(), result)
	if err := envelope.Write(cmd.OutOrStdout(), env, format); err != nil {
		return reportedError{err: fmt.Errorf("write envelope: %w", err)}
	}

	stderr := cmd.ErrOrStderr()
	rendered, err := app.reportRenderer(stderr, result.Report)
	if err != nil {
		log.Warn().Err(err).Msg("styled report unavailable, falling back to plain text")
		rendered = result.Report
	}

	// The success envelope is already out; a lost report must not add a
	// second envelope to stdout.
	if _, err := fmt.Fprintf(stderr, "\n%s\n\n", rendered); err != nil {
		return reportedError{err: fmt.Errorf("write report: %w", err)}
	}

	return nil
}

func reportFailure(cmd *cobra.Command, app *app, format envelope.Format, cause error) error {
	log.Debug().
		Err(cause).
		Bool("validation", errors.Is(cause, domain.ErrInvalidInput)).
		Bool("fault", errors.Is(cause, application.ErrInternalFault)).
		Msg("run failed")

	env := application.NewFailureEnvelope(app.now(), cause)
	if err := envelope.Write(cmd.OutOrStdout(), env, format); err != nil {
		return reportedError{err: errors.Join(cause, fmt.Errorf("write failure envelope: %w", err))}
	}

	return reportedError{err: cause}
}

func pickerFor(cmd *cobra.Command) domain.IndexPicker {
	if !cmd.Flags().Changed("seed") {
		return ports.SystemRandom{}
	}

	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return ports.SystemRandom{}
	}

	return ports.SeededRandom(seed)
}
