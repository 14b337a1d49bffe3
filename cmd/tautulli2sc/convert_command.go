package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gamax42/tautulli-to-senscritique/internal/convert"
	"github.com/Gamax42/tautulli-to-senscritique/internal/logging"
	"github.com/Gamax42/tautulli-to-senscritique/internal/prompt"
)

type convertFlags struct {
	movies    string
	tvShows   string
	output    string
	logLevel  string
	logFormat string
}

func runConvert(cmd *cobra.Command, ctx *commandContext, flags convertFlags) error {
	if strings.TrimSpace(flags.movies) == "" && strings.TrimSpace(flags.tvShows) == "" {
		return errors.New("at least one of --movies or --tv-shows must be provided")
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  firstNonEmpty(flags.logLevel, cfg.Logging.Level),
		Format: firstNonEmpty(flags.logFormat, cfg.Logging.Format),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	var confirmer prompt.Confirmer
	if cfg.Prompt.AssumeDefault {
		confirmer = prompt.AssumeDefault{}
	} else {
		confirmer = prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	result, err := convert.Run(convert.Options{
		MoviesPath:  flags.movies,
		TVShowsPath: flags.tvShows,
		OutputPath:  firstNonEmpty(flags.output, cfg.Output.Path),
		Confirmer:   confirmer,
		Logger:      logger,
		Out:         cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if len(result.Tables) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(result))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
