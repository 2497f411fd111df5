package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// NewTokenCommand creates a new token command
func NewTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the Slack API token",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Store a token in ~/.slack/api-token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "token",
						Usage: "Token to store (reads from stdin if omitted)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path for the token file",
					},
				},
				Action: tokenSaveAction,
			},
			{
				Name:   "check",
				Usage:  "Show which source provides the token",
				Action: tokenCheckAction,
			},
		},
	}
}

func tokenSaveAction(ctx context.Context, cmd *cli.Command) error {
	token := cmd.String("token")
	if token == "" {
		r := stdin(cmd)
		if isTerminal(r) {
			return goerr.Wrap(domain.ErrConfiguration, "no --token given and nothing piped to stdin")
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return goerr.Wrap(err, "failed to read stdin")
		}
		token = string(data)
	}

	storage := usecase.NewTokenStorage()
	if path := cmd.String("output"); path != "" {
		storage = usecase.NewTokenStorageAt(path)
	}

	if err := storage.SaveToken(ctx, strings.TrimSpace(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	_, _ = fmt.Fprintf(stdout(cmd), "Token saved to %s\n", storage.Path())
	return nil
}

func tokenCheckAction(ctx context.Context, cmd *cli.Command) error {
	ctx = ctxlog.With(ctx, newLogger(cmd, stderr(cmd)))

	if err := loadEnvFile(cmd.String("env-file")); err != nil {
		return err
	}

	token, source, err := usecase.NewTokenResolver().Resolve(ctx)
	if err != nil {
		return err
	}

	NewDisplay(stdout(cmd), stderr(cmd)).ShowTokenSource(source, token)
	return nil
}
