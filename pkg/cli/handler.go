package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/m-mizutani/slackpost/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func newLogger(cmd *cli.Command, w io.Writer) *slog.Logger {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// loadEnvFile applies a dotenv file to the process environment. Variables
// that are already set are not overridden.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return goerr.Wrap(domain.ErrConfiguration.Wrap(err), "failed to load env file", goerr.V("path", path))
	}
	return nil
}

func RunSend(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd, stderr(cmd))
	ctx = ctxlog.With(ctx, logger)

	config := ConfigFromCommand(cmd)
	if config.Channel == "" {
		return goerr.Wrap(domain.ErrMissingChannel, "--channel is not set")
	}

	text, blocks, err := readInputs(config, stdin(cmd))
	if err != nil {
		return err
	}

	req, err := model.NewMessageRequest(config.ToMessageInput(text, blocks))
	if err != nil {
		return err
	}

	if err := loadEnvFile(config.EnvFile); err != nil {
		return err
	}

	token, source, err := usecase.NewTokenResolver().Resolve(ctx)
	if err != nil {
		return err
	}
	logger.Debug("using token", slog.String("source", source))

	client := usecase.NewSlackClient(ctx, token, usecase.WithAPIURL(config.APIURL))
	sender := usecase.NewMessageSender(client)

	result, err := sender.Send(ctx, req)
	if err != nil {
		return err
	}

	display := NewDisplay(stdout(cmd), stderr(cmd))
	display.ShowWarnings(result.Warnings)
	if cmd.Bool("verbose") {
		display.ShowResult(result)
	}

	return nil
}
