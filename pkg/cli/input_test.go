package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/slackpost/pkg/cli"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

func TestReadInputs(t *testing.T) {
	t.Run("message flag", func(t *testing.T) {
		config := &cli.Config{Message: "  hello  ", HasMessage: true}
		text, blocks, err := cli.ReadInputs(config, strings.NewReader("ignored"))
		gt.NoError(t, err)
		gt.Equal(t, text, "  hello  ")
		gt.Equal(t, len(blocks), 0)
	})

	t.Run("blank message flag", func(t *testing.T) {
		config := &cli.Config{Message: "   ", HasMessage: true}
		_, _, err := cli.ReadInputs(config, strings.NewReader("ignored"))
		gt.True(t, errors.Is(err, domain.ErrEmptyMessage))
	})

	t.Run("message from stdin is trimmed", func(t *testing.T) {
		config := &cli.Config{}
		text, _, err := cli.ReadInputs(config, strings.NewReader("\n  piped message \n"))
		gt.NoError(t, err)
		gt.Equal(t, text, "piped message")
	})

	t.Run("empty stdin", func(t *testing.T) {
		config := &cli.Config{}
		_, _, err := cli.ReadInputs(config, strings.NewReader(" \n"))
		gt.True(t, errors.Is(err, domain.ErrEmptyMessage))
	})

	t.Run("blocks from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blocks.json")
		gt.NoError(t, os.WriteFile(path, []byte(`[{"type":"divider"}]`), 0600))

		config := &cli.Config{BlocksSource: path, Message: "fallback", HasMessage: true}
		text, blocks, err := cli.ReadInputs(config, strings.NewReader(""))
		gt.NoError(t, err)
		gt.Equal(t, text, "fallback")
		gt.Equal(t, len(blocks), 1)
	})

	t.Run("blank fallback message with blocks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blocks.json")
		gt.NoError(t, os.WriteFile(path, []byte(`[{"type":"divider"}]`), 0600))

		config := &cli.Config{BlocksSource: path, Message: "   ", HasMessage: true}
		text, blocks, err := cli.ReadInputs(config, strings.NewReader(""))
		gt.NoError(t, err)
		gt.Equal(t, text, "")
		gt.Equal(t, len(blocks), 1)
	})

	t.Run("blocks from stdin without message", func(t *testing.T) {
		config := &cli.Config{BlocksSource: cli.StdinSource}
		text, blocks, err := cli.ReadInputs(config, strings.NewReader(`[{"type":"divider"},{"type":"divider"}]`))
		gt.NoError(t, err)
		gt.Equal(t, text, "")
		gt.Equal(t, len(blocks), 2)
	})

	t.Run("missing blocks file", func(t *testing.T) {
		config := &cli.Config{BlocksSource: filepath.Join(t.TempDir(), "missing.json")}
		_, _, err := cli.ReadInputs(config, strings.NewReader(""))
		gt.True(t, errors.Is(err, domain.ErrMalformedBlocks))
	})

	t.Run("malformed blocks from stdin", func(t *testing.T) {
		config := &cli.Config{BlocksSource: cli.StdinSource}
		_, _, err := cli.ReadInputs(config, strings.NewReader(`{"type":"divider"}`))
		gt.True(t, errors.Is(err, domain.ErrMalformedBlocks))
	})
}
