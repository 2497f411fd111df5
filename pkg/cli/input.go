package cli

import (
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether r is an interactive terminal, i.e. nothing
// was piped in.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// readInputs returns the message text and raw blocks requested by config.
// With blocks the message is optional and stdin is reserved for the layout.
func readInputs(config *Config, stdin io.Reader) (string, model.RawBlocks, error) {
	if config.BlocksSource != "" {
		blocks, err := readBlocks(config.BlocksSource, stdin)
		if err != nil {
			return "", nil, err
		}
		return strings.TrimSpace(config.Message), blocks, nil
	}

	text, err := readMessage(config, stdin)
	if err != nil {
		return "", nil, err
	}
	return text, nil, nil
}

func readMessage(config *Config, stdin io.Reader) (string, error) {
	if config.HasMessage {
		if strings.TrimSpace(config.Message) == "" {
			return "", goerr.Wrap(domain.ErrEmptyMessage, "message is blank")
		}
		return config.Message, nil
	}

	if stdin == nil || isTerminal(stdin) {
		return "", goerr.Wrap(domain.ErrEmptyMessage, "no --message given and nothing piped to stdin")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read stdin")
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", goerr.Wrap(domain.ErrEmptyMessage, "stdin is empty")
	}
	return text, nil
}

func readBlocks(source string, stdin io.Reader) (model.RawBlocks, error) {
	var data []byte
	if source == StdinSource {
		if stdin == nil || isTerminal(stdin) {
			return nil, goerr.Wrap(domain.ErrMalformedBlocks, "no input piped to stdin")
		}
		buf, err := io.ReadAll(stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read stdin")
		}
		data = buf
	} else {
		buf, err := os.ReadFile(source) // #nosec G304 - path is given by the user
		if err != nil {
			return nil, goerr.Wrap(domain.ErrMalformedBlocks, "failed to read blocks file",
				goerr.V("path", source),
				goerr.V("error", err.Error()),
			)
		}
		data = buf
	}

	return model.ParseBlocks(data)
}
