package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/m-mizutani/slackpost/pkg/usecase"
)

// Display writes user facing output of a send. Warnings go to the error
// stream.
type Display struct {
	out  io.Writer
	errw io.Writer
	warn *color.Color
}

func NewDisplay(out, errw io.Writer) *Display {
	return &Display{
		out:  out,
		errw: errw,
		warn: color.New(color.FgYellow),
	}
}

func (d *Display) ShowWarnings(warnings []string) {
	for _, w := range warnings {
		_, _ = d.warn.Fprintf(d.errw, "Warning: %s\n", w)
	}
}

// ShowResult prints where the message was posted
func (d *Display) ShowResult(result *model.SendResult) {
	_, _ = fmt.Fprintf(d.out, "Posted to %s (ts: %s)\n", result.Channel, result.Timestamp)
}

// ShowTokenSource prints where the token was found with the token masked
func (d *Display) ShowTokenSource(source, token string) {
	_, _ = fmt.Fprintf(d.out, "Token source: %s\n", source)
	_, _ = fmt.Fprintf(d.out, "Token: %s\n", usecase.MaskToken(token))
}
