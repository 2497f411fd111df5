package cli

import (
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/m-mizutani/slackpost/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// StdinSource is the --blocks value that reads the layout from stdin
const StdinSource = "-"

type Config struct {
	Channel      string
	Message      string
	HasMessage   bool
	Title        string
	Color        string
	BlocksSource string
	APIURL       string
	EnvFile      string
}

func NewConfig() *Config {
	return &Config{
		APIURL: usecase.DefaultAPIURL,
	}
}

// ConfigFromCommand collects flag values of cmd
func ConfigFromCommand(cmd *cli.Command) *Config {
	return &Config{
		Channel:      cmd.String("channel"),
		Message:      cmd.String("message"),
		HasMessage:   cmd.IsSet("message"),
		Title:        cmd.String("title"),
		Color:        cmd.String("color"),
		BlocksSource: cmd.String("blocks"),
		APIURL:       cmd.String("api-url"),
		EnvFile:      cmd.String("env-file"),
	}
}

// ToMessageInput combines the flags with the message text and blocks read
// from their sources.
func (c *Config) ToMessageInput(text string, blocks model.RawBlocks) model.MessageInput {
	return model.MessageInput{
		Channel: c.Channel,
		Text:    text,
		Title:   c.Title,
		Color:   c.Color,
		Blocks:  blocks,
	}
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "channel",
			Aliases: []string{"c"},
			Usage:   `Channel name or ID (e.g. "#general" or "C01234567"), required`,
		},
		&cli.StringFlag{
			Name:    "message",
			Aliases: []string{"m"},
			Usage:   "Message text (reads from stdin if omitted)",
		},
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Title displayed as a header above the message",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: `Attachment sidebar color: "#RRGGBB" or good, success, warning, danger, error`,
		},
		&cli.StringFlag{
			Name:  "blocks",
			Usage: `Block Kit JSON file, "-" reads from stdin (cannot be combined with --title)`,
		},
		&cli.StringFlag{
			Name:    "api-url",
			Usage:   "chat.postMessage endpoint",
			Value:   usecase.DefaultAPIURL,
			Sources: cli.EnvVars("SLACK_API_URL"),
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Load environment variables from a dotenv file before resolving the token",
		},
	}
}
