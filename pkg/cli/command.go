package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "slackpost",
		Usage:   "Send messages to Slack",
		Version: "0.1.0",
		Description: `slackpost posts a single message to a Slack channel.

The message is taken from --message or piped stdin. Use --title for a header,
--color for a sidebar, or --blocks to send a pre-built Block Kit layout.

The API token is read from $SLACK_API_KEY, ~/.slack/api-token or
/etc/slack/api-token, in that order.`,
		Flags:  flags,
		Action: RunSend,
		Commands: []*cli.Command{
			NewTokenCommand(),
		},
	}
}
