package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrConflictingOptions = goerr.New("title cannot be combined with blocks", goerr.ID("conflicting_options"))
	ErrEmptyMessage       = goerr.New("no message provided", goerr.ID("empty_message"))
	ErrMalformedBlocks    = goerr.New("invalid blocks JSON", goerr.ID("malformed_blocks"))
	ErrInvalidColor       = goerr.New("invalid color: expected #RRGGBB or keyword (good, success, warning, danger, error)", goerr.ID("invalid_color"))
	ErrMissingChannel     = goerr.New("channel is required", goerr.ID("missing_channel"))

	ErrTokenNotFound = goerr.New("Slack API token not found. Set SLACK_API_KEY env var, or place token in ~/.slack/api-token or /etc/slack/api-token", goerr.ID("token_not_found"))
	ErrConfiguration = goerr.New("configuration error", goerr.ID("configuration_error"))
	ErrAPIRequest    = goerr.New("API request failed", goerr.ID("api_request_failed"))
	ErrSlackAPI      = goerr.New("Slack API error", goerr.ID("slack_api_error"))
)
