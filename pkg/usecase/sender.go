package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

type MessageSender struct {
	client interfaces.SlackClient
}

func NewMessageSender(client interfaces.SlackClient) *MessageSender {
	return &MessageSender{client: client}
}

// Send builds the payload for req and posts it. Format warnings come first
// in the result, followed by any warnings returned by Slack.
func (s *MessageSender) Send(ctx context.Context, req model.MessageRequest) (*model.SendResult, error) {
	logger := ctxlog.From(ctx)

	payload, warning, err := BuildPayload(req)
	if err != nil {
		return nil, err
	}

	logger.Debug("payload built",
		slog.String("channel", req.Channel),
		slog.String("format", payloadFormat(payload)),
	)

	resp, err := s.client.PostMessage(ctx, payload)
	if err != nil {
		return nil, err
	}

	result := &model.SendResult{
		Channel:   resp.Channel,
		Timestamp: resp.Timestamp,
	}
	if warning != nil {
		result.Warnings = append(result.Warnings, warning.String())
	}
	// Slack repeats the top-level warning in response_metadata
	apiWarnings := append([]string{resp.Warning}, resp.ResponseMetadata.Warnings...)
	for _, w := range apiWarnings {
		if w != "" && !slices.Contains(result.Warnings, w) {
			result.Warnings = append(result.Warnings, w)
		}
	}

	logger.Info("message posted",
		slog.String("channel", result.Channel),
		slog.String("ts", result.Timestamp),
	)

	return result, nil
}

func payloadFormat(p model.Payload) string {
	switch v := p.(type) {
	case model.BlockKitPayload:
		return "blocks"
	case model.AttachmentPayload:
		return "attachment"
	case model.RawBlocksPayload:
		if v.Color != "" {
			return "raw_blocks_attachment"
		}
		return "raw_blocks"
	default:
		return "unknown"
	}
}
