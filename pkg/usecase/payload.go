package usecase

import (
	"fmt"
	"unicode/utf8"

	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/slack-go/slack"
)

// BuildPayload selects the wire format for req and assembles it. A non-nil
// warning means part of the request (the sidebar color) could not be
// honored; the payload is still complete and should be sent.
func BuildPayload(req model.MessageRequest) (model.Payload, *model.FormatWarning, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	if req.HasBlocks() {
		return model.RawBlocksPayload{
			Channel: req.Channel,
			Text:    req.Text,
			Color:   req.Color,
			Blocks:  req.Blocks,
		}, nil, nil
	}

	var warning *model.FormatWarning
	if req.Color != "" {
		// Color has no representation in Block Kit, only attachments carry it.
		if utf8.RuneCountInString(req.Text) <= model.AttachmentTextMax {
			return buildAttachmentPayload(req), nil, nil
		}

		warning = &model.FormatWarning{
			Code:    model.WarningColorDropped,
			Message: fmt.Sprintf("color sidebar dropped: message exceeds %d characters", model.AttachmentTextMax),
		}
	}

	return buildBlockKitPayload(req), warning, nil
}

func buildAttachmentPayload(req model.MessageRequest) model.AttachmentPayload {
	return model.AttachmentPayload{
		Channel: req.Channel,
		Attachments: []model.Attachment{
			{
				Color: req.Color,
				Title: req.Title,
				Text:  req.Text,
			},
		},
	}
}

func buildBlockKitPayload(req model.MessageRequest) model.BlockKitPayload {
	blocks := make([]slack.Block, 0, 2)
	if req.Title != "" {
		blocks = append(blocks, slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, req.Title, false, false),
		))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, req.Text, false, false),
		nil, nil,
	))

	return model.BlockKitPayload{
		Channel: req.Channel,
		Text:    req.Text,
		Blocks:  blocks,
	}
}
