package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

// MessageInput holds the raw values collected by the command line layer.
// Empty strings and nil blocks mean the option was not given.
type MessageInput struct {
	Channel string
	Text    string
	Title   string
	Color   string
	Blocks  RawBlocks
}

// MessageRequest is a validated message to post. Use NewMessageRequest to
// build one.
type MessageRequest struct {
	Channel string
	Text    string
	Title   string
	Color   string // resolved hex color, empty when no sidebar was requested
	Blocks  RawBlocks
}

// NewMessageRequest validates input and resolves its color token.
func NewMessageRequest(input MessageInput) (MessageRequest, error) {
	req := MessageRequest{
		Channel: input.Channel,
		Text:    input.Text,
		Title:   input.Title,
		Blocks:  input.Blocks,
	}

	if input.Color != "" {
		color, err := ResolveColor(input.Color)
		if err != nil {
			return MessageRequest{}, err
		}
		req.Color = color
	}

	if err := req.Validate(); err != nil {
		return MessageRequest{}, err
	}

	return req, nil
}

// Validate checks the invariants between options.
func (x MessageRequest) Validate() error {
	if x.Channel == "" {
		return goerr.Wrap(domain.ErrMissingChannel, "invalid message request")
	}
	if x.Blocks != nil && x.Title != "" {
		return goerr.Wrap(domain.ErrConflictingOptions, "invalid message request",
			goerr.V("title", x.Title),
		)
	}
	if x.Blocks == nil && x.Text == "" {
		return goerr.Wrap(domain.ErrEmptyMessage, "invalid message request")
	}
	if x.Blocks != nil {
		if err := x.Blocks.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasBlocks reports whether the caller supplied a raw layout.
func (x MessageRequest) HasBlocks() bool {
	return x.Blocks != nil
}
