package model

import (
	"encoding/json"

	"github.com/slack-go/slack"
)

// AttachmentTextMax is the longest text Slack accepts in a legacy attachment.
const AttachmentTextMax = 4000

// Payload is the body of a chat.postMessage request. It is implemented only
// by BlockKitPayload, AttachmentPayload and RawBlocksPayload.
type Payload interface {
	ChannelID() string
	payload()
}

// BlockKitPayload is a plain Block Kit message built from text and title
type BlockKitPayload struct {
	Channel string        `json:"channel"`
	Text    string        `json:"text,omitempty"` // Fallback for notifications
	Blocks  []slack.Block `json:"blocks"`
}

// AttachmentPayload carries the message in a colored legacy attachment
type AttachmentPayload struct {
	Channel     string       `json:"channel"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment represents a Slack message attachment
type Attachment struct {
	Color string `json:"color"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// RawBlocksPayload sends a caller-provided layout. When Color is set the
// blocks are wrapped in a single colored attachment instead of being sent
// at the top level.
type RawBlocksPayload struct {
	Channel string
	Text    string
	Color   string
	Blocks  RawBlocks
}

type blocksAttachment struct {
	Color  string    `json:"color"`
	Blocks RawBlocks `json:"blocks"`
}

type rawBlocksJSON struct {
	Channel     string             `json:"channel"`
	Text        string             `json:"text,omitempty"`
	Blocks      RawBlocks          `json:"blocks,omitempty"`
	Attachments []blocksAttachment `json:"attachments,omitempty"`
}

func (x RawBlocksPayload) MarshalJSON() ([]byte, error) {
	v := rawBlocksJSON{
		Channel: x.Channel,
		Text:    x.Text,
	}
	if x.Color != "" {
		v.Attachments = []blocksAttachment{{Color: x.Color, Blocks: x.Blocks}}
	} else {
		v.Blocks = x.Blocks
	}
	return json.Marshal(v)
}

func (x BlockKitPayload) ChannelID() string   { return x.Channel }
func (x AttachmentPayload) ChannelID() string { return x.Channel }
func (x RawBlocksPayload) ChannelID() string  { return x.Channel }

func (BlockKitPayload) payload()   {}
func (AttachmentPayload) payload() {}
func (RawBlocksPayload) payload()  {}

// FormatWarning reports a requested feature that could not be expressed in
// the payload. The message is still sent.
type FormatWarning struct {
	Code    string
	Message string
}

const WarningColorDropped = "color_dropped"

func (x FormatWarning) String() string {
	return x.Message
}

// PostMessageResponse is the body returned by chat.postMessage
type PostMessageResponse struct {
	OK               bool             `json:"ok"`
	Error            string           `json:"error,omitempty"`
	Warning          string           `json:"warning,omitempty"`
	Channel          string           `json:"channel,omitempty"`
	Timestamp        string           `json:"ts,omitempty"`
	ResponseMetadata ResponseMetadata `json:"response_metadata,omitempty"`
}

type ResponseMetadata struct {
	Messages []string `json:"messages,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// SendResult summarizes a posted message
type SendResult struct {
	Channel   string
	Timestamp string
	Warnings  []string
}
