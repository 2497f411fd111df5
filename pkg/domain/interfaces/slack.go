package interfaces

import (
	"context"

	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

// SlackClient posts a built payload to Slack
type SlackClient interface {
	PostMessage(ctx context.Context, payload model.Payload) (*model.PostMessageResponse, error)
}
