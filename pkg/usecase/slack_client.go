package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
	"github.com/slack-go/slack"
	"golang.org/x/oauth2"
)

const DefaultAPIURL = "https://slack.com/api/chat.postMessage"

type slackClient struct {
	httpClient *http.Client
	apiURL     string
}

type SlackClientOption func(*slackClient)

// WithAPIURL overrides the chat.postMessage endpoint
func WithAPIURL(url string) SlackClientOption {
	return func(c *slackClient) {
		if url != "" {
			c.apiURL = url
		}
	}
}

// NewSlackClient creates a client that authenticates every request with
// token as a bearer credential.
func NewSlackClient(ctx context.Context, token string, opts ...SlackClientOption) interfaces.SlackClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = 30 * time.Second

	c := &slackClient{
		httpClient: httpClient,
		apiURL:     DefaultAPIURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostMessage sends payload to chat.postMessage
func (c *slackClient) PostMessage(ctx context.Context, payload model.Payload) (*model.PostMessageResponse, error) {
	logger := ctxlog.From(ctx)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal slack payload")
	}

	logger.Debug("Sending to Slack",
		slog.String("url", c.apiURL),
		slog.String("payload", string(jsonData)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	var result model.PostMessageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, goerr.Wrap(domain.ErrAPIRequest,
				fmt.Sprintf("slack returned status %d: %s", resp.StatusCode, string(body)),
				goerr.V("status", resp.StatusCode),
			)
		}
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	logger.Debug("Slack responded",
		slog.Int("status", resp.StatusCode),
		slog.Bool("ok", result.OK),
		slog.String("error", result.Error),
		slog.String("warning", result.Warning),
	)

	if !result.OK {
		errMsg := result.Error
		if errMsg == "" {
			errMsg = "unknown error"
		}
		apiErr := domain.ErrSlackAPI.Wrap(slack.SlackErrorResponse{Err: errMsg})
		return nil, goerr.Wrap(apiErr, "failed to post message",
			goerr.V("channel", payload.ChannelID()),
			goerr.V("status", resp.StatusCode),
		)
	}

	return &result, nil
}
