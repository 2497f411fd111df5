package interfaces

import (
	"context"
)

// TokenResolver finds the Slack API token. It returns the token and the
// name of the source it was read from.
type TokenResolver interface {
	Resolve(ctx context.Context) (token string, source string, err error)
}

type TokenStore interface {
	SaveToken(ctx context.Context, token string) error
	Path() string
}
