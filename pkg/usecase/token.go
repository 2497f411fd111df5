package usecase

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
)

const (
	// TokenEnvVar is checked before any token file
	TokenEnvVar = "SLACK_API_KEY"

	systemTokenPath = "/etc/slack/api-token" // #nosec G101 - This is a file path, not a credential
)

// TokenSource looks up a token in one place. An empty token with a nil
// error means the source has nothing to offer.
type TokenSource struct {
	Name   string
	Lookup func() (string, error)
}

// EnvTokenSource reads the token from an environment variable
func EnvTokenSource(key string) TokenSource {
	return TokenSource{
		Name: "$" + key,
		Lookup: func() (string, error) {
			return os.Getenv(key), nil
		},
	}
}

// FileTokenSource reads the token from a file
func FileTokenSource(path string) TokenSource {
	return TokenSource{
		Name: path,
		Lookup: func() (string, error) {
			data, err := os.ReadFile(path) // #nosec G304 - path is one of the fixed token locations
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	}
}

// UserTokenPath returns the per-user token file, ~/.slack/api-token
func UserTokenPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".slack", "api-token")
}

// DefaultTokenSources returns the lookup order: environment variable, then
// the per-user file, then the system-wide file.
func DefaultTokenSources() []TokenSource {
	return []TokenSource{
		EnvTokenSource(TokenEnvVar),
		FileTokenSource(UserTokenPath()),
		FileTokenSource(systemTokenPath),
	}
}

type tokenResolver struct {
	sources []TokenSource
}

// NewTokenResolver creates a resolver that tries sources in order. With no
// sources it uses DefaultTokenSources.
func NewTokenResolver(sources ...TokenSource) interfaces.TokenResolver {
	if len(sources) == 0 {
		sources = DefaultTokenSources()
	}
	return &tokenResolver{sources: sources}
}

// Resolve returns the first non-empty token
func (r *tokenResolver) Resolve(ctx context.Context) (string, string, error) {
	logger := ctxlog.From(ctx)

	for _, src := range r.sources {
		value, err := src.Lookup()
		if err != nil {
			// Unreadable sources are skipped like missing ones
			logger.Debug("token source not available",
				slog.String("source", src.Name),
				slog.String("error", err.Error()),
			)
			continue
		}

		token := strings.TrimSpace(value)
		if token == "" {
			continue
		}

		logger.Debug("token resolved",
			slog.String("source", src.Name),
			slog.String("token", MaskToken(token)),
		)
		return token, src.Name, nil
	}

	names := make([]string, len(r.sources))
	for i, src := range r.sources {
		names[i] = src.Name
	}
	return "", "", goerr.Wrap(domain.ErrTokenNotFound, "no token source matched",
		goerr.V("sources", names),
	)
}

// MaskToken keeps the token prefix (xoxb-, xoxp-) readable for logging
func MaskToken(token string) string {
	if len(token) > 8 {
		return token[:5] + "***"
	}
	return "***"
}
