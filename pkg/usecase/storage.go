package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/interfaces"
)

type TokenStorage struct {
	path string
}

// NewTokenStorage stores the token in the per-user token file
func NewTokenStorage() interfaces.TokenStore {
	return NewTokenStorageAt(UserTokenPath())
}

// NewTokenStorageAt stores the token at path
func NewTokenStorageAt(path string) interfaces.TokenStore {
	return &TokenStorage{path: path}
}

func (s *TokenStorage) Path() string {
	return s.path
}

func (s *TokenStorage) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return goerr.Wrap(domain.ErrConfiguration, "token is empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	return nil
}
