package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

// MaxBlocks is the number of blocks Slack accepts in one message.
const MaxBlocks = 100

// RawBlocks is a pre-built Block Kit layout. Each element is kept as the
// caller wrote it and is never decoded into a typed block.
type RawBlocks []json.RawMessage

// ParseBlocks validates data as a non-empty JSON array of at most MaxBlocks
// objects.
func ParseBlocks(data []byte) (RawBlocks, error) {
	var blocks RawBlocks
	if err := json.Unmarshal(data, &blocks); err != nil {
		var value any
		if json.Unmarshal(data, &value) == nil {
			return nil, goerr.Wrap(domain.ErrMalformedBlocks, "expected a JSON array")
		}
		return nil, goerr.Wrap(domain.ErrMalformedBlocks, err.Error())
	}
	if blocks == nil {
		return nil, goerr.Wrap(domain.ErrMalformedBlocks, "expected a JSON array")
	}

	if err := blocks.Validate(); err != nil {
		return nil, err
	}
	return blocks, nil
}

// Validate checks the shape constraints ParseBlocks enforces. It lets
// blocks assembled in code be checked the same way as parsed input.
func (x RawBlocks) Validate() error {
	if len(x) == 0 {
		return goerr.Wrap(domain.ErrMalformedBlocks, "blocks array is empty")
	}
	if len(x) > MaxBlocks {
		return goerr.Wrap(domain.ErrMalformedBlocks,
			fmt.Sprintf("too many blocks (max %d)", MaxBlocks),
			goerr.V("count", len(x)),
		)
	}

	for i, block := range x {
		trimmed := bytes.TrimSpace(block)
		if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
			return goerr.Wrap(domain.ErrMalformedBlocks, "each block must be a JSON object", goerr.V("index", i))
		}
	}

	return nil
}
