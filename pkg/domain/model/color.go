package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackpost/pkg/domain"
)

const (
	ColorGood    = "#36a64f"
	ColorWarning = "#daa038"
	ColorDanger  = "#a30200"
)

// ResolveColor converts a color token into the hex form sent to Slack.
// Keywords are matched case-insensitively, hex colors are lowercased.
func ResolveColor(input string) (string, error) {
	color := strings.ToLower(input)

	switch color {
	case "good", "success":
		return ColorGood, nil
	case "warning":
		return ColorWarning, nil
	case "danger", "error":
		return ColorDanger, nil
	}

	if isHexColor(color) {
		return color, nil
	}

	return "", goerr.Wrap(domain.ErrInvalidColor, "failed to resolve color", goerr.V("color", input))
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
