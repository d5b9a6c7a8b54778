package capture

import (
	"context"
	"fmt"
	"net/url"

	"github.com/uxscan/uxscan/internal/model"
)

// Capturer loads one page and returns the raw signals scoring consumes.
//
// Design decision: We use an interface so the pipeline does not care
// whether signals came from a rendered browser session or a static HTML
// fetch, and so tests can substitute a canned snapshot.
type Capturer interface {
	// Capture loads the page at url and returns its snapshot.
	// The context bounds the whole capture, including rendering.
	Capture(ctx context.Context, url string) (*model.PageSnapshot, error)
}

// normalizeTarget validates the target URL and defaults the scheme to
// https when none is given, so "example.com" works as a CLI argument.
func normalizeTarget(target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parse target URL: %w", err)
	}

	if u.Scheme == "" {
		u, err = url.Parse("https://" + target)
		if err != nil {
			return "", fmt.Errorf("parse target URL: %w", err)
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrUnsupportedScheme, target)
	}

	return u.String(), nil
}
