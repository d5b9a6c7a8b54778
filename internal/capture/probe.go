package capture

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// ProbeResult holds the broken resources found by the probe.
type ProbeResult struct {
	// BrokenLinks are link targets that failed the check, in snapshot order.
	BrokenLinks []string

	// BrokenImages are image sources that failed the check, in snapshot order.
	BrokenImages []string
}

// Prober checks captured link and image URLs for broken targets.
//
// Design decision: We probe with HEAD requests and bounded concurrency to
// stay polite to the audited origin. A HEAD rejected with 405 is retried
// as a GET whose body is discarded, since some servers refuse HEAD for
// resources they serve fine.
type Prober struct {
	cfg    *config.Config
	logger *slog.Logger
	client *http.Client
}

// NewProber creates a Prober.
func NewProber(cfg *config.Config, logger *slog.Logger) *Prober {
	return &Prober{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{
			Timeout: cfg.Capture.ProbeTimeout,
		},
	}
}

// Probe checks every captured link target and image source and returns the
// ones that are broken. Input order is preserved so results are
// deterministic for a given snapshot.
func (p *Prober) Probe(ctx context.Context, snap *model.PageSnapshot) (*ProbeResult, error) {
	links, err := p.probeAll(ctx, snap.LinkTargets)
	if err != nil {
		return nil, fmt.Errorf("probe links: %w", err)
	}

	images, err := p.probeAll(ctx, snap.ImageSources)
	if err != nil {
		return nil, fmt.Errorf("probe images: %w", err)
	}

	p.logger.Debug("resource probe finished",
		slog.Int("links_checked", len(snap.LinkTargets)),
		slog.Int("links_broken", len(links)),
		slog.Int("images_checked", len(snap.ImageSources)),
		slog.Int("images_broken", len(images)))

	return &ProbeResult{BrokenLinks: links, BrokenImages: images}, nil
}

// probeAll checks the given URLs concurrently and returns the broken ones
// in input order. It stops early only when the context is canceled.
func (p *Prober) probeAll(ctx context.Context, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	broken := make([]bool, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Capture.ProbeLimit)

	for i, u := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			broken[i] = !p.check(gctx, u)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for i, b := range broken {
		if b {
			out = append(out, urls[i])
		}
	}
	return out, nil
}

// check reports whether the URL responds with a non-error status.
// Network failures count as broken.
func (p *Prober) check(ctx context.Context, target string) bool {
	status, err := p.request(ctx, http.MethodHead, target)
	if err != nil {
		p.logger.Debug("probe request failed",
			slog.String("url", target), slog.Any("error", err))
		return false
	}

	if status == http.StatusMethodNotAllowed {
		status, err = p.request(ctx, http.MethodGet, target)
		if err != nil {
			return false
		}
	}

	return status < http.StatusBadRequest
}

// request issues one probe request and returns the response status.
func (p *Prober) request(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", p.cfg.Capture.UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() //nolint:errcheck // body discarded

	return resp.StatusCode, nil
}
