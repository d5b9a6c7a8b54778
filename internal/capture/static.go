package capture

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// StaticCapturer fetches the served HTML over plain HTTP and fills the
// DOM-derived snapshot signals without executing JavaScript.
//
// Signals that need a rendering engine stay at their zero value: computed
// colors and fonts, CTA contrast and area, navigation timing, console
// errors, and viewport overflow. The evaluators treat those as unmeasured
// and pass them, so a static capture still produces a meaningful score
// from structure alone.
type StaticCapturer struct {
	cfg    *config.Config
	logger *slog.Logger
	client *http.Client
}

// NewStaticCapturer creates a StaticCapturer.
func NewStaticCapturer(cfg *config.Config, logger *slog.Logger) *StaticCapturer {
	return &StaticCapturer{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{
			Timeout: cfg.Capture.Timeout,
		},
	}
}

// Capture fetches and parses the page, returning its snapshot.
func (c *StaticCapturer) Capture(ctx context.Context, target string) (*model.PageSnapshot, error) {
	target, err := normalizeTarget(target)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("static capture starting", slog.String("url", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.Capture.UserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBadStatus, target, resp.StatusCode)
	}

	// Decode whatever charset the server declares into UTF-8 before
	// parsing, with the body size bounded.
	body := io.LimitReader(resp.Body, c.cfg.Capture.MaxBodySize)
	reader, err := charset.NewReader(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	elapsed := time.Since(start).Milliseconds()

	if doc.Find("body").Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, target)
	}

	// resp.Request.URL reflects any redirects followed.
	snap := c.extract(doc, resp.Request.URL)
	snap.URL = target
	snap.LoadTimeMillis = elapsed

	c.logger.Debug("static capture finished",
		slog.String("url", target),
		slog.Int64("fetch_ms", elapsed),
		slog.Int("headings", snap.HeadingCount))

	return snap, nil
}

// extract fills the DOM-derived snapshot signals from the parsed document.
func (c *StaticCapturer) extract(doc *goquery.Document, base *url.URL) *model.PageSnapshot {
	snap := &model.PageSnapshot{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	snap.NavElementCount = doc.Find(`nav, [role="navigation"]`).Length()
	snap.InteractiveElementCount = doc.Find("a[href], button, input, select, textarea").Length()
	snap.ImageCount = doc.Find("img").Length()
	snap.FormCount = doc.Find("form").Length()

	doc.Find("p, li, td, th, blockquote, pre, span").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != "" {
			snap.TextElementCount++
		}
	})

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		snap.HeadingCount++
		level := int(s.Nodes[0].Data[1] - '0')
		snap.HeadingLevels = append(snap.HeadingLevels, level)
		if level == 1 {
			snap.H1Count++
		}
	})

	snap.AriaLabelCount = doc.Find("[aria-label], [aria-labelledby]").Length()
	snap.FocusableElementCount = doc.Find(
		`a[href], button, input:not([type="hidden"]), select, textarea, [tabindex]`).Length()
	snap.SemanticElementCount = doc.Find(
		"header, nav, main, article, section, aside, footer").Length()

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
			snap.ImagesMissingAlt++
		}
		if src, ok := s.Attr("src"); ok {
			if abs := resolveURL(base, src); abs != "" {
				snap.ImageSources = append(snap.ImageSources, abs)
			}
		}
	})

	c.extractInputs(doc, snap)
	c.extractForms(doc, snap)
	c.extractLinks(doc, base, snap)
	c.extractButtons(doc, snap)

	snap.PageText = collapseWhitespace(doc.Find("body").Text())
	if len(snap.PageText) > 20000 {
		snap.PageText = snap.PageText[:20000]
	}

	snap.MetaTags = make(map[string]string)
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key, ok := s.Attr("name")
		if !ok {
			key, ok = s.Attr("property")
		}
		if !ok || key == "" {
			return
		}
		content, _ := s.Attr("content")
		snap.MetaTags[key] = content
	})

	return snap
}

// extractInputs counts form inputs and those without a label association.
func (c *StaticCapturer) extractInputs(doc *goquery.Document, snap *model.PageSnapshot) {
	labelFor := make(map[string]bool)
	doc.Find("label[for]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("for"); ok {
			labelFor[id] = true
		}
	})

	doc.Find(`input:not([type="hidden"]), select, textarea`).Each(func(_ int, s *goquery.Selection) {
		snap.FormInputCount++

		if id, ok := s.Attr("id"); ok && labelFor[id] {
			return
		}
		if s.ParentsFiltered("label").Length() > 0 {
			return
		}
		if _, ok := s.Attr("aria-label"); ok {
			return
		}
		if _, ok := s.Attr("aria-labelledby"); ok {
			return
		}
		snap.InputsMissingLabel++
	})
}

// extractForms fills the per-form feedback signals.
func (c *StaticCapturer) extractForms(doc *goquery.Document, snap *model.PageSnapshot) {
	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		name, ok := s.Attr("name")
		if !ok {
			name, _ = s.Attr("id")
		}

		signal := model.FormSignal{
			Name:       name,
			InputCount: s.Find(`input:not([type="hidden"]), select, textarea`).Length(),
			HasValidation: s.Find("[required], [aria-invalid], [pattern]").Length() > 0 ||
				s.Find(`.error, .invalid-feedback, [role="alert"]`).Length() > 0,
			HasLoadingIndicator: s.Find(".spinner, .loading, [aria-busy]").Length() > 0,
		}
		snap.Forms = append(snap.Forms, signal)
	})
}

// extractLinks records anchor texts and unique absolute targets.
func (c *StaticCapturer) extractLinks(doc *goquery.Document, base *url.URL, snap *model.PageSnapshot) {
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			snap.LinkTexts = append(snap.LinkTexts, text)
		}

		href, _ := s.Attr("href")
		abs := resolveURL(base, href)
		if abs == "" || seen[abs] {
			return
		}
		seen[abs] = true
		snap.LinkTargets = append(snap.LinkTargets, abs)
	})
}

// extractButtons counts distinct button class signatures as a stand-in for
// computed visual styles, which a static fetch cannot see.
func (c *StaticCapturer) extractButtons(doc *goquery.Document, snap *model.PageSnapshot) {
	styles := make(map[string]bool)
	doc.Find(`button, input[type="submit"], a.btn, a.button, [role="button"]`).Each(
		func(_ int, s *goquery.Selection) {
			class, _ := s.Attr("class")
			styles[strings.Join(strings.Fields(class), " ")] = true
		})
	snap.ButtonStyleCount = len(styles)
}

// resolveURL resolves ref against base and returns the absolute http(s)
// URL, or "" for anything else (fragments, javascript:, mailto:).
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") {
		return ""
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// collapseWhitespace squeezes runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
