package capture

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// BrowserCapturer renders the page in headless Chrome and extracts every
// signal the evaluators consume, including computed styles, navigation
// timing, console errors, and per-viewport overflow.
//
// Design decision: We run one in-page extraction script that returns a
// single JSON object rather than many round-trips because the CDP
// overhead per Evaluate call dominates on slow targets, and a one-pass
// extraction sees a consistent DOM.
type BrowserCapturer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewBrowserCapturer creates a BrowserCapturer.
func NewBrowserCapturer(cfg *config.Config, logger *slog.Logger) *BrowserCapturer {
	return &BrowserCapturer{cfg: cfg, logger: logger}
}

// Capture renders the page and returns its snapshot.
func (c *BrowserCapturer) Capture(ctx context.Context, target string) (*model.PageSnapshot, error) {
	target, err := normalizeTarget(target)
	if err != nil {
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(c.cfg.Capture.UserAgent),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, c.cfg.Capture.Timeout)
	defer cancelTimeout()

	// Console errors arrive as CDP events during and after navigation.
	var (
		consoleMu     sync.Mutex
		consoleErrors []string
	)
	chromedp.ListenTarget(browserCtx, func(ev any) {
		switch ev := ev.(type) {
		case *runtime.EventConsoleAPICalled:
			if ev.Type != runtime.APITypeError {
				return
			}
			parts := make([]string, 0, len(ev.Args))
			for _, arg := range ev.Args {
				if len(arg.Value) > 0 {
					parts = append(parts, string(arg.Value))
				} else if arg.Description != "" {
					parts = append(parts, arg.Description)
				}
			}
			consoleMu.Lock()
			consoleErrors = append(consoleErrors, strings.Join(parts, " "))
			consoleMu.Unlock()
		case *runtime.EventExceptionThrown:
			consoleMu.Lock()
			consoleErrors = append(consoleErrors, ev.ExceptionDetails.Error())
			consoleMu.Unlock()
		}
	})

	// The largest configured viewport is authoritative for scoring.
	authW, authH := c.largestViewport()
	snap := &model.PageSnapshot{URL: target}

	c.logger.Debug("browser capture starting",
		slog.String("url", target),
		slog.Int("viewport_width", authW),
		slog.Int("viewport_height", authH))

	start := time.Now()
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(authW), int64(authH)),
		chromedp.Navigate(target),
		chromedp.WaitReady("body"),
		// Give late scripts and console output a moment to settle.
		chromedp.Sleep(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigation, target, err)
	}
	elapsed := time.Since(start).Milliseconds()

	if err := chromedp.Run(browserCtx, chromedp.Evaluate(extractionScript, snap)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	snap.URL = target
	if snap.LoadTimeMillis <= 0 {
		// The navigation entry can be incomplete on pages that never fire
		// the load event inside the wait window.
		snap.LoadTimeMillis = elapsed
	}

	scrolls, err := c.measureViewports(browserCtx)
	if err != nil {
		// Overflow measurement is best-effort; a failed emulation does not
		// invalidate the snapshot.
		c.logger.Warn("viewport measurement failed", slog.Any("error", err))
	}
	snap.ViewportScrolls = scrolls

	consoleMu.Lock()
	snap.ConsoleErrors = consoleErrors
	consoleMu.Unlock()

	c.logger.Debug("browser capture finished",
		slog.String("url", target),
		slog.Int64("load_time_ms", snap.LoadTimeMillis),
		slog.Int("console_errors", len(snap.ConsoleErrors)))

	return snap, nil
}

// largestViewport returns the widest configured viewport.
func (c *BrowserCapturer) largestViewport() (width, height int) {
	for _, vp := range c.cfg.Viewports {
		if vp.Width > width {
			width, height = vp.Width, vp.Height
		}
	}
	if width == 0 {
		width, height = 1920, 1080
	}
	return width, height
}

// measureViewports emulates each configured viewport and records the
// document scroll width there.
func (c *BrowserCapturer) measureViewports(ctx context.Context) ([]model.ViewportScroll, error) {
	scrolls := make([]model.ViewportScroll, 0, len(c.cfg.Viewports))
	for _, vp := range c.cfg.Viewports {
		var scrollWidth int
		err := chromedp.Run(ctx,
			chromedp.EmulateViewport(int64(vp.Width), int64(vp.Height)),
			chromedp.Evaluate(`document.documentElement.scrollWidth`, &scrollWidth),
		)
		if err != nil {
			return scrolls, fmt.Errorf("emulate %dx%d: %w", vp.Width, vp.Height, err)
		}
		scrolls = append(scrolls, model.ViewportScroll{
			Width:       vp.Width,
			Height:      vp.Height,
			ScrollWidth: scrollWidth,
		})
	}
	return scrolls, nil
}

// extractionScript runs inside the page and returns one JSON object whose
// keys match the PageSnapshot field tags. Signals that cannot be measured
// are left at their zero value.
const extractionScript = `(() => {
	const unique = (arr) => Array.from(new Set(arr));
	const visibleText = (el) => (el.innerText || "").trim();

	// --- element counts ---
	const navEls = document.querySelectorAll('nav, [role="navigation"]');
	const textEls = Array.from(
		document.querySelectorAll('p, li, td, th, blockquote, pre, span')
	).filter((el) => visibleText(el).length > 0);
	const interactive = document.querySelectorAll(
		'a[href], button, input, select, textarea'
	);
	const images = Array.from(document.querySelectorAll('img'));
	const forms = Array.from(document.querySelectorAll('form'));
	const headings = Array.from(
		document.querySelectorAll('h1, h2, h3, h4, h5, h6')
	);

	// --- style samples (bounded to keep the pass cheap on huge pages) ---
	const sampleLimit = 400;
	const sampled = Array.from(document.querySelectorAll('body *')).slice(0, sampleLimit);
	const colors = [];
	const fonts = [];
	for (const el of sampled) {
		const cs = window.getComputedStyle(el);
		if (cs.color) colors.push(cs.color);
		if (cs.backgroundColor && cs.backgroundColor !== 'rgba(0, 0, 0, 0)') {
			colors.push(cs.backgroundColor);
		}
		if (cs.fontFamily) fonts.push(cs.fontFamily);
	}
	const spacing = [];
	for (const el of Array.from(
		document.querySelectorAll('div, section, main, article')
	).slice(0, sampleLimit)) {
		const cs = window.getComputedStyle(el);
		if (cs.margin && cs.margin !== '0px') spacing.push(cs.margin);
		if (cs.padding && cs.padding !== '0px') spacing.push(cs.padding);
	}

	const buttons = Array.from(
		document.querySelectorAll('button, input[type="submit"], a.btn, a.button, [role="button"]')
	);
	const buttonStyles = unique(buttons.map((b) => {
		const cs = window.getComputedStyle(b);
		return cs.backgroundColor + '|' + cs.border + '|' + cs.borderRadius;
	}));

	// --- accessibility signals ---
	const ariaLabelled = document.querySelectorAll('[aria-label], [aria-labelledby]');
	const focusable = document.querySelectorAll(
		'a[href], button, input:not([type="hidden"]), select, textarea, [tabindex]:not([tabindex="-1"])'
	);
	const semantic = document.querySelectorAll(
		'header, nav, main, article, section, aside, footer'
	);
	const missingAlt = images.filter(
		(img) => !img.hasAttribute('alt') || img.getAttribute('alt').trim() === ''
	);

	const allInputs = Array.from(
		document.querySelectorAll('input:not([type="hidden"]), select, textarea')
	);
	const missingLabel = allInputs.filter((input) => {
		if (input.id && document.querySelector('label[for="' + CSS.escape(input.id) + '"]')) {
			return false;
		}
		if (input.closest('label')) return false;
		if (input.hasAttribute('aria-label') || input.hasAttribute('aria-labelledby')) {
			return false;
		}
		return true;
	});

	// --- form feedback signals ---
	const formSignals = forms.map((form) => ({
		name: form.getAttribute('name') || form.id || '',
		input_count: form.querySelectorAll('input:not([type="hidden"]), select, textarea').length,
		has_validation:
			form.querySelectorAll('[required], [aria-invalid], [pattern]').length > 0 ||
			form.querySelectorAll('.error, .invalid-feedback, [role="alert"]').length > 0,
		has_loading_indicator:
			form.querySelectorAll('.spinner, .loading, [aria-busy]').length > 0 ||
			Array.from(form.querySelectorAll('button[type="submit"], input[type="submit"]'))
				.some((b) => b.dataset.loadingText !== undefined),
	}));

	// --- CTA prominence ---
	const luminance = (rgb) => {
		const m = rgb.match(/\d+(\.\d+)?/g);
		if (!m || m.length < 3) return null;
		const chan = m.slice(0, 3).map((v) => {
			const c = parseFloat(v) / 255;
			return c <= 0.03928 ? c / 12.92 : Math.pow((c + 0.055) / 1.055, 2.4);
		});
		return 0.2126 * chan[0] + 0.7152 * chan[1] + 0.0722 * chan[2];
	};
	const contrast = (fg, bg) => {
		const l1 = luminance(fg);
		const l2 = luminance(bg);
		if (l1 === null || l2 === null) return 0;
		const lighter = Math.max(l1, l2);
		const darker = Math.min(l1, l2);
		return (lighter + 0.05) / (darker + 0.05);
	};
	const ctaButtons = buttons
		.filter((b) => visibleText(b).length > 0)
		.slice(0, 10)
		.map((b) => {
			const cs = window.getComputedStyle(b);
			const rect = b.getBoundingClientRect();
			return {
				text: visibleText(b).slice(0, 80),
				contrast_ratio: contrast(cs.color, cs.backgroundColor),
				area: rect.width * rect.height,
			};
		});

	// --- text content and link/image targets ---
	const anchors = Array.from(document.querySelectorAll('a[href]'));
	const linkTexts = anchors.map((a) => visibleText(a)).filter((t) => t.length > 0);
	const linkTargets = unique(
		anchors
			.map((a) => a.href)
			.filter((href) => href.startsWith('http://') || href.startsWith('https://'))
	);
	const imageSources = unique(
		images
			.map((img) => img.src)
			.filter((src) => src.startsWith('http://') || src.startsWith('https://'))
	);

	// --- meta tags ---
	const metaTags = {};
	for (const meta of document.querySelectorAll('meta')) {
		const key = meta.getAttribute('name') || meta.getAttribute('property');
		if (key) metaTags[key] = meta.getAttribute('content') || '';
	}

	// --- performance ---
	let timing = null;
	let loadTimeMs = 0;
	const nav = performance.getEntriesByType('navigation')[0];
	if (nav) {
		timing = {
			dns_ms: Math.round(nav.domainLookupEnd - nav.domainLookupStart),
			tcp_ms: Math.round(nav.connectEnd - nav.connectStart),
			request_ms: Math.round(nav.responseStart - nav.requestStart),
			response_ms: Math.round(nav.responseEnd - nav.responseStart),
			dom_load_ms: Math.round(nav.domContentLoadedEventEnd - nav.startTime),
			full_load_ms: Math.round(nav.loadEventEnd - nav.startTime),
		};
		loadTimeMs = timing.full_load_ms;
	}
	const resources = performance.getEntriesByType('resource');
	const pageOrigin = window.location.origin;
	let externalCount = 0;
	for (const r of resources) {
		try {
			if (new URL(r.name).origin !== pageOrigin) externalCount++;
		} catch (e) { /* opaque resource URL */ }
	}

	return {
		title: document.title,
		nav_element_count: navEls.length,
		text_element_count: textEls.length,
		interactive_element_count: interactive.length,
		image_count: images.length,
		form_count: forms.length,
		heading_count: headings.length,
		heading_levels: headings.map((h) => parseInt(h.tagName.slice(1), 10)),
		h1_count: document.querySelectorAll('h1').length,
		distinct_colors: unique(colors),
		distinct_fonts: unique(fonts),
		spacing_values: unique(spacing),
		button_style_count: buttonStyles.length,
		aria_label_count: ariaLabelled.length,
		focusable_element_count: focusable.length,
		semantic_element_count: semantic.length,
		images_missing_alt: missingAlt.length,
		inputs_missing_label: missingLabel.length,
		form_input_count: allInputs.length,
		forms: formSignals,
		cta_buttons: ctaButtons,
		link_texts: linkTexts,
		link_targets: linkTargets,
		image_sources: imageSources,
		page_text: (document.body.innerText || '').slice(0, 20000),
		load_time_ms: loadTimeMs,
		timing: timing,
		resource_count: resources.length,
		external_resource_count: externalCount,
		meta_tags: metaTags,
	};
})()`
