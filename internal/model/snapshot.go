package model

// PageSnapshot is a read-only description of one rendered page, captured
// by the browser collaborator before scoring begins. It contains every raw
// signal the principle evaluators consume: element counts, style samples,
// timing data, console messages, and resource information.
//
// Missing-field policy: a zero value always means "not measured", never
// "measured as zero problems". Every evaluator check treats an unmeasured
// signal as a vacuous pass, so a snapshot produced by a limited capturer
// (for example the static fallback, which has no computed styles or timing)
// still scores without error.
//
// Design decision: We use a single flat struct rather than per-principle
// sub-structs because most signals feed more than one principle (image
// counts feed both Accessibility and Efficiency) and a flat capture is
// easier for the extraction script to fill in one pass.
type PageSnapshot struct {
	// URL is the address the snapshot was captured from.
	URL string `json:"url"`

	// Title is the document title from the <title> element.
	Title string `json:"title,omitempty"`

	// === Element counts by category ===

	// NavElementCount is the number of elements inside <nav> landmarks.
	NavElementCount int `json:"nav_element_count"`

	// TextElementCount is the number of visible text-bearing elements
	// (paragraphs, list items, table cells, spans with text).
	TextElementCount int `json:"text_element_count"`

	// InteractiveElementCount is the number of interactive elements
	// (links, buttons, inputs, selects, textareas).
	InteractiveElementCount int `json:"interactive_element_count"`

	// ImageCount is the number of <img> elements.
	ImageCount int `json:"image_count"`

	// FormCount is the number of <form> elements.
	FormCount int `json:"form_count"`

	// HeadingCount is the number of h1-h6 elements.
	HeadingCount int `json:"heading_count"`

	// HeadingLevels lists the numeric level of each heading in document
	// order (e.g. [1, 2, 2, 3]). Used for hierarchy checks.
	HeadingLevels []int `json:"heading_levels,omitempty"`

	// H1Count is the number of top-level <h1> headings.
	H1Count int `json:"h1_count"`

	// === Style samples ===

	// DistinctColors is the set of distinct computed text/background
	// colors sampled across the page.
	DistinctColors []string `json:"distinct_colors,omitempty"`

	// DistinctFonts is the set of distinct computed font families.
	DistinctFonts []string `json:"distinct_fonts,omitempty"`

	// SpacingValues is the set of distinct margin/padding values sampled
	// from layout containers.
	SpacingValues []string `json:"spacing_values,omitempty"`

	// ButtonStyleCount is the number of distinct visual button styles
	// (background + border + radius combinations).
	ButtonStyleCount int `json:"button_style_count"`

	// === Accessibility signals ===

	// AriaLabelCount is the number of elements carrying aria-label or
	// aria-labelledby attributes.
	AriaLabelCount int `json:"aria_label_count"`

	// FocusableElementCount is the number of keyboard-focusable elements.
	FocusableElementCount int `json:"focusable_element_count"`

	// SemanticElementCount is the number of semantic structural elements
	// (header, nav, main, article, section, aside, footer).
	SemanticElementCount int `json:"semantic_element_count"`

	// ImagesMissingAlt is the number of <img> elements without alt text.
	ImagesMissingAlt int `json:"images_missing_alt"`

	// InputsMissingLabel is the number of non-hidden form inputs without
	// an associated <label>.
	InputsMissingLabel int `json:"inputs_missing_label"`

	// === Form and CTA signals ===

	// FormInputCount is the total number of form input fields.
	FormInputCount int `json:"form_input_count"`

	// Forms describes each form's feedback affordances, in document order.
	Forms []FormSignal `json:"forms,omitempty"`

	// CTAButtons describes prominent call-to-action candidates, in
	// document order.
	CTAButtons []CTAButton `json:"cta_buttons,omitempty"`

	// === Text content ===

	// LinkTexts is the visible text of each anchor, in document order.
	LinkTexts []string `json:"link_texts,omitempty"`

	// LinkTargets is the href of each unique anchor. Consumed by the
	// broken-link probe, not by the evaluators.
	LinkTargets []string `json:"link_targets,omitempty"`

	// ImageSources is the src of each image. Consumed by the broken-image
	// probe, not by the evaluators.
	ImageSources []string `json:"image_sources,omitempty"`

	// PageText is the visible text content of the page body.
	PageText string `json:"page_text,omitempty"`

	// === Performance ===

	// LoadTimeMillis is the measured full page load time in milliseconds.
	// Zero or negative means not measured.
	LoadTimeMillis int64 `json:"load_time_ms"`

	// Timing is the navigation timing breakdown. Nil when the capturer
	// cannot measure it (static fallback).
	Timing *NavigationTiming `json:"timing,omitempty"`

	// ResourceCount is the total number of resources the page requested.
	ResourceCount int `json:"resource_count"`

	// ExternalResourceCount is the number of resources loaded from a
	// different origin than the page.
	ExternalResourceCount int `json:"external_resource_count"`

	// === Diagnostics ===

	// ConsoleErrors contains browser console error messages emitted
	// during the page load.
	ConsoleErrors []string `json:"console_errors,omitempty"`

	// MetaTags maps meta tag name/property to content.
	MetaTags map[string]string `json:"meta_tags,omitempty"`

	// ViewportScrolls records the document scroll width measured at each
	// configured viewport. Used for responsive issue detection.
	ViewportScrolls []ViewportScroll `json:"viewport_scrolls,omitempty"`
}

// FormSignal describes the user-feedback affordances of one form.
type FormSignal struct {
	// Name is the form's name or id attribute, if any.
	Name string `json:"name,omitempty"`

	// InputCount is the number of input fields in the form.
	InputCount int `json:"input_count"`

	// HasValidation is true if the form carries visible validation
	// affordances (required fields, aria-invalid, validation message
	// containers).
	HasValidation bool `json:"has_validation"`

	// HasLoadingIndicator is true if the form has a loading/progress
	// affordance (disabled-on-submit button, spinner element).
	HasLoadingIndicator bool `json:"has_loading_indicator"`
}

// CTAButton describes one call-to-action candidate for prominence checks.
type CTAButton struct {
	// Text is the button's visible label.
	Text string `json:"text"`

	// ContrastRatio is the WCAG contrast ratio between the button text
	// and its background. Zero means not measured.
	ContrastRatio float64 `json:"contrast_ratio"`

	// Area is the rendered size of the button in square CSS pixels.
	// Zero means not measured.
	Area float64 `json:"area"`
}

// NavigationTiming is the load time breakdown from the browser's
// navigation timing API, in milliseconds.
type NavigationTiming struct {
	// DNSMillis is the domain lookup duration.
	DNSMillis int64 `json:"dns_ms"`

	// TCPMillis is the connection establishment duration.
	TCPMillis int64 `json:"tcp_ms"`

	// RequestMillis is the time from request start to first response byte.
	RequestMillis int64 `json:"request_ms"`

	// ResponseMillis is the response download duration.
	ResponseMillis int64 `json:"response_ms"`

	// DOMLoadMillis is the time from navigation start to
	// DOMContentLoaded.
	DOMLoadMillis int64 `json:"dom_load_ms"`

	// FullLoadMillis is the time from navigation start to the load event.
	FullLoadMillis int64 `json:"full_load_ms"`
}

// ViewportScroll records the horizontal overflow measurement at one
// viewport size.
type ViewportScroll struct {
	// Width and Height are the emulated viewport dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ScrollWidth is the document's scrollWidth at this viewport.
	// A value greater than Width means horizontal scrolling.
	ScrollWidth int `json:"scroll_width"`
}

// HasHorizontalScroll reports whether the measurement shows horizontal
// overflow at its viewport.
func (v ViewportScroll) HasHorizontalScroll() bool {
	return v.ScrollWidth > v.Width
}
