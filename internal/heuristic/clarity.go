package heuristic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalties for the clarity checks.
const (
	clarityTitlePenalty   = 15
	clarityHeadingPenalty = 15
	clarityLinkPenalty    = 15
)

// unclearLinkTexts is the fixed set of link texts that tell the user
// nothing about the destination. Matched case-insensitively against the
// trimmed link text.
var unclearLinkTexts = map[string]bool{
	"click here": true,
	"read more":  true,
	"learn more": true,
	"more":       true,
	"...":        true,
}

// ClarityEvaluator scores how understandable the page is: a concise
// title, a single top-level heading, and link texts that describe their
// destination.
type ClarityEvaluator struct{}

// NewClarityEvaluator creates a new ClarityEvaluator.
func NewClarityEvaluator() *ClarityEvaluator {
	return &ClarityEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *ClarityEvaluator) Principle() model.Principle {
	return model.PrincipleClarity
}

// Evaluate checks title length, h1 count, and unclear link texts.
// An empty title or link list is an unmeasured signal and passes.
func (e *ClarityEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	t := cfg.Thresholds.Clarity
	sc := newScorecard()

	// Character count, not byte count: a non-ASCII title must not be
	// penalized for its encoding.
	if titleLen := utf8.RuneCountInString(snap.Title); titleLen > 0 && titleLen > t.MaxTitleLength {
		sc.fail(clarityTitlePenalty, fmt.Sprintf(
			"Shorten the page title: %d characters found, aim for at most %d.",
			titleLen, t.MaxTitleLength))
	}

	if snap.H1Count > 1 {
		sc.fail(clarityHeadingPenalty, fmt.Sprintf(
			"Use a single top-level heading: %d <h1> elements found.",
			snap.H1Count))
	}

	if unclear := e.unclearLinks(snap.LinkTexts); len(unclear) > 0 {
		sc.fail(clarityLinkPenalty, fmt.Sprintf(
			"Replace unclear link text (%s) with text that describes the destination.",
			strings.Join(unclear, ", ")))
	}

	return sc.result(e.Principle())
}

// unclearLinks returns the distinct offending link texts in document order.
func (e *ClarityEvaluator) unclearLinks(linkTexts []string) []string {
	var unclear []string
	seen := make(map[string]bool)

	for _, text := range linkTexts {
		normalized := strings.ToLower(strings.TrimSpace(text))
		if !unclearLinkTexts[normalized] || seen[normalized] {
			continue
		}
		seen[normalized] = true
		unclear = append(unclear, fmt.Sprintf("%q", strings.TrimSpace(text)))
	}

	return unclear
}
