package heuristic

import (
	"fmt"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalties for the accessibility checks. Alt text weighs more
// because missing alt text locks screen-reader users out of content
// entirely rather than degrading it.
const (
	accessibilitySemanticPenalty  = 20
	accessibilityAltPenalty       = 25
	accessibilityHierarchyPenalty = 20
	accessibilityLabelPenalty     = 20
)

// AccessibilityEvaluator scores assistive-technology support: semantic
// structure, image alt text, heading hierarchy, and form labelling.
// Individual checks can be disabled through the accessibility_checks
// config toggles.
type AccessibilityEvaluator struct{}

// NewAccessibilityEvaluator creates a new AccessibilityEvaluator.
func NewAccessibilityEvaluator() *AccessibilityEvaluator {
	return &AccessibilityEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *AccessibilityEvaluator) Principle() model.Principle {
	return model.PrincipleAccessibility
}

// Evaluate runs the enabled accessibility checks.
func (e *AccessibilityEvaluator) Evaluate(snap *model.PageSnapshot, cfg *config.Config) model.PrincipleResult {
	checks := cfg.Accessibility
	sc := newScorecard()

	// Semantic structure only matters on a page that has content;
	// an empty snapshot passes vacuously.
	hasContent := snap.TextElementCount > 0 || snap.InteractiveElementCount > 0
	if checks.SemanticStructure && hasContent && snap.SemanticElementCount == 0 {
		sc.fail(accessibilitySemanticPenalty,
			"Use semantic structural elements (header, nav, main, footer) instead of generic containers.")
	}

	if checks.AltText && snap.ImagesMissingAlt > 0 {
		sc.fail(accessibilityAltPenalty, fmt.Sprintf(
			"Add alt text: %d of %d images are missing alt attributes.",
			snap.ImagesMissingAlt, snap.ImageCount))
	}

	if checks.HeadingHierarchy {
		if skipped := skippedHeadingLevels(snap.HeadingLevels); len(skipped) > 0 {
			sc.fail(accessibilityHierarchyPenalty, fmt.Sprintf(
				"Fix the heading hierarchy: levels are skipped at %v.", skipped))
		}
	}

	if checks.FormLabels && snap.InputsMissingLabel > 0 {
		sc.fail(accessibilityLabelPenalty, fmt.Sprintf(
			"Associate labels with form inputs: %d inputs have no label.",
			snap.InputsMissingLabel))
	}

	return sc.result(e.Principle())
}

// skippedHeadingLevels returns the heading transitions that skip a level,
// formatted as "h1->h3" strings. An empty level list passes.
func skippedHeadingLevels(levels []int) []string {
	var skipped []string
	for i := 1; i < len(levels); i++ {
		// Descending transitions (h3 back to h2) are always fine;
		// only a downward jump of more than one level is a skip.
		if levels[i] > levels[i-1]+1 {
			skipped = append(skipped, fmt.Sprintf("h%d->h%d", levels[i-1], levels[i]))
		}
	}
	return skipped
}
