package heuristic

import (
	"strings"

	"github.com/uxscan/uxscan/internal/config"
	"github.com/uxscan/uxscan/internal/model"
)

// Fixed penalty when the page copy carries no positive tone at all.
const delightPenalty = 20

// positiveWords is the fixed list of words matched case-insensitively as
// substrings of the page text. One hit is enough to pass.
var positiveWords = []string{
	"welcome",
	"thank",
	"enjoy",
	"great",
	"love",
	"awesome",
	"wonderful",
	"congratulations",
	"delight",
	"happy",
}

// DelightEvaluator scores positive emotional tone in the page copy.
// This is the softest of the ten heuristics; it only looks for a hint of
// warmth in the visible text.
type DelightEvaluator struct{}

// NewDelightEvaluator creates a new DelightEvaluator.
func NewDelightEvaluator() *DelightEvaluator {
	return &DelightEvaluator{}
}

// Principle returns the principle this evaluator scores.
func (e *DelightEvaluator) Principle() model.Principle {
	return model.PrincipleDelight
}

// Evaluate checks the page text for at least one positive word.
// An empty page text is an unmeasured signal and passes.
func (e *DelightEvaluator) Evaluate(snap *model.PageSnapshot, _ *config.Config) model.PrincipleResult {
	sc := newScorecard()

	if snap.PageText != "" && !containsPositiveWord(snap.PageText) {
		sc.fail(delightPenalty,
			"Add a touch of warmth to the page copy: greet, thank, or encourage the user somewhere.")
	}

	return sc.result(e.Principle())
}

// containsPositiveWord reports whether the text contains any entry of the
// positive word list, case-insensitively.
func containsPositiveWord(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
