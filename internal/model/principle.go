package model

// Principle is one named UI/UX heuristic category scored independently.
//
// Design decision: We use a string type rather than iota constants because
// principles appear verbatim in JSON exports and config keys, and a stable
// lowercase identifier avoids a separate serialization mapping.
type Principle string

// The ten audit principles. The declaration order below is the fixed,
// documented evaluation order; Principles() and the aggregator both
// depend on it.
const (
	// PrincipleSimplicity measures visual and structural restraint:
	// navigation size, text density, interactive element count.
	PrincipleSimplicity Principle = "simplicity"

	// PrincipleUserCentered measures whether the page is built for
	// real users: keyboard focusability and ARIA labelling.
	PrincipleUserCentered Principle = "user_centered_design"

	// PrincipleVisibility measures whether primary actions stand out:
	// call-to-action contrast and size.
	PrincipleVisibility Principle = "visibility"

	// PrincipleConsistency measures uniformity of the visual language:
	// color, font, spacing, and button style variation.
	PrincipleConsistency Principle = "consistency"

	// PrincipleFeedback measures whether forms communicate state:
	// validation messages and loading affordances.
	PrincipleFeedback Principle = "feedback"

	// PrincipleClarity measures how understandable the page is:
	// title length, heading structure, and link text quality.
	PrincipleClarity Principle = "clarity"

	// PrincipleAccessibility measures assistive-technology support:
	// semantic structure, alt text, heading hierarchy, form labels.
	PrincipleAccessibility Principle = "accessibility"

	// PrincipleUsability measures whether the page is pleasant to wait
	// for: measured load time against the configured budget.
	PrincipleUsability Principle = "usability"

	// PrincipleEfficiency measures resource weight: image count,
	// external resources, and form input count.
	PrincipleEfficiency Principle = "efficiency"

	// PrincipleDelight measures positive emotional tone in the page
	// copy.
	PrincipleDelight Principle = "delight"
)

// Principles returns the ten principles in their fixed evaluation order.
// The returned slice is a fresh copy; callers may modify it freely.
func Principles() []Principle {
	return []Principle{
		PrincipleSimplicity,
		PrincipleUserCentered,
		PrincipleVisibility,
		PrincipleConsistency,
		PrincipleFeedback,
		PrincipleClarity,
		PrincipleAccessibility,
		PrincipleUsability,
		PrincipleEfficiency,
		PrincipleDelight,
	}
}

// displayNames maps principle identifiers to their human-readable names.
var displayNames = map[Principle]string{
	PrincipleSimplicity:    "Simplicity",
	PrincipleUserCentered:  "User-Centered Design",
	PrincipleVisibility:    "Visibility",
	PrincipleConsistency:   "Consistency",
	PrincipleFeedback:      "Feedback",
	PrincipleClarity:       "Clarity",
	PrincipleAccessibility: "Accessibility",
	PrincipleUsability:     "Usability",
	PrincipleEfficiency:    "Efficiency",
	PrincipleDelight:       "Delight",
}

// DisplayName returns the human-readable name of the principle.
// Unknown principles fall back to their raw identifier.
func (p Principle) DisplayName() string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return string(p)
}

// DefaultRecommendation returns the placeholder message writers show when
// a principle produced no recommendations.
//
// Design decision: The scoring core returns an empty recommendation slice
// for a clean pass; this display string lives here, next to the data types,
// so that the text, markdown, and JSON writers all render the same default
// without the evaluators embedding presentation text.
func (p Principle) DefaultRecommendation() string {
	return "No specific " + p.DisplayName() + " recommendations found."
}
