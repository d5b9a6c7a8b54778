package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The threshold defaults are calibrated against typical content pages:
// generous enough that a well-built page passes cleanly, strict enough
// that cluttered pages lose points on more than one principle.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "uxscan"

	// DefaultTimeout is the navigation timeout for a single capture.
	// Headless Chrome needs time to render JavaScript-heavy pages, so
	// this is deliberately generous.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies uxscan in HTTP requests.
	// A descriptive User-Agent lets site operators recognize audit
	// traffic in their logs.
	DefaultUserAgent = "uxscan/1.0 (+https://github.com/uxscan/uxscan)"

	// DefaultProbeLimit is the number of concurrent HEAD requests used
	// by the broken link/image probe. Bounded to stay polite to the
	// audited origin.
	DefaultProbeLimit = 8

	// DefaultProbeTimeout is the per-request timeout for link probes.
	DefaultProbeTimeout = 10 * time.Second

	// DefaultTopRecommendations is how many recommendations the
	// aggregator keeps in the ranked list.
	DefaultTopRecommendations = 5

	// DefaultExportFile is the JSON export path used when --export is
	// given without --output.
	DefaultExportFile = "uxscan-report.json"

	// DefaultMaxBodySize limits the response body read by the static
	// capturer. 5MB covers any reasonable HTML document.
	DefaultMaxBodySize = 5 * 1024 * 1024
)

// Config holds all configuration for an audit run. It is populated from
// defaults, optionally overlaid by a YAML config file, then by CLI flags,
// and passed through the application by dependency injection. Evaluators
// treat it as immutable.
type Config struct {
	// Thresholds holds the per-principle check thresholds.
	Thresholds Thresholds `yaml:"thresholds"`

	// Scoring holds the grade band thresholds.
	Scoring ScoringBands `yaml:"scoring_thresholds"`

	// Accessibility toggles individual accessibility checks.
	Accessibility AccessibilityChecks `yaml:"accessibility_checks"`

	// Export toggles the optional blocks of the JSON export.
	Export ExportOptions `yaml:"export_options"`

	// Viewports are the responsive testing viewport sizes. The largest
	// viewport's snapshot is authoritative for scoring; every viewport
	// feeds the horizontal-scroll checks.
	Viewports []Viewport `yaml:"responsive_testing"`

	// TopRecommendations is the size of the ranked recommendation list.
	TopRecommendations int `yaml:"top_recommendations"`

	// Capture configures the browser collaborator.
	Capture CaptureConfig `yaml:"capture"`

	// === Runtime options (CLI flags, never read from the file) ===

	// TargetURL is the page to audit.
	TargetURL string `yaml:"-"`

	// ExportEnabled turns on the JSON export.
	ExportEnabled bool `yaml:"-"`

	// ExportPath is the JSON export file path.
	ExportPath string `yaml:"-"`

	// MarkdownReport renders the report as Markdown instead of text.
	MarkdownReport bool `yaml:"-"`

	// ReportFile redirects the rendered report from stdout to a file.
	ReportFile string `yaml:"-"`

	// StaticCapture forces the HTTP fallback capturer instead of the
	// headless browser.
	StaticCapture bool `yaml:"-"`

	// SaveToDB archives the finished report in the SQLite store.
	SaveToDB bool `yaml:"-"`

	// DBDir is the directory holding the SQLite archive.
	DBDir string `yaml:"-"`

	// Verbose enables slog.LevelDebug output.
	Verbose bool `yaml:"-"`

	// ConfigFilePath is the explicit config file path, if the user gave one.
	ConfigFilePath string `yaml:"-"`
}

// Thresholds groups the named check thresholds by principle.
// Only pass/fail thresholds are configurable; the penalty each failing
// check subtracts is fixed in the evaluators.
type Thresholds struct {
	Simplicity   SimplicityThresholds   `yaml:"simplicity"`
	UserCentered UserCenteredThresholds `yaml:"user_centered_design"`
	Visibility   VisibilityThresholds   `yaml:"visibility"`
	Consistency  ConsistencyThresholds  `yaml:"consistency"`
	Feedback     FeedbackThresholds     `yaml:"feedback"`
	Clarity      ClarityThresholds      `yaml:"clarity"`
	Usability    UsabilityThresholds    `yaml:"usability"`
	Efficiency   EfficiencyThresholds   `yaml:"efficiency"`
}

// SimplicityThresholds bound the element counts a page can carry before
// it reads as cluttered.
type SimplicityThresholds struct {
	// MaxNavElements is the maximum number of navigation elements.
	MaxNavElements int `yaml:"max_nav_elements"`

	// MaxTextElements is the maximum number of text-bearing elements.
	MaxTextElements int `yaml:"max_text_elements"`

	// MaxInteractiveElements is the maximum number of interactive elements.
	MaxInteractiveElements int `yaml:"max_interactive_elements"`

	// MinHeadings and MaxHeadings bound the heading count.
	MinHeadings int `yaml:"min_headings"`
	MaxHeadings int `yaml:"max_headings"`
}

// UserCenteredThresholds set the minimum accessibility affordances a page
// built for users should carry.
type UserCenteredThresholds struct {
	// MinFocusableElements is the minimum number of keyboard-focusable
	// elements.
	MinFocusableElements int `yaml:"min_focusable_elements"`

	// MinAriaLabels is the minimum number of ARIA-labelled elements.
	MinAriaLabels int `yaml:"min_aria_labels"`
}

// VisibilityThresholds govern the call-to-action prominence checks.
type VisibilityThresholds struct {
	// MaxCTAToCheck is how many call-to-action candidates are checked.
	MaxCTAToCheck int `yaml:"max_cta_to_check"`

	// MinCTAContrast is the minimum WCAG contrast ratio for a prominent
	// button. 4.5 matches the WCAG AA text threshold.
	MinCTAContrast float64 `yaml:"min_cta_contrast"`

	// MinCTAArea is the minimum rendered button size in square pixels.
	MinCTAArea float64 `yaml:"min_cta_area"`
}

// ConsistencyThresholds bound the visual variation across the page.
type ConsistencyThresholds struct {
	// MaxColors is the maximum number of distinct colors.
	MaxColors int `yaml:"max_colors"`

	// MaxFonts is the maximum number of distinct font families.
	MaxFonts int `yaml:"max_fonts"`

	// MaxSpacingVariants is the maximum number of distinct spacing values.
	MaxSpacingVariants int `yaml:"max_spacing_variants"`

	// MaxButtonStyles is the maximum number of distinct button styles.
	MaxButtonStyles int `yaml:"max_button_styles"`
}

// FeedbackThresholds govern the form feedback checks.
type FeedbackThresholds struct {
	// MaxFormsToCheck is how many forms are checked for validation and
	// loading affordances.
	MaxFormsToCheck int `yaml:"max_forms_to_check"`
}

// ClarityThresholds govern the content clarity checks.
type ClarityThresholds struct {
	// MaxTitleLength is the maximum page title length in characters.
	MaxTitleLength int `yaml:"max_title_length"`
}

// UsabilityThresholds govern the load time check.
type UsabilityThresholds struct {
	// MaxLoadTimeMillis is the load time budget in milliseconds.
	MaxLoadTimeMillis int64 `yaml:"max_load_time_ms"`
}

// EfficiencyThresholds bound the resource weight of the page.
type EfficiencyThresholds struct {
	// MaxImages is the maximum number of images.
	MaxImages int `yaml:"max_images"`

	// MaxExternalResources is the maximum number of cross-origin resources.
	MaxExternalResources int `yaml:"max_external_resources"`

	// MaxFormInputs is the maximum number of form input fields.
	MaxFormInputs int `yaml:"max_form_inputs"`
}

// ScoringBands are the inclusive lower bounds of the qualitative grades.
// A score below NeedsImprovement grades POOR.
type ScoringBands struct {
	Excellent        float64 `yaml:"excellent"`
	Good             float64 `yaml:"good"`
	NeedsImprovement float64 `yaml:"needs_improvement"`
}

// AccessibilityChecks toggles individual accessibility checks.
// A disabled check is skipped entirely (treated as passing).
type AccessibilityChecks struct {
	SemanticStructure bool `yaml:"semantic_structure"`
	AltText           bool `yaml:"alt_text"`
	HeadingHierarchy  bool `yaml:"heading_hierarchy"`
	FormLabels        bool `yaml:"form_labels"`
}

// ExportOptions toggles the optional blocks of the JSON export.
type ExportOptions struct {
	IncludePerformanceMetrics bool `yaml:"include_performance_metrics"`
	IncludeMetaTags           bool `yaml:"include_meta_tags"`
	IncludeConsoleErrors      bool `yaml:"include_console_errors"`
	IncludeRecommendations    bool `yaml:"include_recommendations"`
}

// Viewport is one responsive testing viewport size in CSS pixels.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CaptureConfig configures the browser collaborator and the link probe.
type CaptureConfig struct {
	// UserAgent is the User-Agent header for HTTP requests.
	UserAgent string `yaml:"user_agent"`

	// MaxBodySize limits the response body read by the static capturer.
	MaxBodySize int64 `yaml:"max_body_size"`

	// ProbeLimit is the concurrent request limit for link probes.
	ProbeLimit int `yaml:"probe_limit"`

	// Timeout is the navigation timeout for a capture.
	// Set from the --timeout flag, not from the config file.
	Timeout time.Duration `yaml:"-"`

	// ProbeTimeout is the per-request timeout for link probes.
	ProbeTimeout time.Duration `yaml:"-"`
}

// NewConfig creates a Config with all default values.
//
// Design decision: We use a constructor rather than relying on zero values
// because nearly every threshold default is non-zero. The constructor also
// serves as documentation of the defaults, and the YAML loader overlays a
// file on top of it so missing keys keep their defaults.
func NewConfig() *Config {
	return &Config{
		Thresholds: Thresholds{
			Simplicity: SimplicityThresholds{
				MaxNavElements:         10,
				MaxTextElements:        60,
				MaxInteractiveElements: 25,
				MinHeadings:            1,
				MaxHeadings:            15,
			},
			UserCentered: UserCenteredThresholds{
				MinFocusableElements: 1,
				MinAriaLabels:        1,
			},
			Visibility: VisibilityThresholds{
				MaxCTAToCheck:  3,
				MinCTAContrast: 4.5,
				MinCTAArea:     1000,
			},
			Consistency: ConsistencyThresholds{
				MaxColors:          12,
				MaxFonts:           3,
				MaxSpacingVariants: 8,
				MaxButtonStyles:    4,
			},
			Feedback: FeedbackThresholds{
				MaxFormsToCheck: 5,
			},
			Clarity: ClarityThresholds{
				MaxTitleLength: 60,
			},
			Usability: UsabilityThresholds{
				MaxLoadTimeMillis: 3000,
			},
			Efficiency: EfficiencyThresholds{
				MaxImages:            30,
				MaxExternalResources: 20,
				MaxFormInputs:        20,
			},
		},
		Scoring: ScoringBands{
			Excellent:        85,
			Good:             70,
			NeedsImprovement: 40,
		},
		Accessibility: AccessibilityChecks{
			SemanticStructure: true,
			AltText:           true,
			HeadingHierarchy:  true,
			FormLabels:        true,
		},
		Export: ExportOptions{
			IncludePerformanceMetrics: true,
			IncludeMetaTags:           true,
			IncludeConsoleErrors:      true,
			IncludeRecommendations:    true,
		},
		Viewports: []Viewport{
			{Width: 360, Height: 640},
			{Width: 768, Height: 1024},
			{Width: 1920, Height: 1080},
		},
		TopRecommendations: DefaultTopRecommendations,
		Capture: CaptureConfig{
			UserAgent:    DefaultUserAgent,
			MaxBodySize:  DefaultMaxBodySize,
			ProbeLimit:   DefaultProbeLimit,
			Timeout:      DefaultTimeout,
			ProbeTimeout: DefaultProbeTimeout,
		},
	}
}

// XDGDataDir returns the XDG data directory for uxscan.
// On Linux: ~/.local/share/uxscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for uxscan.
// On Linux: ~/.config/uxscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks that the configuration is usable.
// It is called once after flag parsing, before any capture begins, and
// returns the first problem found.
func (c *Config) Validate() error {
	if c.TargetURL == "" {
		return ErrNoTarget
	}

	if c.Capture.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	b := c.Scoring
	if b.Excellent > 100 || b.NeedsImprovement < 0 ||
		b.Excellent <= b.Good || b.Good <= b.NeedsImprovement {
		return ErrInvalidScoringBands
	}

	if c.TopRecommendations <= 0 {
		return ErrInvalidTopRecommendations
	}

	if len(c.Viewports) == 0 {
		return ErrNoViewports
	}

	if c.Capture.ProbeLimit <= 0 {
		return ErrInvalidProbeLimit
	}

	if c.Thresholds.Feedback.MaxFormsToCheck <= 0 ||
		c.Thresholds.Visibility.MaxCTAToCheck <= 0 {
		return ErrInvalidCheckLimit
	}

	return nil
}
