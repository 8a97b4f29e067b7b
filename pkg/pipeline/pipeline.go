// Package pipeline renders a text through a filtered list of styles.
//
// This package implements the flow every fontify front end shares (the
// convert command, the TUI, library embedders): resolve the category list,
// filter it, order it, then run case → converter → decoration for every
// style. Centralizing it keeps the CLI and the TUI in agreement about what
// "pinned first" or "readability medium" means.
//
// # Stages
//
//  1. Select: styles of the category, in registry order
//  2. Filter: minimum readability, then accent-insensitive name search
//  3. Order: pinned styles first, stable otherwise; then the limit
//  4. Render: case transform, style converter, decoration frame
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Run(ctx, "Hola", pipeline.Options{
//	    Category:   style.CategoryGothic,
//	    Decoration: style.DecorationBats,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, it := range result.Items {
//	    fmt.Println(it.Name, it.Output)
//	}
//
// An empty text is the zero state: the runner renders a rotating
// placeholder word instead, and [Result.Placeholder] reports it.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/style"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and TUI
// =============================================================================

const (
	// DefaultCategory lists every style.
	DefaultCategory = style.CategoryAll

	// DefaultCase leaves the input untouched.
	DefaultCase = convert.CaseNormal

	// DefaultDecoration frames nothing.
	DefaultDecoration = style.DecorationNone

	// DefaultFormat is the CLI output format.
	DefaultFormat = FormatTable
)

// Format constants for output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTable: true,
	FormatPlain: true,
	FormatJSON:  true,
	FormatYAML:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a render.
// Zero values select the defaults.
type Options struct {
	Category       style.Category    `json:"category,omitempty" yaml:"category,omitempty"`
	Case           convert.Case      `json:"case,omitempty" yaml:"case,omitempty"`
	Decoration     style.Decoration  `json:"decoration,omitempty" yaml:"decoration,omitempty"`
	MinReadability style.Readability `json:"min_readability,omitempty" yaml:"min_readability,omitempty"`

	// Search keeps styles whose name contains it, ignoring case and accents.
	Search string `json:"search,omitempty" yaml:"search,omitempty"`

	// Pinned style ids are listed first. Unknown ids are ignored.
	Pinned []string `json:"pinned,omitempty" yaml:"pinned,omitempty"`

	// Placeholder selects the zero-state word used for empty input.
	Placeholder int `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Limit caps the number of items; 0 means no limit.
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" yaml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Input is the text that was rendered (the placeholder for empty input).
	Input string `json:"input" yaml:"input"`

	// Placeholder is true when Input came from the zero state.
	Placeholder bool `json:"placeholder" yaml:"placeholder"`

	// Category is the resolved category.
	Category style.Category `json:"category" yaml:"category"`

	// Items holds one rendering per selected style, in display order.
	Items []Item `json:"items" yaml:"items"`

	// Stats contains counts and timing.
	Stats Stats `json:"stats" yaml:"stats"`
}

// Item is one style's rendering.
type Item struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Readability style.Readability `json:"readability" yaml:"readability"`
	Output      string            `json:"output" yaml:"output"`
	Pinned      bool              `json:"pinned" yaml:"pinned"`

	// Graphemes is the visible length of Output in user-perceived characters.
	Graphemes int `json:"graphemes" yaml:"graphemes"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Total    int           `json:"total" yaml:"total"`       // styles in the category
	Matched  int           `json:"matched" yaml:"matched"`   // after readability and search
	Shown    int           `json:"shown" yaml:"shown"`       // after the limit
	Duration time.Duration `json:"duration" yaml:"duration"` // render time
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: table, plain, json, yaml)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	cat, err := style.ParseCategory(string(o.Category))
	if err != nil {
		return err
	}
	o.Category = cat

	c, err := convert.ParseCase(string(o.Case))
	if err != nil {
		return err
	}
	o.Case = c

	d, err := style.ParseDecoration(string(o.Decoration))
	if err != nil {
		return err
	}
	o.Decoration = d

	r, err := style.ParseMinReadability(string(o.MinReadability))
	if err != nil {
		return err
	}
	o.MinReadability = r

	if o.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "limit cannot be negative (got %d)", o.Limit)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// String summarizes the options for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("category=%s case=%s decoration=%s readability=%s",
		o.Category, o.Case, o.Decoration, o.MinReadability)
}
