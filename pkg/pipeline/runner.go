package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rivo/uniseg"

	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/observability"
	"github.com/matzehuels/fontify/pkg/style"
	"github.com/matzehuels/fontify/pkg/symbols"
)

// Runner renders texts against a style registry.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different options, provided the registry's Zalgo source is
// safe for concurrent use (the default one is).
type Runner struct {
	Registry *style.Registry
	Logger   *log.Logger
}

// NewRunner creates a runner over reg.
// If reg is nil, the default registry is used.
func NewRunner(reg *style.Registry, logger *log.Logger) *Runner {
	if reg == nil {
		reg = style.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Registry: reg,
		Logger:   logger,
	}
}

// Run renders text through every style selected by opts.
func (r *Runner) Run(ctx context.Context, text string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := errors.ValidateText(text); err != nil {
		return nil, err
	}

	result := &Result{Input: text, Category: opts.Category}
	if text == "" {
		result.Input = symbols.Placeholder(opts.Placeholder)
		result.Placeholder = true
	}

	styles := r.Registry.ByCategory(opts.Category)
	result.Stats.Total = len(styles)
	styles = Select(styles, opts)
	result.Stats.Matched = len(styles)
	if opts.Limit > 0 && len(styles) > opts.Limit {
		styles = styles[:opts.Limit]
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, string(opts.Category), len(styles))

	start := time.Now()
	pinned := pinSet(opts.Pinned)
	input := opts.Case.Apply(result.Input)
	result.Items = make([]Item, 0, len(styles))
	for _, s := range styles {
		if err := ctx.Err(); err != nil {
			hooks.OnRenderComplete(ctx, string(opts.Category), len(result.Items), time.Since(start), err)
			return nil, err
		}
		result.Items = append(result.Items, render(s, input, opts.Decoration, pinned[s.ID]))
	}
	result.Stats.Shown = len(result.Items)
	result.Stats.Duration = time.Since(start)
	hooks.OnRenderComplete(ctx, string(opts.Category), result.Stats.Shown, result.Stats.Duration, nil)

	opts.Logger.Debug("rendered styles",
		"category", opts.Category,
		"total", result.Stats.Total,
		"matched", result.Stats.Matched,
		"shown", result.Stats.Shown,
		"duration", result.Stats.Duration)

	return result, nil
}

// Apply renders text through a single style. Empty text stays empty (no
// placeholder): this is what gets copied.
func (r *Runner) Apply(ctx context.Context, id, text string, opts Options) (*Item, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := errors.ValidateText(text); err != nil {
		return nil, err
	}
	s, err := r.Registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	it := render(s, opts.Case.Apply(text), opts.Decoration, slices.Contains(opts.Pinned, id))
	elapsed := time.Since(start)
	observability.Render().OnStyleApplied(ctx, id, elapsed)

	opts.Logger.Debug("applied style", "id", id, "graphemes", it.Graphemes, "duration", elapsed)
	return &it, nil
}

// Select filters styles by readability and name search, then moves pinned
// styles to the front. Relative order is otherwise preserved.
func Select(styles []style.Style, opts Options) []style.Style {
	match := matcher(opts.Search)
	out := make([]style.Style, 0, len(styles))
	for _, s := range styles {
		if s.Readability.AtLeast(opts.MinReadability) && match(s.Name) {
			out = append(out, s)
		}
	}
	if len(opts.Pinned) == 0 {
		return out
	}
	pinned := pinSet(opts.Pinned)
	slices.SortStableFunc(out, func(a, b style.Style) int {
		switch pa, pb := pinned[a.ID], pinned[b.ID]; {
		case pa && !pb:
			return -1
		case pb && !pa:
			return 1
		}
		return 0
	})
	return out
}

func render(s style.Style, input string, d style.Decoration, pinned bool) Item {
	out := d.Apply(s.Apply(input))
	return Item{
		ID:          s.ID,
		Name:        s.Name,
		Readability: s.Readability,
		Output:      out,
		Pinned:      pinned,
		Graphemes:   uniseg.GraphemeClusterCount(out),
	}
}

func pinSet(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// applyLogger sets the runner's logger on opts if opts.Logger is nil.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
