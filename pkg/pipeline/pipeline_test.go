package pipeline

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/observability"
	"github.com/matzehuels/fontify/pkg/style"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	reg, err := style.New(style.WithSource(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("style.New: %v", err)
	}
	return NewRunner(reg, nil)
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"table", false},
		{"plain", false},
		{"json", false},
		{"yaml", false},
		{"JSON", true}, // case-sensitive
		{"svg", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options: %v", err)
	}
	if opts.Category != DefaultCategory {
		t.Errorf("Category = %q, want %q", opts.Category, DefaultCategory)
	}
	if opts.Case != DefaultCase {
		t.Errorf("Case = %q, want %q", opts.Case, DefaultCase)
	}
	if opts.Decoration != DefaultDecoration {
		t.Errorf("Decoration = %q, want %q", opts.Decoration, DefaultDecoration)
	}
	if opts.MinReadability != style.ReadabilityLow {
		t.Errorf("MinReadability = %q, want low", opts.MinReadability)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}

	// Names are normalized
	opts = Options{Category: "GOTHIC", Case: "Upper", MinReadability: "medium"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Category != style.CategoryGothic || opts.Case != convert.CaseUpper {
		t.Errorf("normalized = %q/%q", opts.Category, opts.Case)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"category", Options{Category: "poemas"}, errors.ErrCodeInvalidCategory},
		{"case", Options{Case: "title"}, errors.ErrCodeInvalidCase},
		{"decoration", Options{Decoration: "lasers"}, errors.ErrCodeInvalidDecoration},
		{"readability", Options{MinReadability: "perfect"}, errors.ErrCodeInvalidReadability},
		{"limit", Options{Limit: -1}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunAll(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "Hola", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Placeholder {
		t.Error("Placeholder should be false for real input")
	}
	if res.Stats.Total != r.Registry.Len() || res.Stats.Shown != r.Registry.Len() {
		t.Errorf("stats = %+v, want all %d styles", res.Stats, r.Registry.Len())
	}
	first := res.Items[0]
	if first.ID != "script-normal" || first.Output != "ℋℴ𝓁𝒶" {
		t.Errorf("first item = %s %q", first.ID, first.Output)
	}
	if first.Graphemes != 4 {
		t.Errorf("Graphemes = %d, want 4", first.Graphemes)
	}
}

func TestRunPlaceholder(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "", Options{Placeholder: 1, Category: style.CategoryCursive})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Placeholder || res.Input != "Amor" {
		t.Errorf("Input = %q (placeholder %v), want Amor", res.Input, res.Placeholder)
	}
	for _, it := range res.Items {
		if it.Output == "" {
			t.Errorf("%s rendered nothing for the placeholder", it.ID)
		}
	}
}

func TestRunCategory(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "Paz", Options{Category: style.CategoryGothic})
	if err != nil {
		t.Fatal(err)
	}
	want := r.Registry.ByCategory(style.CategoryGothic)
	if len(res.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(res.Items), len(want))
	}
	for i, it := range res.Items {
		if it.ID != want[i].ID {
			t.Errorf("item %d = %s, want %s", i, it.ID, want[i].ID)
		}
	}
}

func TestRunReadability(t *testing.T) {
	r := newTestRunner(t)
	for _, lvl := range []style.Readability{style.ReadabilityMedium, style.ReadabilityHigh} {
		res, err := r.Run(context.Background(), "Arte", Options{MinReadability: lvl})
		if err != nil {
			t.Fatal(err)
		}
		if res.Stats.Matched >= res.Stats.Total {
			t.Errorf("%s: matched %d of %d, expected some filtered", lvl, res.Stats.Matched, res.Stats.Total)
		}
		for _, it := range res.Items {
			if !it.Readability.AtLeast(lvl) {
				t.Errorf("%s: %s has readability %s", lvl, it.ID, it.Readability)
			}
		}
	}
}

func TestRunSearch(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "Hola", Options{
		Category: style.CategoryFacebook,
		Search:   "GOTICA",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) == 0 {
		t.Fatal("accent-insensitive search found nothing")
	}
	ids := make([]string, 0, len(res.Items))
	for _, it := range res.Items {
		if !strings.Contains(fold(it.Name), "gotica") {
			t.Errorf("%s (%q) does not match", it.ID, it.Name)
		}
		ids = append(ids, it.ID)
	}
	if ids[0] != "fb-gothic" {
		t.Errorf("ids = %v, want fb-gothic first", ids)
	}
}

func TestRunPinnedFirst(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "Hola", Options{
		Category: style.CategoryFacebook,
		Pinned:   []string{"fb-mono", "no-such-style", "fb-wide"},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Pinned keep their registry order: fb-wide precedes fb-mono.
	if res.Items[0].ID != "fb-wide" || res.Items[1].ID != "fb-mono" {
		t.Fatalf("first items = %s, %s", res.Items[0].ID, res.Items[1].ID)
	}
	if !res.Items[0].Pinned || !res.Items[1].Pinned || res.Items[2].Pinned {
		t.Error("Pinned flags are wrong")
	}

	// Unpinned keep their relative order.
	var rest []string
	for _, s := range r.Registry.ByCategory(style.CategoryFacebook) {
		if s.ID != "fb-mono" && s.ID != "fb-wide" {
			rest = append(rest, s.ID)
		}
	}
	for i, id := range rest {
		if got := res.Items[i+2].ID; got != id {
			t.Fatalf("item %d = %s, want %s", i+2, got, id)
		}
	}
}

func TestRunLimit(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "Hola", Options{Limit: 3, Pinned: []string{"super-text"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Items) != 3 || res.Stats.Shown != 3 {
		t.Fatalf("shown %d, want 3", len(res.Items))
	}
	if res.Stats.Matched != r.Registry.Len() {
		t.Errorf("Matched = %d, want %d", res.Stats.Matched, r.Registry.Len())
	}
	if res.Items[0].ID != "super-text" {
		t.Errorf("pinned style should survive the limit, got %s", res.Items[0].ID)
	}
}

func TestRunCaseAndDecoration(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Run(context.Background(), "hola", Options{
		Case:       convert.CaseCapitalize,
		Decoration: style.DecorationHearts,
		Limit:      1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Items[0].Output, "♥ ℋℴ𝓁𝒶 ♥"; got != want {
		t.Errorf("Output = %q, want %q", got, want)
	}
}

func TestRunInvalid(t *testing.T) {
	r := newTestRunner(t)
	if _, err := r.Run(context.Background(), "Hola", Options{Category: "nope"}); !errors.Is(err, errors.ErrCodeInvalidCategory) {
		t.Errorf("bad category error = %v", err)
	}
	if _, err := r.Run(context.Background(), "a\x00b", Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("NUL input error = %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	r := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, "Hola", Options{}); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestApply(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	it, err := r.Apply(ctx, "tat-roman-num", "2025", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if it.Output != "MMXXV" {
		t.Errorf("tat-roman-num(2025) = %q, want MMXXV", it.Output)
	}

	it, err = r.Apply(ctx, "script-normal", "", Options{Decoration: style.DecorationStars})
	if err != nil {
		t.Fatal(err)
	}
	if it.Output != "" {
		t.Errorf("empty input = %q, want empty", it.Output)
	}

	if _, err := r.Apply(ctx, "missing", "x", Options{}); !errors.Is(err, errors.ErrCodeStyleNotFound) {
		t.Errorf("missing style error = %v", err)
	}
}

func TestRunHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	h := &countingHooks{}
	observability.SetRenderHooks(h)

	r := newTestRunner(t)
	if _, err := r.Run(context.Background(), "Hola", Options{Category: style.CategoryAmino}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Apply(context.Background(), "script-normal", "Hola", Options{}); err != nil {
		t.Fatal(err)
	}
	if h.starts != 1 || h.completes != 1 || h.applied != 1 {
		t.Errorf("hooks = %+v, want one of each", *h)
	}
	if h.category != string(style.CategoryAmino) {
		t.Errorf("category = %q", h.category)
	}
}

type countingHooks struct {
	observability.NoopRenderHooks
	starts, completes, applied int
	category                   string
}

func (h *countingHooks) OnRenderStart(_ context.Context, category string, _ int) {
	h.starts++
	h.category = category
}

func (h *countingHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

func (h *countingHooks) OnStyleApplied(context.Context, string, time.Duration) {
	h.applied++
}

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Góticas", "goticas"},
		{"ＧＯＴＩＣＡＳ", "goticas"},
		{"Mayúsculas Pequeñas", "mayusculas pequenas"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := fold(tt.in); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatcher(t *testing.T) {
	match := matcher("  negrita ")
	if !match("Gótica Negrita") || match("Cursiva (Normal)") {
		t.Error("matcher(negrita) mismatched")
	}
	if !matcher("")("anything") {
		t.Error("empty query should match everything")
	}
}
