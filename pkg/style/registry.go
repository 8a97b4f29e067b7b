package style

import (
	"sync"

	"github.com/matzehuels/fontify/pkg/convert"
	"github.com/matzehuels/fontify/pkg/errors"
)

// Registry is an ordered, immutable set of styles with unique ids.
type Registry struct {
	styles []Style
	byID   map[string]int
}

type options struct {
	src   convert.Source
	extra []Style
}

// Option configures [New].
type Option func(*options)

// WithSource sets the random source used by the Zalgo styles.
func WithSource(src convert.Source) Option {
	return func(o *options) { o.src = src }
}

// WithStyles appends styles after the built-in catalog.
func WithStyles(styles ...Style) Option {
	return func(o *options) { o.extra = append(o.extra, styles...) }
}

// New assembles the catalog and checks it. It fails with
// ErrCodeDuplicateStyle when two styles share an id and with
// ErrCodeInvalidStyleID when an id is malformed.
func New(opts ...Option) (*Registry, error) {
	o := options{src: convert.Global}
	for _, opt := range opts {
		opt(&o)
	}

	styles := catalog(o.src)
	for _, s := range o.extra {
		styles = append(styles, s.clone())
	}
	r := &Registry{
		styles: styles,
		byID:   make(map[string]int, len(styles)),
	}
	for i, s := range styles {
		if err := errors.ValidateStyleID(s.ID); err != nil {
			return nil, err
		}
		if j, ok := r.byID[s.ID]; ok {
			return nil, errors.New(errors.ErrCodeDuplicateStyle,
				"style id %q used by %q and %q", s.ID, styles[j].Name, s.Name)
		}
		r.byID[s.ID] = i
	}
	return r, nil
}

// Default returns the shared registry built from the built-in catalog.
var Default = sync.OnceValue(func() *Registry {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
})

// Len returns the number of styles.
func (r *Registry) Len() int { return len(r.styles) }

// All returns every style in presentation order. The slice and each
// style's category list are copies.
func (r *Registry) All() []Style {
	out := make([]Style, len(r.styles))
	for i, s := range r.styles {
		out[i] = s.clone()
	}
	return out
}

// ByCategory returns the styles tagged c, in registry order. CategoryAll
// returns everything; an unknown category returns an empty list.
func (r *Registry) ByCategory(c Category) []Style {
	if c == CategoryAll {
		return r.All()
	}
	out := make([]Style, 0, len(r.styles)/4)
	for _, s := range r.styles {
		if s.In(c) {
			out = append(out, s.clone())
		}
	}
	return out
}

// Lookup resolves a style id.
func (r *Registry) Lookup(id string) (Style, error) {
	i, ok := r.byID[id]
	if !ok {
		return Style{}, errors.New(errors.ErrCodeStyleNotFound, "style %q not found", id)
	}
	return r.styles[i].clone(), nil
}

// ByCategory filters the default registry.
func ByCategory(c Category) []Style {
	return Default().ByCategory(c)
}
