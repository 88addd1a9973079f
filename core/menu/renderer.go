package menu

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Renderer turns item trees into menu markup.
// It holds only immutable settings and is safe for concurrent use.
type Renderer struct {
	cfg      Config
	resolver URLResolver
	logger   *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolver sets the collaborator that maps item urls to hrefs.
func WithResolver(resolver URLResolver) Option {
	return func(r *Renderer) {
		if resolver != nil {
			r.resolver = resolver
		}
	}
}

// WithLogger sets the logger used for diagnostics such as invalid match expressions.
func WithLogger(log *slog.Logger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.logger = log
		}
	}
}

// New creates a Renderer. Blank tag names fall back to "ul"/"li".
func New(cfg Config, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:      cfg.withDefaults(),
		resolver: DefaultResolver,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Selected reports whether the item itself matches the request.
func (r *Renderer) Selected(item *Item, rc RenderContext) bool {
	return newSelector(rc, r.logger).selected(item)
}

// Active reports whether any descendant of the item matches the request.
func (r *Renderer) Active(item *Item, rc RenderContext) bool {
	return newSelector(rc, r.logger).active(item)
}

// Render emits the desktop list followed by the mobile list.
// Nested lists are plain containers; no item owns a dropdown panel.
func (r *Renderer) Render(rc RenderContext, items []*Item) templ.Component {
	roots := r.roots(items)
	if len(roots) == 0 {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		desktop := r.newPass(rc, Desktop, w, nil)
		desktop.list(roots, 0, r.containerAttrs(Desktop))
		if desktop.w.err != nil {
			return desktop.w.err
		}

		mobile := r.newPass(rc, Mobile, w, nil)
		mobile.list(roots, 0, r.containerAttrs(Mobile))
		return mobile.w.err
	})
}

// RenderDropdown emits the four dropdown fragments in order: desktop panels,
// mobile panels, mobile list, desktop list.
func (r *Renderer) RenderDropdown(rc RenderContext, items []*Item) templ.Component {
	roots := r.roots(items)
	if len(roots) == 0 {
		return templ.NopComponent
	}
	parts := []templ.Component{
		r.DropdownPanels(rc, roots, Desktop),
		r.DropdownPanels(rc, roots, Mobile),
		r.List(rc, roots, Mobile),
		r.List(rc, roots, Desktop),
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, part := range parts {
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// DropdownPanels emits one panel per top-level item that has renderable
// children. Panel ids are "<prefix><index><variant suffix>".
func (r *Renderer) DropdownPanels(rc RenderContext, items []*Item, v Variant) templ.Component {
	roots := r.roots(items)
	if len(roots) == 0 {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := r.newPass(rc, v, w, roots)
		for idx, item := range p.reg.items {
			p.list(r.children(item), 1, []attr{
				{"id", r.panelID(idx, v)},
				{"class", r.cfg.DropdownListCSS},
			})
		}
		return p.w.err
	})
}

// List emits the full top-level list for a variant. Items owning a dropdown
// panel link to it through data-activates and do not render children inline.
func (r *Renderer) List(rc RenderContext, items []*Item, v Variant) templ.Component {
	roots := r.roots(items)
	if len(roots) == 0 {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := r.newPass(rc, v, w, roots)
		p.list(roots, 0, r.containerAttrs(v))
		return p.w.err
	})
}

func (r *Renderer) roots(items []*Item) []*Item {
	if len(r.cfg.Roots) > 0 {
		return r.cfg.Roots
	}
	return items
}

// children returns the children to render, honouring MaxDepth.
func (r *Renderer) children(item *Item) []*Item {
	if r.cfg.MaxDepth == 0 || item.Depth < r.cfg.MaxDepth {
		return item.Children
	}
	return nil
}

func (r *Renderer) panelID(idx int, v Variant) string {
	return r.cfg.DropdownIDPrefix + strconv.Itoa(idx) + v.Suffix()
}

func (r *Renderer) containerAttrs(v Variant) []attr {
	if v == Mobile {
		return []attr{{"id", r.cfg.MobileListID}, {"class", r.cfg.MobileListCSS}}
	}
	return []attr{{"class", r.cfg.RegularListCSS}}
}

// newPass starts a render pass. When dropdownRoots is non-nil the pass owns
// a registry built from those roots.
func (r *Renderer) newPass(rc RenderContext, v Variant, w io.Writer, dropdownRoots []*Item) *pass {
	p := &pass{
		r:       r,
		sel:     newSelector(rc, r.logger),
		variant: v,
		w:       &htmlWriter{w: w},
	}
	if dropdownRoots != nil {
		p.reg = newRegistry(dropdownRoots, func(item *Item) bool {
			return len(r.children(item)) > 0
		})
	}
	return p
}

type pass struct {
	r       *Renderer
	sel     *selector
	variant Variant
	reg     *registry
	w       *htmlWriter
}

func (p *pass) list(items []*Item, level int, attrs []attr) {
	if len(items) == 0 {
		return
	}
	tag := p.r.cfg.ListTag
	p.w.open(tag, attrs)
	for idx, item := range items {
		p.item(item, idx, level)
	}
	p.w.close(tag)
}

func (p *pass) item(item *Item, idx, level int) {
	panel := ""
	if level == 0 {
		if pi, ok := p.reg.lookup(idx); ok {
			panel = p.r.panelID(pi, p.variant)
		}
	}

	tag := p.r.cfg.ListItemTag
	p.w.open(tag, []attr{{"class", p.css(item, idx, panel != "")}})
	p.link(item, panel)
	if panel == "" {
		p.list(p.r.children(item), level+1, nil)
	}
	p.w.close(tag)
}

func (p *pass) link(item *Item, panel string) {
	class := p.r.cfg.LinkCSS
	if panel != "" {
		class = joinClasses(class, p.r.cfg.DropdownLinkCSS)
	}

	p.w.open("a", []attr{
		{"class", class},
		{"href", p.r.resolver.Resolve(item.URL)},
		{"data-activates", panel},
	})
	p.w.text(item.Title)
	p.w.close("a")
}

// css assembles the ordered class list of a list item. Dropdown owners carry
// their state on the panel, so their list item gets only position classes.
func (p *pass) css(item *Item, idx int, owner bool) string {
	cfg := p.r.cfg
	classes := make([]string, 0, 4)
	if !owner && p.sel.active(item) {
		classes = append(classes, cfg.ActiveCSS)
	}
	if !owner && p.sel.selected(item) {
		classes = append(classes, cfg.SelectedCSS)
	}
	if idx == 0 {
		classes = append(classes, cfg.FirstCSS)
	}
	if idx == len(item.ShownSiblings) {
		classes = append(classes, cfg.LastCSS)
	}
	return joinClasses(classes...)
}

func joinClasses(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
