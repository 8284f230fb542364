package paginate

import (
	"fmt"
	"log/slog"

	"github.com/dshills/discordkit/dispatch"
	"github.com/dshills/discordkit/event"
)

// Renderer builds the page for one element of a dynamic paginator's data
// list. It is invoked at most once per page; results are memoized.
type Renderer func(data any) (event.Page, error)

// CommandSelectFunc receives the selected page's backing data for a
// command-backed session.
type CommandSelectFunc func(inter event.InteractionResponder, data any) error

// MessageSelectFunc receives the selected page's backing data for a
// message-backed session.
type MessageSelectFunc func(surface event.MessageSurface, data any) error

// Dynamic renders pages lazily from a data list, memoizes them, and
// pre-renders both neighbors after every transition so a subsequent press
// never waits on the renderer. An optional select continuation hands the
// current page's data to the caller without destroying the session.
type Dynamic struct {
	session

	data     []any
	rendered []*event.Page
	render   Renderer

	cmdSelect CommandSelectFunc
	msgSelect MessageSelectFunc
}

// Paginate shows the paginator at its first page and pre-renders the
// neighbors.
func (p *Dynamic) Paginate() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = 0
	pg, err := p.page(p.current)
	if err != nil {
		return err
	}
	if err := p.show(pg); err != nil {
		return err
	}
	p.readAhead()
	return nil
}

// Stop tears the session down, optionally deleting the host message.
func (p *Dynamic) Stop(deleteMessage bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.destroy(deleteMessage)
}

// CurrentPage returns the zero-based page position.
func (p *Dynamic) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Rendered reports whether page i has been rendered into the cache.
func (p *Dynamic) Rendered(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return i >= 0 && i < len(p.rendered) && p.rendered[i] != nil
}

func (p *Dynamic) onButton(ev event.ComponentActivation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.destroyed {
		return nil
	}
	if ev.UserID != p.ownerID {
		return p.deny(ev)
	}

	switch buttonAction(ev.ComponentID) {
	case actionPrevious:
		if i := p.prevIndex(); i >= 0 {
			p.current = i
		}
	case actionNext:
		if i := p.nextIndex(); i >= 0 {
			p.current = i
		}
	case actionStop:
		if err := ev.Responder.DeferUpdate(); err != nil {
			return err
		}
		return p.destroy(false)
	case actionSelect:
		return p.handleSelect(ev)
	default:
		return nil
	}

	if err := ev.Responder.DeferUpdate(); err != nil {
		return err
	}
	pg, err := p.page(p.current)
	if err != nil {
		return err
	}
	if err := p.show(pg); err != nil {
		return err
	}
	p.readAhead()
	return nil
}

// handleSelect hands the current page's backing data to the configured
// continuation. The session stays alive afterwards so the user can keep
// navigating - drill-down menus rely on this.
func (p *Dynamic) handleSelect(ev event.ComponentActivation) error {
	if p.cmdSelect == nil && p.msgSelect == nil {
		return nil
	}
	if err := ev.Responder.DeferUpdate(); err != nil {
		return err
	}
	data := p.data[p.current]
	if p.isCommand() {
		return p.cmdSelect(p.inter, data)
	}
	return p.msgSelect(p.surface, data)
}

// page returns the rendered page i, rendering and caching it on first use.
// A page without a footer gets a "Page i of N" footer.
func (p *Dynamic) page(i int) (event.Page, error) {
	if cached := p.rendered[i]; cached != nil {
		return *cached, nil
	}
	pg, err := p.render(p.data[i])
	if err != nil {
		return event.Page{}, fmt.Errorf("rendering page %d: %w", i, err)
	}
	if pg.Footer == "" {
		pg.Footer = fmt.Sprintf("Page %d of %d", i+1, p.pages)
	}
	p.rendered[i] = &pg
	return pg, nil
}

// readAhead renders both neighbor pages so the next press is served from
// the cache. Render failures here are logged and retried on demand when the
// page is actually shown.
func (p *Dynamic) readAhead() {
	for _, i := range []int{p.nextIndex(), p.prevIndex()} {
		if i < 0 {
			continue
		}
		if _, err := p.page(i); err != nil {
			p.log.Error("read-ahead render failed", "session", p.id, "error", err)
		}
	}
}

// DynamicBuilder assembles a Dynamic paginator.
type DynamicBuilder struct {
	data     []any
	render   Renderer
	registry *dispatch.ButtonRegistry
	wrap     bool
	ownerID  string
	log      *slog.Logger

	msg     event.MessageResponder
	inter   event.InteractionResponder
	surface event.MessageSurface

	cmdSelect CommandSelectFunc
	msgSelect MessageSelectFunc
}

// NewDynamic creates a builder with page wrapping enabled.
func NewDynamic() *DynamicBuilder {
	return &DynamicBuilder{wrap: true}
}

// AddPageData appends backing data, one element per page.
func (b *DynamicBuilder) AddPageData(data ...any) *DynamicBuilder {
	b.data = append(b.data, data...)
	return b
}

// WithRenderer sets the lazy page renderer.
func (b *DynamicBuilder) WithRenderer(r Renderer) *DynamicBuilder {
	b.render = r
	return b
}

// WithButtons sets the button registry the session registers into.
func (b *DynamicBuilder) WithButtons(reg *dispatch.ButtonRegistry) *DynamicBuilder {
	b.registry = reg
	return b
}

// WrapPages controls whether navigation wraps past the first and last page.
func (b *DynamicBuilder) WrapPages(wrap bool) *DynamicBuilder {
	b.wrap = wrap
	return b
}

// WithOwner sets the only user allowed to drive the paginator.
func (b *DynamicBuilder) WithOwner(userID string) *DynamicBuilder {
	b.ownerID = userID
	return b
}

// ForMessage targets the channel a chat message arrived from.
func (b *DynamicBuilder) ForMessage(ev event.Message) *DynamicBuilder {
	b.msg = ev.Responder
	if b.ownerID == "" {
		b.ownerID = ev.AuthorID
	}
	return b
}

// ForCommand targets a structured-command interaction.
func (b *DynamicBuilder) ForCommand(ev event.CommandInvocation) *DynamicBuilder {
	b.inter = ev.Responder
	if b.ownerID == "" {
		b.ownerID = ev.UserID
	}
	return b
}

// WithSurface adopts an already-sent message instead of sending a new one.
func (b *DynamicBuilder) WithSurface(s event.MessageSurface) *DynamicBuilder {
	b.surface = s
	return b
}

// OnCommandSelect wires the select continuation for command-backed
// sessions. Mutually exclusive with OnMessageSelect.
func (b *DynamicBuilder) OnCommandSelect(fn CommandSelectFunc) *DynamicBuilder {
	b.cmdSelect = fn
	return b
}

// OnMessageSelect wires the select continuation for message-backed
// sessions. Mutually exclusive with OnCommandSelect.
func (b *DynamicBuilder) OnMessageSelect(fn MessageSelectFunc) *DynamicBuilder {
	b.msgSelect = fn
	return b
}

// WithLogger sets the session logger.
func (b *DynamicBuilder) WithLogger(log *slog.Logger) *DynamicBuilder {
	b.log = log
	return b
}

// Build validates the configuration, registers the session's button prefix,
// and returns the paginator.
func (b *DynamicBuilder) Build() (*Dynamic, error) {
	if b.render == nil {
		return nil, ErrNoRenderer
	}
	if b.cmdSelect != nil && b.msgSelect != nil {
		return nil, ErrBothSelect
	}
	// A continuation of the wrong style would be invoked with a nil target
	// on the select press; refuse it here instead.
	if b.cmdSelect != nil && b.inter == nil {
		return nil, fmt.Errorf("%w: OnCommandSelect requires a command target", ErrSelectMismatch)
	}
	if b.msgSelect != nil && b.inter != nil {
		return nil, fmt.Errorf("%w: OnMessageSelect requires a message target", ErrSelectMismatch)
	}

	p := &Dynamic{
		data:      b.data,
		rendered:  make([]*event.Page, len(b.data)),
		render:    b.render,
		cmdSelect: b.cmdSelect,
		msgSelect: b.msgSelect,
	}
	err := p.session.init(sessionConfig{
		registry: b.registry,
		wrap:     b.wrap,
		ownerID:  b.ownerID,
		log:      b.log,
		msg:      b.msg,
		inter:    b.inter,
		surface:  b.surface,
		pages:    len(b.data),
	})
	if err != nil {
		return nil, err
	}

	if p.pages > 1 {
		p.buttons = p.navButtons(b.cmdSelect != nil || b.msgSelect != nil)
	}
	b.registry.Register(p.id, p.onButton)
	return p, nil
}
