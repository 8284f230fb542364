package paginate

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dshills/discordkit/dispatch"
	"github.com/dshills/discordkit/event"
)

// Static pages through a fixed list of pre-rendered pages. For dynamic page
// generation, read-ahead, and select hand-off, use Dynamic.
type Static struct {
	session
	rendered []event.Page
}

// Paginate shows the paginator at its first page.
func (p *Static) Paginate() error {
	return p.PaginateAt(0)
}

// PaginateAt shows the paginator at page i, clamped to the valid range.
func (p *Static) PaginateAt(i int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = clamp(i, p.pages)
	return p.show(p.rendered[p.current])
}

// Stop tears the session down, optionally deleting the host message.
func (p *Static) Stop(deleteMessage bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.destroy(deleteMessage)
}

// CurrentPage returns the zero-based page position.
func (p *Static) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// onButton handles a press on one of the session's buttons.
func (p *Static) onButton(ev event.ComponentActivation) error {
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
	default:
		return nil
	}

	if err := ev.Responder.DeferUpdate(); err != nil {
		return err
	}
	return p.show(p.rendered[p.current])
}

// clamp bounds i to [0, pages).
func clamp(i, pages int) int {
	if i < 0 {
		return 0
	}
	if i >= pages {
		return pages - 1
	}
	return i
}

// StaticBuilder assembles a Static paginator. All validation happens in
// Build, so malformed sessions fail before anything reaches the platform.
type StaticBuilder struct {
	pages    []event.Page
	registry *dispatch.ButtonRegistry
	wrap     bool
	ownerID  string
	log      *slog.Logger

	msg     event.MessageResponder
	inter   event.InteractionResponder
	surface event.MessageSurface
}

// NewStatic creates a builder with page wrapping enabled.
func NewStatic() *StaticBuilder {
	return &StaticBuilder{wrap: true}
}

// AddPages appends pre-rendered pages. May be called repeatedly.
func (b *StaticBuilder) AddPages(pages ...event.Page) *StaticBuilder {
	b.pages = append(b.pages, pages...)
	return b
}

// WithButtons sets the button registry the session registers into.
func (b *StaticBuilder) WithButtons(reg *dispatch.ButtonRegistry) *StaticBuilder {
	b.registry = reg
	return b
}

// WrapPages controls whether navigation wraps past the first and last page.
func (b *StaticBuilder) WrapPages(wrap bool) *StaticBuilder {
	b.wrap = wrap
	return b
}

// WithOwner sets the only user allowed to drive the paginator. Defaults to
// the author/invoker of the reply target's event.
func (b *StaticBuilder) WithOwner(userID string) *StaticBuilder {
	b.ownerID = userID
	return b
}

// ForMessage targets the channel a chat message arrived from.
func (b *StaticBuilder) ForMessage(ev event.Message) *StaticBuilder {
	b.msg = ev.Responder
	if b.ownerID == "" {
		b.ownerID = ev.AuthorID
	}
	return b
}

// ForCommand targets a structured-command interaction. The interaction must
// be deferred or replied to before the paginator edits it.
func (b *StaticBuilder) ForCommand(ev event.CommandInvocation) *StaticBuilder {
	b.inter = ev.Responder
	if b.ownerID == "" {
		b.ownerID = ev.UserID
	}
	return b
}

// WithSurface adopts an already-sent message instead of sending a new one.
func (b *StaticBuilder) WithSurface(s event.MessageSurface) *StaticBuilder {
	b.surface = s
	return b
}

// WithLogger sets the session logger.
func (b *StaticBuilder) WithLogger(log *slog.Logger) *StaticBuilder {
	b.log = log
	return b
}

// Build validates the configuration, registers the session's button prefix,
// and returns the paginator.
func (b *StaticBuilder) Build() (*Static, error) {
	p := &Static{rendered: b.pages}
	err := p.session.init(sessionConfig{
		registry: b.registry,
		wrap:     b.wrap,
		ownerID:  b.ownerID,
		log:      b.log,
		msg:      b.msg,
		inter:    b.inter,
		surface:  b.surface,
		pages:    len(b.pages),
	})
	if err != nil {
		return nil, err
	}
	if p.pages > 1 {
		p.buttons = p.navButtons(false)
	}
	b.registry.Register(p.id, p.onButton)
	return p, nil
}

// sessionConfig carries the validated inputs shared by both builders.
type sessionConfig struct {
	registry *dispatch.ButtonRegistry
	wrap     bool
	ownerID  string
	log      *slog.Logger
	msg      event.MessageResponder
	inter    event.InteractionResponder
	surface  event.MessageSurface
	pages    int
}

// init validates cfg and fills in the session fields.
func (s *session) init(cfg sessionConfig) error {
	if cfg.registry == nil {
		return ErrNoButtonRegistry
	}
	messageTarget := cfg.msg != nil || cfg.surface != nil
	if messageTarget == (cfg.inter != nil) {
		return ErrAmbiguousTarget
	}
	if cfg.ownerID == "" {
		return ErrNoOwner
	}
	if cfg.pages < 1 {
		return ErrNoPages
	}

	log := cfg.log
	if log == nil {
		log = slog.Default()
	}

	s.id = uuid.NewString() + ":" + cfg.ownerID
	s.ownerID = cfg.ownerID
	s.pages = cfg.pages
	s.wrap = cfg.wrap
	s.log = log
	s.msg = cfg.msg
	s.inter = cfg.inter
	s.surface = cfg.surface
	return nil
}
