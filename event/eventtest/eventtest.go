// Package eventtest provides in-memory recording implementations of the
// event package's responder interfaces for use in tests.
package eventtest

import (
	"sync"

	"github.com/dshills/discordkit/event"
)

// Reply is one recorded plain-text interaction reply.
type Reply struct {
	Content   string
	Ephemeral bool
}

// PageSend is one recorded page payload with its buttons.
type PageSend struct {
	Page    event.Page
	Buttons []event.Button
}

// MenuReply is one recorded reply carrying a select menu.
type MenuReply struct {
	Content   string
	Menu      event.Select
	Ephemeral bool
}

// Interaction records every call made through event.InteractionResponder.
// Set FailWith before use to make all methods return that error. Safe for
// concurrent use; the dispatch executor calls responders from worker
// goroutines.
type Interaction struct {
	FailWith error

	mu           sync.Mutex
	acked        bool
	defers       int
	deferUpdates int
	replies      []Reply
	menus        []MenuReply
	modals       []event.Modal
	edits        []string
	pageEdits    []PageSend
	cleared      int
	deleted      int
}

func (r *Interaction) Acknowledged() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acked
}

func (r *Interaction) Defer(_ bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.defers++
	r.acked = true
	return nil
}

func (r *Interaction) DeferUpdate() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.deferUpdates++
	r.acked = true
	return nil
}

func (r *Interaction) Reply(content string, ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.replies = append(r.replies, Reply{Content: content, Ephemeral: ephemeral})
	r.acked = true
	return nil
}

func (r *Interaction) ReplyMenu(content string, menu event.Select, ephemeral bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.menus = append(r.menus, MenuReply{Content: content, Menu: menu, Ephemeral: ephemeral})
	r.acked = true
	return nil
}

func (r *Interaction) OpenModal(m event.Modal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.modals = append(r.modals, m)
	r.acked = true
	return nil
}

func (r *Interaction) EditOriginal(content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.edits = append(r.edits, content)
	return nil
}

func (r *Interaction) EditPage(p event.Page, buttons []event.Button) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.pageEdits = append(r.pageEdits, PageSend{Page: p, Buttons: buttons})
	return nil
}

func (r *Interaction) ClearComponents() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.cleared++
	return nil
}

func (r *Interaction) DeleteOriginal() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.deleted++
	return nil
}

// Defers returns how many times Defer was called.
func (r *Interaction) Defers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defers
}

// DeferUpdates returns how many times DeferUpdate was called.
func (r *Interaction) DeferUpdates() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deferUpdates
}

// Replies returns the recorded plain-text replies.
func (r *Interaction) Replies() []Reply {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Reply(nil), r.replies...)
}

// Menus returns the recorded select-menu replies.
func (r *Interaction) Menus() []MenuReply {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]MenuReply(nil), r.menus...)
}

// Modals returns the recorded opened modals.
func (r *Interaction) Modals() []event.Modal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Modal(nil), r.modals...)
}

// Edits returns the recorded EditOriginal contents.
func (r *Interaction) Edits() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.edits...)
}

// PageEdits returns the recorded EditPage payloads.
func (r *Interaction) PageEdits() []PageSend {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]PageSend(nil), r.pageEdits...)
}

// Cleared returns how many times ClearComponents was called.
func (r *Interaction) Cleared() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleared
}

// Deleted returns how many times DeleteOriginal was called.
func (r *Interaction) Deleted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleted
}

// Channel records calls made through event.MessageResponder. SendPage hands
// out a single Surface shared across calls.
type Channel struct {
	FailWith error

	mu      sync.Mutex
	replies []string
	sent    []PageSend
	surface *Surface
}

func (c *Channel) Reply(content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return c.FailWith
	}
	c.replies = append(c.replies, content)
	return nil
}

func (c *Channel) SendPage(p event.Page, buttons []event.Button) (event.MessageSurface, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailWith != nil {
		return nil, c.FailWith
	}
	c.sent = append(c.sent, PageSend{Page: p, Buttons: buttons})
	if c.surface == nil {
		c.surface = &Surface{}
	}
	return c.surface, nil
}

// Replies returns the recorded plain-text replies.
func (c *Channel) Replies() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.replies...)
}

// Sent returns the recorded SendPage payloads.
func (c *Channel) Sent() []PageSend {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]PageSend(nil), c.sent...)
}

// Surface returns the surface handed out by SendPage, or nil when no page
// has been sent yet.
func (c *Channel) Surface() *Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface
}

// Surface records calls made through event.MessageSurface.
type Surface struct {
	FailWith error

	mu      sync.Mutex
	edits   []PageSend
	cleared int
	deleted int
}

func (s *Surface) EditPage(p event.Page, buttons []event.Button) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.edits = append(s.edits, PageSend{Page: p, Buttons: buttons})
	return nil
}

func (s *Surface) ClearComponents() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.cleared++
	return nil
}

func (s *Surface) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.deleted++
	return nil
}

// Edits returns the recorded EditPage payloads.
func (s *Surface) Edits() []PageSend {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PageSend(nil), s.edits...)
}

// Cleared returns how many times ClearComponents was called.
func (s *Surface) Cleared() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

// Deleted returns how many times Delete was called.
func (s *Surface) Deleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleted
}

// Suggester records autocomplete suggestion lists.
type Suggester struct {
	FailWith error

	mu          sync.Mutex
	suggestions [][]event.Choice
}

func (s *Suggester) Suggest(choices []event.Choice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.suggestions = append(s.suggestions, choices)
	return nil
}

// Suggestions returns every suggestion list sent so far.
func (s *Suggester) Suggestions() [][]event.Choice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]event.Choice(nil), s.suggestions...)
}

// Registrar records pushed command specs.
type Registrar struct {
	FailWith error

	mu     sync.Mutex
	pushed []event.CommandSpec
}

func (r *Registrar) PushCommands(specs []event.CommandSpec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	r.pushed = append(r.pushed, specs...)
	return nil
}

// Pushed returns every spec pushed so far.
func (r *Registrar) Pushed() []event.CommandSpec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.CommandSpec(nil), r.pushed...)
}

// Owner resolves the application owner to a fixed id.
type Owner struct {
	ID       string
	FailWith error
}

func (o *Owner) AppOwnerID() (string, error) {
	if o.FailWith != nil {
		return "", o.FailWith
	}
	return o.ID, nil
}
