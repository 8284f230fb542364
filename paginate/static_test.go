package paginate_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/discordkit/dispatch"
	"github.com/dshills/discordkit/event"
	"github.com/dshills/discordkit/event/eventtest"
	"github.com/dshills/discordkit/paginate"
)

func newRegistry(t *testing.T) *dispatch.ButtonRegistry {
	t.Helper()
	reg, err := dispatch.NewButtonRegistry(16, nil)
	require.NoError(t, err)
	return reg
}

func pages(titles ...string) []event.Page {
	out := make([]event.Page, len(titles))
	for i, title := range titles {
		out[i] = event.Page{Title: title}
	}
	return out
}

// buttonID finds the session button whose action suffix matches.
func buttonID(t *testing.T, buttons []event.Button, action string) string {
	t.Helper()
	for _, b := range buttons {
		if strings.HasSuffix(b.ID, ":"+action) {
			return b.ID
		}
	}
	t.Fatalf("no button with action %q in %v", action, buttons)
	return ""
}

// press simulates a button activation routed back through the registry.
func press(t *testing.T, reg *dispatch.ButtonRegistry, id, userID string, r event.InteractionResponder) error {
	t.Helper()
	fn, ok := reg.Resolve(id)
	require.True(t, ok, "button %q should resolve", id)
	return fn(event.ComponentActivation{
		Type:        event.ComponentButton,
		ComponentID: id,
		UserID:      userID,
		Responder:   r,
	})
}

func TestStaticBuilderValidation(t *testing.T) {
	reg := newRegistry(t)
	msg := event.Message{AuthorID: "u1", Responder: &eventtest.Channel{}}

	tests := []struct {
		name    string
		build   func() (*paginate.Static, error)
		wantErr error
	}{
		{
			name: "no registry",
			build: func() (*paginate.Static, error) {
				return paginate.NewStatic().AddPages(pages("a")...).ForMessage(msg).Build()
			},
			wantErr: paginate.ErrNoButtonRegistry,
		},
		{
			name: "no target",
			build: func() (*paginate.Static, error) {
				return paginate.NewStatic().AddPages(pages("a")...).
					WithButtons(reg).WithOwner("u1").Build()
			},
			wantErr: paginate.ErrAmbiguousTarget,
		},
		{
			name: "both targets",
			build: func() (*paginate.Static, error) {
				return paginate.NewStatic().AddPages(pages("a")...).
					WithButtons(reg).
					ForMessage(msg).
					ForCommand(event.CommandInvocation{UserID: "u1", Responder: &eventtest.Interaction{}}).
					Build()
			},
			wantErr: paginate.ErrAmbiguousTarget,
		},
		{
			name: "surface without owner",
			build: func() (*paginate.Static, error) {
				return paginate.NewStatic().AddPages(pages("a")...).
					WithButtons(reg).WithSurface(&eventtest.Surface{}).Build()
			},
			wantErr: paginate.ErrNoOwner,
		},
		{
			name: "no pages",
			build: func() (*paginate.Static, error) {
				return paginate.NewStatic().WithButtons(reg).ForMessage(msg).Build()
			},
			wantErr: paginate.ErrNoPages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStaticMessageFlow(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two", "three")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	sent := ch.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "one", sent[0].Page.Title)
	require.Len(t, sent[0].Buttons, 3, "previous, stop, next")

	inter := &eventtest.Interaction{}
	next := buttonID(t, sent[0].Buttons, "next")
	require.NoError(t, press(t, reg, next, "u1", inter))

	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 1, inter.DeferUpdates())

	edits := ch.Surface().Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, "two", edits[0].Page.Title)
}

func TestStaticWrapping(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two", "three")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	prev := buttonID(t, ch.Sent()[0].Buttons, "previous")
	require.NoError(t, press(t, reg, prev, "u1", &eventtest.Interaction{}))

	assert.Equal(t, 2, p.CurrentPage(), "previous from the first page wraps to the last")
}

func TestStaticWithoutWrapping(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two")...).
		WithButtons(reg).
		WrapPages(false).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	buttons := ch.Sent()[0].Buttons
	prev := buttonID(t, buttons, "previous")
	next := buttonID(t, buttons, "next")

	require.NoError(t, press(t, reg, prev, "u1", &eventtest.Interaction{}))
	assert.Equal(t, 0, p.CurrentPage(), "previous at the first page stays put")

	require.NoError(t, press(t, reg, next, "u1", &eventtest.Interaction{}))
	require.NoError(t, press(t, reg, next, "u1", &eventtest.Interaction{}))
	assert.Equal(t, 1, p.CurrentPage(), "next at the last page stays put")
}

func TestStaticDeniesNonOwner(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	inter := &eventtest.Interaction{}
	next := buttonID(t, ch.Sent()[0].Buttons, "next")
	require.NoError(t, press(t, reg, next, "intruder", inter))

	assert.Equal(t, 0, p.CurrentPage(), "no transition for non-owners")
	replies := inter.Replies()
	require.Len(t, replies, 1)
	assert.Equal(t, paginate.NotYourMenuReply, replies[0].Content)
	assert.True(t, replies[0].Ephemeral)
	assert.Zero(t, inter.DeferUpdates())
}

func TestStaticStopButton(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	buttons := ch.Sent()[0].Buttons
	stop := buttonID(t, buttons, "stop")
	require.NoError(t, press(t, reg, stop, "u1", &eventtest.Interaction{}))

	assert.Equal(t, 1, ch.Surface().Cleared(), "stopping strips the components")
	assert.Zero(t, ch.Surface().Deleted())

	// The session is dead; further presses are ignored.
	inter := &eventtest.Interaction{}
	next := buttonID(t, buttons, "next")
	require.NoError(t, press(t, reg, next, "u1", inter))
	assert.Zero(t, inter.DeferUpdates())
	assert.Empty(t, ch.Surface().Edits())
}

func TestStaticStopDeletesMessage(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())
	require.NoError(t, p.Stop(true))

	assert.Equal(t, 1, ch.Surface().Deleted())
}

func TestStaticSinglePageHasNoButtons(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("only")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	sent := ch.Sent()
	require.Len(t, sent, 1)
	assert.Empty(t, sent[0].Buttons)
}

func TestStaticPaginateAtClamps(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two", "three")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)

	require.NoError(t, p.PaginateAt(99))
	assert.Equal(t, 2, p.CurrentPage())

	require.NoError(t, p.PaginateAt(-5))
	assert.Equal(t, 0, p.CurrentPage())
}

func TestStaticCommandFlow(t *testing.T) {
	reg := newRegistry(t)
	inter := &eventtest.Interaction{}
	require.NoError(t, inter.Defer(false))

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two")...).
		WithButtons(reg).
		ForCommand(event.CommandInvocation{UserID: "u1", Responder: inter}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	edits := inter.PageEdits()
	require.Len(t, edits, 1)
	assert.Equal(t, "one", edits[0].Page.Title)

	next := buttonID(t, edits[0].Buttons, "next")
	require.NoError(t, press(t, reg, next, "u1", inter))

	edits = inter.PageEdits()
	require.Len(t, edits, 2)
	assert.Equal(t, "two", edits[1].Page.Title)
}

// Presses may arrive from concurrent executor goroutines; the session must
// serialize them so the page position stays consistent.
func TestStaticSerializesConcurrentPresses(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two", "three")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	next := buttonID(t, ch.Sent()[0].Buttons, "next")
	fn, ok := reg.Resolve(next)
	require.True(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, fn(event.ComponentActivation{
				Type:        event.ComponentButton,
				ComponentID: next,
				UserID:      "u1",
				Responder:   &eventtest.Interaction{},
			}))
		}()
	}
	wg.Wait()

	// 30 single steps over 3 wrapping pages land back on the first.
	assert.Equal(t, 0, p.CurrentPage())
	assert.Len(t, ch.Surface().Edits(), 30)
}

func TestStaticIgnoresUnknownAction(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewStatic().
		AddPages(pages("one", "two")...).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	// Forge an id with the right session prefix but a bogus action.
	next := buttonID(t, ch.Sent()[0].Buttons, "next")
	forged := strings.TrimSuffix(next, "next") + "bogus"

	inter := &eventtest.Interaction{}
	require.NoError(t, press(t, reg, forged, "u1", inter))
	assert.Equal(t, 0, p.CurrentPage())
	assert.Zero(t, inter.DeferUpdates())
}
