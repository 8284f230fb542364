package paginate_test

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/discordkit/event"
	"github.com/dshills/discordkit/event/eventtest"
	"github.com/dshills/discordkit/paginate"
)

// countingRenderer renders data to a page and counts invocations.
func countingRenderer(calls *atomic.Int32) paginate.Renderer {
	return func(data any) (event.Page, error) {
		calls.Add(1)
		return event.Page{Title: fmt.Sprint(data)}, nil
	}
}

func TestDynamicBuilderValidation(t *testing.T) {
	reg := newRegistry(t)
	msg := event.Message{AuthorID: "u1", Responder: &eventtest.Channel{}}

	_, err := paginate.NewDynamic().
		AddPageData("a").
		WithButtons(reg).
		ForMessage(msg).
		Build()
	assert.ErrorIs(t, err, paginate.ErrNoRenderer)

	var calls atomic.Int32
	_, err = paginate.NewDynamic().
		AddPageData("a").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(msg).
		OnCommandSelect(func(event.InteractionResponder, any) error { return nil }).
		OnMessageSelect(func(event.MessageSurface, any) error { return nil }).
		Build()
	assert.ErrorIs(t, err, paginate.ErrBothSelect)

	_, err = paginate.NewDynamic().
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(msg).
		Build()
	assert.ErrorIs(t, err, paginate.ErrNoPages)

	// A continuation whose style does not match the reply target must be
	// rejected up front; it would be called with a nil target otherwise.
	_, err = paginate.NewDynamic().
		AddPageData("a").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForCommand(event.CommandInvocation{UserID: "u1", Responder: &eventtest.Interaction{}}).
		OnMessageSelect(func(event.MessageSurface, any) error { return nil }).
		Build()
	assert.ErrorIs(t, err, paginate.ErrSelectMismatch)

	_, err = paginate.NewDynamic().
		AddPageData("a").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(msg).
		OnCommandSelect(func(event.InteractionResponder, any) error { return nil }).
		Build()
	assert.ErrorIs(t, err, paginate.ErrSelectMismatch)
}

func TestDynamicRendersLazilyWithReadAhead(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}
	var calls atomic.Int32

	p, err := paginate.NewDynamic().
		AddPageData("a", "b", "c", "d", "e").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, int32(0), calls.Load(), "nothing renders before the first show")
	require.NoError(t, p.Paginate())

	// Page 0 rendered to show, pages 1 and 4 pre-rendered as neighbors
	// (wrapping is on, so the last page neighbors the first).
	assert.Equal(t, int32(3), calls.Load())
	assert.True(t, p.Rendered(0))
	assert.True(t, p.Rendered(1))
	assert.True(t, p.Rendered(4))
	assert.False(t, p.Rendered(2))
	assert.False(t, p.Rendered(3))
}

func TestDynamicMemoizesRenders(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}
	var calls atomic.Int32

	p, err := paginate.NewDynamic().
		AddPageData("a", "b", "c", "d", "e").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())
	require.Equal(t, int32(3), calls.Load())

	next := buttonID(t, ch.Sent()[0].Buttons, "next")
	prev := buttonID(t, ch.Sent()[0].Buttons, "previous")

	// Moving to page 1: already cached, only its neighbor 2 is new.
	require.NoError(t, press(t, reg, next, "u1", &eventtest.Interaction{}))
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, int32(4), calls.Load())

	// Moving back to page 0: everything needed is cached.
	require.NoError(t, press(t, reg, prev, "u1", &eventtest.Interaction{}))
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, int32(4), calls.Load(), "revisits never re-render")
}

func TestDynamicDefaultFooter(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}
	var calls atomic.Int32

	p, err := paginate.NewDynamic().
		AddPageData("a", "b", "c").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	sent := ch.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Page 1 of 3", sent[0].Page.Footer)
}

func TestDynamicKeepsExplicitFooter(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	p, err := paginate.NewDynamic().
		AddPageData("a").
		WithRenderer(func(data any) (event.Page, error) {
			return event.Page{Title: "a", Footer: "custom"}, nil
		}).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	assert.Equal(t, "custom", ch.Sent()[0].Page.Footer)
}

func TestDynamicRenderErrorPropagates(t *testing.T) {
	reg := newRegistry(t)
	boom := errors.New("render boom")

	p, err := paginate.NewDynamic().
		AddPageData("a").
		WithRenderer(func(any) (event.Page, error) { return event.Page{}, boom }).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: &eventtest.Channel{}}).
		Build()
	require.NoError(t, err)

	assert.ErrorIs(t, p.Paginate(), boom)
}

func TestDynamicCommandSelectHandsOffData(t *testing.T) {
	reg := newRegistry(t)
	inter := &eventtest.Interaction{}
	require.NoError(t, inter.Defer(false))

	var calls atomic.Int32
	var selected []any

	p, err := paginate.NewDynamic().
		AddPageData("a", "b", "c").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForCommand(event.CommandInvocation{UserID: "u1", Responder: inter}).
		OnCommandSelect(func(r event.InteractionResponder, data any) error {
			selected = append(selected, data)
			return nil
		}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	buttons := inter.PageEdits()[0].Buttons
	require.Len(t, buttons, 4, "previous, stop, select, next")

	next := buttonID(t, buttons, "next")
	sel := buttonID(t, buttons, "select")

	require.NoError(t, press(t, reg, next, "u1", inter))
	require.NoError(t, press(t, reg, sel, "u1", inter))

	assert.Equal(t, []any{"b"}, selected, "the backing data is handed off, not the page")

	// The session survives the hand-off for drill-down flows.
	require.NoError(t, press(t, reg, next, "u1", inter))
	assert.Equal(t, 2, p.CurrentPage())
}

func TestDynamicMessageSelect(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}

	var gotSurface event.MessageSurface
	var gotData any

	p, err := paginate.NewDynamic().
		AddPageData("a", "b").
		WithRenderer(func(data any) (event.Page, error) {
			return event.Page{Title: fmt.Sprint(data)}, nil
		}).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		OnMessageSelect(func(s event.MessageSurface, data any) error {
			gotSurface = s
			gotData = data
			return nil
		}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	sel := buttonID(t, ch.Sent()[0].Buttons, "select")
	require.NoError(t, press(t, reg, sel, "u1", &eventtest.Interaction{}))

	assert.Equal(t, "a", gotData)
	assert.Same(t, ch.Surface(), gotSurface,
		"the continuation receives the live message surface")
}

func TestDynamicSelectWithoutContinuationIsNoop(t *testing.T) {
	reg := newRegistry(t)
	ch := &eventtest.Channel{}
	var calls atomic.Int32

	p, err := paginate.NewDynamic().
		AddPageData("a", "b").
		WithRenderer(countingRenderer(&calls)).
		WithButtons(reg).
		ForMessage(event.Message{AuthorID: "u1", Responder: ch}).
		Build()
	require.NoError(t, err)
	require.NoError(t, p.Paginate())

	buttons := ch.Sent()[0].Buttons
	require.Len(t, buttons, 3, "no select button without a continuation")

	// A forged select id on a session without a continuation is ignored.
	forged := buttonID(t, buttons, "next")
	forged = forged[:len(forged)-len("next")] + "select"

	inter := &eventtest.Interaction{}
	require.NoError(t, press(t, reg, forged, "u1", inter))
	assert.Zero(t, inter.DeferUpdates())
}
