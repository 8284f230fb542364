package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/dshills/discordkit/command"
	"github.com/dshills/discordkit/dispatch"
	"github.com/dshills/discordkit/event"
	"github.com/dshills/discordkit/paginate"
)

// demoBot carries the state shared by the demo commands. The handler field
// is assigned after the dispatcher is built; dispatch only starts once the
// gateway opens, so the commands never observe it nil.
type demoBot struct {
	log     *slog.Logger
	cancel  context.CancelFunc
	handler *dispatch.Handler

	pollMu    sync.Mutex
	pollVotes map[string]string
}

func newDemoBot(log *slog.Logger, cancel context.CancelFunc) *demoBot {
	return &demoBot{
		log:       log,
		cancel:    cancel,
		pollVotes: make(map[string]string),
	}
}

func (b *demoBot) commands() []*command.Command {
	return []*command.Command{
		{
			Name:    "ping",
			Help:    "Replies with pong.",
			Kind:    command.KindChat,
			Aliases: []string{"p"},
			Chat: func(ev event.Message, _ string) error {
				return ev.Responder.Reply("Pong!")
			},
		},
		{
			Name:      "shutdown",
			Help:      "Stops the bot. Owner only.",
			Kind:      command.KindChat,
			OwnerOnly: true,
			Chat:      b.shutdown,
		},
		{
			Name: "jsonpath",
			Help: "Evaluates a gjson path against a JSON document.",
			Kind: command.KindChat,
			Chat: b.jsonPath,
		},
		{
			Name:  "echo",
			Help:  "Echoes the text option back at you.",
			Kind:  command.KindSlash,
			Slash: b.echo,
			Capabilities: []command.Capability{
				command.Autocomplete{Handle: b.echoSuggestions},
			},
		},
		{
			Name:  "poll",
			Help:  "Starts a yes/no poll.",
			Kind:  command.KindSlash,
			Slash: b.poll,
			Capabilities: []command.Capability{
				command.Buttons{ID: "poll", Handle: b.pollVote},
			},
		},
		{
			Name:  "pick",
			Help:  "Pick a favorite color from a menu.",
			Kind:  command.KindSlash,
			Slash: b.pick,
			Capabilities: []command.Capability{
				command.SelectMenu{ID: "pick-color", Handle: b.pickChosen},
			},
		},
		{
			Name:  "feedback",
			Help:  "Send feedback through a form.",
			Kind:  command.KindSlash,
			Slash: b.feedback,
			Capabilities: []command.Capability{
				command.Modal{ID: "feedback-form", Handle: b.feedbackSubmitted},
			},
		},
		{
			Name:    "whois",
			Help:    "Shows who a user is.",
			Kind:    command.KindUserContext,
			Context: b.whois,
		},
		{
			Name:    "quote",
			Help:    "Quotes a message back into the channel.",
			Kind:    command.KindMessageContext,
			Context: b.quote,
		},
		{
			Name:  "pages",
			Help:  "Shows a short paginated tour of the bot.",
			Kind:  command.KindSlash,
			Slash: b.pages,
		},
		{
			Name:  "browse",
			Help:  "Browse the planets; select one for details.",
			Kind:  command.KindSlash,
			Slash: b.browse,
		},
	}
}

func (b *demoBot) shutdown(ev event.Message, _ string) error {
	err := ev.Responder.Reply("Shutting down. Goodbye!")
	b.cancel()
	return err
}

func (b *demoBot) jsonPath(ev event.Message, args string) error {
	path, doc, ok := strings.Cut(args, " ")
	if !ok || path == "" {
		return ev.Responder.Reply("Usage: " + b.handler.Prefix() + "jsonpath <path> <json>")
	}
	if !gjson.Valid(doc) {
		return ev.Responder.Reply("That is not valid JSON.")
	}
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return ev.Responder.Reply("Nothing at that path.")
	}
	return ev.Responder.Reply(result.String())
}

// echoPhrases feeds the echo command's autocomplete suggestions.
var echoPhrases = []string{
	"hello there",
	"hello world",
	"goodbye",
	"good morning",
	"good night",
	"how are you",
}

func (b *demoBot) echo(ev event.CommandInvocation) error {
	text := ev.Options["text"]
	if text == "" {
		text = "You did not give me anything to echo."
	}
	return ev.Responder.Reply(text, false)
}

func (b *demoBot) echoSuggestions(ev event.Autocomplete) error {
	partial := strings.ToLower(ev.Partial)
	var choices []event.Choice
	for _, phrase := range echoPhrases {
		if strings.HasPrefix(phrase, partial) {
			choices = append(choices, event.Choice{Name: phrase, Value: phrase})
		}
	}
	return ev.Responder.Suggest(choices)
}

func (b *demoBot) poll(ev event.CommandInvocation) error {
	question := ev.Options["question"]
	if question == "" {
		question = "Yay or nay?"
	}
	if err := ev.Responder.Defer(false); err != nil {
		return err
	}
	return ev.Responder.EditPage(event.Page{
		Title: question,
		Body:  "Vote with the buttons below.",
	}, []event.Button{
		{ID: "poll:yes", Label: "Yes", Style: event.ButtonSuccess},
		{ID: "poll:no", Label: "No", Style: event.ButtonDanger},
	})
}

func (b *demoBot) pollVote(ev event.ComponentActivation) error {
	choice := "yes"
	if ev.ComponentID == "poll:no" {
		choice = "no"
	}

	b.pollMu.Lock()
	b.pollVotes[ev.UserID] = choice
	yes, no := 0, 0
	for _, c := range b.pollVotes {
		if c == "yes" {
			yes++
		} else {
			no++
		}
	}
	b.pollMu.Unlock()

	return ev.Responder.Reply(
		fmt.Sprintf("Vote recorded. Standings: %d yes, %d no.", yes, no), true)
}

func (b *demoBot) pick(ev event.CommandInvocation) error {
	return ev.Responder.ReplyMenu("Pick a color:", event.Select{
		ID:          "pick-color",
		Placeholder: "Your favorite color",
		Options: []event.SelectOption{
			{Label: "Red", Value: "red", Description: "Bold and warm"},
			{Label: "Green", Value: "green", Description: "Calm and natural"},
			{Label: "Blue", Value: "blue", Description: "Cool and steady"},
		},
	}, false)
}

func (b *demoBot) pickChosen(ev event.ComponentActivation) error {
	if len(ev.Values) == 0 {
		return ev.Responder.DeferUpdate()
	}
	return ev.Responder.Reply("You picked "+ev.Values[0]+".", true)
}

func (b *demoBot) feedback(ev event.CommandInvocation) error {
	return ev.Responder.OpenModal(event.Modal{
		ID:    "feedback-form",
		Title: "Send Feedback",
		Fields: []event.ModalField{
			{ID: "subject", Label: "Subject", Required: true},
			{ID: "details", Label: "Details", Placeholder: "Tell us more...", Paragraph: true},
		},
	})
}

func (b *demoBot) feedbackSubmitted(ev event.ModalSubmit) error {
	b.log.Info("feedback received",
		"user", ev.UserID, "subject", ev.Fields["subject"], "details", ev.Fields["details"])
	return ev.Responder.Reply("Thanks for the feedback!", true)
}

func (b *demoBot) whois(ev event.ContextInvocation) error {
	return ev.Responder.Reply(
		fmt.Sprintf("That is <@%s> (id %s).", ev.TargetUserID, ev.TargetUserID), true)
}

func (b *demoBot) quote(ev event.ContextInvocation) error {
	if ev.TargetContent == "" {
		return ev.Responder.Reply("There is nothing to quote in that message.", true)
	}
	return ev.Responder.Reply(
		fmt.Sprintf("%s quoted:\n> %s", ev.UserName, ev.TargetContent), false)
}

func (b *demoBot) pages(ev event.CommandInvocation) error {
	if err := ev.Responder.Defer(false); err != nil {
		return err
	}
	p, err := paginate.NewStatic().
		AddPages(
			event.Page{Title: "Welcome", Body: "This bot demonstrates the dispatcher.", Footer: "Page 1 of 3"},
			event.Page{Title: "Commands", Body: "Try /echo, /poll, /pick, /feedback, and /browse.", Footer: "Page 2 of 3"},
			event.Page{Title: "Chat", Body: "Prefixed chat commands work too: ping, jsonpath.", Footer: "Page 3 of 3"},
		).
		ForCommand(ev).
		WithButtons(b.handler.Buttons()).
		WithLogger(b.log).
		Build()
	if err != nil {
		return err
	}
	return p.Paginate()
}

// planet backs one page of the browse paginator.
type planet struct {
	Name    string
	Blurb   string
	Moons   int
	DayLen  string
	Details []string
}

var planets = []planet{
	{
		Name: "Mercury", Blurb: "Closest to the sun.", Moons: 0, DayLen: "59 Earth days",
		Details: []string{
			"Mercury has almost no atmosphere, so its surface swings between scorching days and freezing nights.",
			"A year on Mercury lasts just 88 Earth days.",
		},
	},
	{
		Name: "Venus", Blurb: "Hottest planet in the system.", Moons: 0, DayLen: "243 Earth days",
		Details: []string{
			"Venus spins backwards compared to most planets.",
			"Its thick carbon-dioxide atmosphere traps heat above 450 degrees Celsius.",
		},
	},
	{
		Name: "Earth", Blurb: "The only known harbor of life.", Moons: 1, DayLen: "24 hours",
		Details: []string{
			"About 71 percent of Earth's surface is covered by water.",
			"Earth's magnetic field shields the surface from solar wind.",
		},
	},
	{
		Name: "Mars", Blurb: "The red planet.", Moons: 2, DayLen: "24.6 hours",
		Details: []string{
			"Olympus Mons on Mars is the tallest volcano known in the solar system.",
			"Mars shows strong evidence of ancient rivers and lakes.",
		},
	},
}

func (b *demoBot) browse(ev event.CommandInvocation) error {
	if err := ev.Responder.Defer(false); err != nil {
		return err
	}
	p, err := paginate.NewDynamic().
		AddPageData(planetData()...).
		WithRenderer(renderPlanet).
		ForCommand(ev).
		WithButtons(b.handler.Buttons()).
		WithLogger(b.log).
		OnCommandSelect(func(_ event.InteractionResponder, data any) error {
			return b.planetDetails(ev, data.(planet))
		}).
		Build()
	if err != nil {
		return err
	}
	return p.Paginate()
}

// planetDetails drills down into a nested paginator over one planet's
// detail pages, reusing the original interaction's message.
func (b *demoBot) planetDetails(ev event.CommandInvocation, pl planet) error {
	pages := make([]event.Page, len(pl.Details))
	for i, d := range pl.Details {
		pages[i] = event.Page{
			Title:  pl.Name,
			Body:   d,
			Footer: fmt.Sprintf("Detail %d of %d", i+1, len(pl.Details)),
		}
	}
	nested, err := paginate.NewStatic().
		AddPages(pages...).
		ForCommand(ev).
		WithButtons(b.handler.Buttons()).
		WithLogger(b.log).
		WrapPages(false).
		Build()
	if err != nil {
		return err
	}
	return nested.Paginate()
}

func planetData() []any {
	data := make([]any, len(planets))
	for i, p := range planets {
		data[i] = p
	}
	return data
}

func renderPlanet(data any) (event.Page, error) {
	pl, ok := data.(planet)
	if !ok {
		return event.Page{}, fmt.Errorf("unexpected page data %T", data)
	}
	return event.Page{
		Title: pl.Name,
		Body:  pl.Blurb,
		Fields: []event.PageField{
			{Name: "Moons", Value: fmt.Sprint(pl.Moons), Inline: true},
			{Name: "Day length", Value: pl.DayLen, Inline: true},
		},
	}, nil
}
