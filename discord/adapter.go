package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/dshills/discordkit/dispatch"
	"github.com/dshills/discordkit/event"
)

// Attach wires the handler to a discordgo session. Call before opening the
// session so the ready event is not missed.
func Attach(s *discordgo.Session, h *dispatch.Handler, log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	a := &adapter{handler: h, log: log}

	s.AddHandler(a.onMessageCreate)
	s.AddHandler(a.onInteractionCreate)
	s.AddHandler(a.onReady)
}

type adapter struct {
	handler *dispatch.Handler
	log     *slog.Logger
}

func (a *adapter) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	a.handler.HandleMessage(event.Message{
		ID:         m.ID,
		ChannelID:  m.ChannelID,
		GuildID:    m.GuildID,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		Content:    m.Content,
		FromBot:    m.Author.Bot,
		Responder: &messageResponder{
			session:   s,
			channelID: m.ChannelID,
			reference: m.Reference(),
		},
	})
}

func (a *adapter) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := interactionUser(i.Interaction)
	if user == nil {
		return
	}
	responder := &interactionResponder{session: s, interaction: i.Interaction}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.CommandType {
		case discordgo.UserApplicationCommand:
			a.handler.HandleUserContext(event.ContextInvocation{
				Name:         data.Name,
				UserID:       user.ID,
				UserName:     user.Username,
				TargetUserID: data.TargetID,
				Responder:    responder,
			})
		case discordgo.MessageApplicationCommand:
			ev := event.ContextInvocation{
				Name:            data.Name,
				UserID:          user.ID,
				UserName:        user.Username,
				TargetMessageID: data.TargetID,
				Responder:       responder,
			}
			if data.Resolved != nil {
				if msg, ok := data.Resolved.Messages[data.TargetID]; ok {
					ev.TargetContent = msg.Content
				}
			}
			a.handler.HandleMessageContext(ev)
		default:
			a.handler.HandleCommand(event.CommandInvocation{
				Name:      fullCommandName(data),
				UserID:    user.ID,
				UserName:  user.Username,
				Options:   optionValues(data),
				Responder: responder,
			})
		}

	case discordgo.InteractionApplicationCommandAutocomplete:
		data := i.ApplicationCommandData()
		focused, partial := focusedOption(data)
		a.handler.HandleAutocomplete(event.Autocomplete{
			CommandName: fullCommandName(data),
			Focused:     focused,
			Partial:     partial,
			Responder:   &autocompleteResponder{session: s, interaction: i.Interaction},
		})

	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		ev := event.ComponentActivation{
			ComponentID: data.CustomID,
			UserID:      user.ID,
			UserName:    user.Username,
			Values:      data.Values,
			Responder:   responder,
		}
		if data.ComponentType == discordgo.ButtonComponent {
			ev.Type = event.ComponentButton
		} else {
			ev.Type = event.ComponentSelect
		}
		a.handler.HandleComponent(ev)

	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		a.handler.HandleModal(event.ModalSubmit{
			ModalID:   data.CustomID,
			UserID:    user.ID,
			Fields:    modalFields(data),
			Responder: responder,
		})
	}
}

func (a *adapter) onReady(s *discordgo.Session, r *discordgo.Ready) {
	a.handler.HandleReady(event.Ready{
		Registrar: &commandRegistrar{session: s, appID: r.User.ID},
		Owner:     &ownerResolver{session: s},
	})
}

// interactionUser returns the invoking user for guild and DM interactions.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// fullCommandName rebuilds the dotted command path the platform assigned,
// descending through subcommand groups ("config set").
func fullCommandName(data discordgo.ApplicationCommandInteractionData) string {
	name := data.Name
	opts := data.Options
	for len(opts) == 1 {
		t := opts[0].Type
		if t != discordgo.ApplicationCommandOptionSubCommandGroup &&
			t != discordgo.ApplicationCommandOptionSubCommand {
			break
		}
		name += " " + opts[0].Name
		opts = opts[0].Options
	}
	return name
}

// leafOptions returns the option list of the invoked (sub)command.
func leafOptions(data discordgo.ApplicationCommandInteractionData) []*discordgo.ApplicationCommandInteractionDataOption {
	opts := data.Options
	for len(opts) == 1 {
		t := opts[0].Type
		if t != discordgo.ApplicationCommandOptionSubCommandGroup &&
			t != discordgo.ApplicationCommandOptionSubCommand {
			break
		}
		opts = opts[0].Options
	}
	return opts
}

func optionValues(data discordgo.ApplicationCommandInteractionData) map[string]string {
	opts := leafOptions(data)
	if len(opts) == 0 {
		return nil
	}
	values := make(map[string]string, len(opts))
	for _, opt := range opts {
		values[opt.Name] = fmt.Sprint(opt.Value)
	}
	return values
}

func focusedOption(data discordgo.ApplicationCommandInteractionData) (name, partial string) {
	for _, opt := range leafOptions(data) {
		if opt.Focused {
			return opt.Name, fmt.Sprint(opt.Value)
		}
	}
	return "", ""
}

// modalFields flattens a modal submission's text inputs into id -> value.
func modalFields(data discordgo.ModalSubmitInteractionData) map[string]string {
	fields := make(map[string]string)
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok {
				fields[input.CustomID] = input.Value
			}
		}
	}
	return fields
}
