package discord

import (
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/dshills/discordkit/event"
)

// messageResponder implements event.MessageResponder for a received chat
// message.
type messageResponder struct {
	session   *discordgo.Session
	channelID string
	reference *discordgo.MessageReference
}

func (r *messageResponder) Reply(content string) error {
	_, err := r.session.ChannelMessageSendReply(r.channelID, content, r.reference)
	return err
}

func (r *messageResponder) SendPage(p event.Page, buttons []event.Button) (event.MessageSurface, error) {
	msg, err := r.session.ChannelMessageSendComplex(r.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pageEmbed(p)},
		Components: buttonRow(buttons),
	})
	if err != nil {
		return nil, err
	}
	return &messageSurface{session: r.session, channelID: r.channelID, messageID: msg.ID}, nil
}

// messageSurface implements event.MessageSurface for a sent message.
type messageSurface struct {
	session   *discordgo.Session
	channelID string
	messageID string
}

func (s *messageSurface) EditPage(p event.Page, buttons []event.Button) error {
	embeds := []*discordgo.MessageEmbed{pageEmbed(p)}
	components := buttonRow(buttons)
	_, err := s.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    s.channelID,
		ID:         s.messageID,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

func (s *messageSurface) ClearComponents() error {
	components := []discordgo.MessageComponent{}
	_, err := s.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    s.channelID,
		ID:         s.messageID,
		Components: &components,
	})
	return err
}

func (s *messageSurface) Delete() error {
	return s.session.ChannelMessageDelete(s.channelID, s.messageID)
}

// interactionResponder implements event.InteractionResponder. It tracks
// whether the interaction has received its primary response so the
// executor can choose between editing and a fresh ephemeral reply.
type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	acked       atomic.Bool
}

func (r *interactionResponder) Acknowledged() bool {
	return r.acked.Load()
}

func (r *interactionResponder) Defer(ephemeral bool) error {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		r.acked.Store(true)
	}
	return err
}

func (r *interactionResponder) DeferUpdate() error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err == nil {
		r.acked.Store(true)
	}
	return err
}

func (r *interactionResponder) Reply(content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		r.acked.Store(true)
	}
	return err
}

func (r *interactionResponder) ReplyMenu(content string, menu event.Select, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content:    content,
		Components: selectRow(menu),
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		r.acked.Store(true)
	}
	return err
}

func (r *interactionResponder) OpenModal(m event.Modal) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   m.ID,
			Title:      m.Title,
			Components: modalRows(m),
		},
	})
	if err == nil {
		r.acked.Store(true)
	}
	return err
}

func (r *interactionResponder) EditOriginal(content string) error {
	embeds := []*discordgo.MessageEmbed{}
	components := []discordgo.MessageComponent{}
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

func (r *interactionResponder) EditPage(p event.Page, buttons []event.Button) error {
	embeds := []*discordgo.MessageEmbed{pageEmbed(p)}
	components := buttonRow(buttons)
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

func (r *interactionResponder) ClearComponents() error {
	components := []discordgo.MessageComponent{}
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Components: &components,
	})
	return err
}

func (r *interactionResponder) DeleteOriginal() error {
	return r.session.InteractionResponseDelete(r.interaction)
}

// autocompleteResponder implements event.AutocompleteResponder.
type autocompleteResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r *autocompleteResponder) Suggest(choices []event.Choice) error {
	out := make([]*discordgo.ApplicationCommandOptionChoice, len(choices))
	for i, c := range choices {
		out[i] = &discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: c.Value}
	}
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: out},
	})
}
