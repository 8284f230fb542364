package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/dshills/discordkit/event"
)

// pageEmbed maps the platform-agnostic page payload to a Discord embed.
func pageEmbed(p event.Page) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       p.Title,
		Description: p.Body,
	}
	if p.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}
	for _, f := range p.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}

// buttonRow maps buttons to a single action row. Discord allows at most
// five buttons per row, which is also the paginator maximum.
func buttonRow(buttons []event.Button) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return []discordgo.MessageComponent{}
	}
	row := discordgo.ActionsRow{}
	for _, b := range buttons {
		btn := discordgo.Button{
			Label:    b.Label,
			CustomID: b.ID,
			Style:    buttonStyle(b.Style),
		}
		if b.Emoji != "" {
			btn.Emoji = &discordgo.ComponentEmoji{Name: b.Emoji}
		}
		row.Components = append(row.Components, btn)
	}
	return []discordgo.MessageComponent{row}
}

// selectRow maps a select menu to its own action row.
func selectRow(menu event.Select) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, len(menu.Options))
	for i, o := range menu.Options {
		options[i] = discordgo.SelectMenuOption{
			Label:       o.Label,
			Value:       o.Value,
			Description: o.Description,
		}
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    menu.ID,
					Placeholder: menu.Placeholder,
					Options:     options,
				},
			},
		},
	}
}

// modalRows maps modal fields to one text input per action row, which is
// the only layout the platform accepts.
func modalRows(m event.Modal) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, len(m.Fields))
	for _, f := range m.Fields {
		style := discordgo.TextInputShort
		if f.Paragraph {
			style = discordgo.TextInputParagraph
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    f.ID,
					Label:       f.Label,
					Placeholder: f.Placeholder,
					Style:       style,
					Required:    f.Required,
				},
			},
		})
	}
	return rows
}

func buttonStyle(s event.ButtonStyle) discordgo.ButtonStyle {
	switch s {
	case event.ButtonSecondary:
		return discordgo.SecondaryButton
	case event.ButtonSuccess:
		return discordgo.SuccessButton
	case event.ButtonDanger:
		return discordgo.DangerButton
	default:
		return discordgo.PrimaryButton
	}
}
