package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func subOption(name string, t discordgo.ApplicationCommandOptionType, children ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: t, Options: children,
	}
}

func valueOption(name string, value any) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value,
	}
}

func TestFullCommandName(t *testing.T) {
	plain := discordgo.ApplicationCommandInteractionData{Name: "echo"}
	assert.Equal(t, "echo", fullCommandName(plain))

	withOpts := discordgo.ApplicationCommandInteractionData{
		Name:    "echo",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{valueOption("text", "hi")},
	}
	assert.Equal(t, "echo", fullCommandName(withOpts), "plain options are not path segments")

	nested := discordgo.ApplicationCommandInteractionData{
		Name: "config",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			subOption("set", discordgo.ApplicationCommandOptionSubCommandGroup,
				subOption("prefix", discordgo.ApplicationCommandOptionSubCommand,
					valueOption("value", "!"))),
		},
	}
	assert.Equal(t, "config set prefix", fullCommandName(nested))
}

func TestOptionValues(t *testing.T) {
	assert.Nil(t, optionValues(discordgo.ApplicationCommandInteractionData{Name: "bare"}))

	nested := discordgo.ApplicationCommandInteractionData{
		Name: "config",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			subOption("set", discordgo.ApplicationCommandOptionSubCommand,
				valueOption("key", "prefix"),
				valueOption("value", "!")),
		},
	}
	assert.Equal(t, map[string]string{"key": "prefix", "value": "!"}, optionValues(nested))
}

func TestFocusedOption(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Name: "echo",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "other", Type: discordgo.ApplicationCommandOptionString, Value: "x"},
			{Name: "text", Type: discordgo.ApplicationCommandOptionString, Value: "he", Focused: true},
		},
	}

	name, partial := focusedOption(data)
	assert.Equal(t, "text", name)
	assert.Equal(t, "he", partial)

	name, partial = focusedOption(discordgo.ApplicationCommandInteractionData{Name: "echo"})
	assert.Empty(t, name)
	assert.Empty(t, partial)
}

func TestModalFields(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "feedback-form",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "subject", Value: "hi"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "details", Value: "more"},
			}},
		},
	}

	assert.Equal(t, map[string]string{"subject": "hi", "details": "more"}, modalFields(data))
}

func TestInteractionUser(t *testing.T) {
	member := &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "guild-user"}},
	}
	assert.Equal(t, "guild-user", interactionUser(member).ID)

	dm := &discordgo.Interaction{User: &discordgo.User{ID: "dm-user"}}
	assert.Equal(t, "dm-user", interactionUser(dm).ID)
}
