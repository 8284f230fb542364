package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/dshills/discordkit/event"
)

// commandRegistrar pushes structured command descriptors to Discord with a
// bulk overwrite, replacing whatever global commands were registered
// before.
type commandRegistrar struct {
	session *discordgo.Session
	appID   string
}

func (r *commandRegistrar) PushCommands(specs []event.CommandSpec) error {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(specs))
	for _, spec := range specs {
		cmd := &discordgo.ApplicationCommand{Name: spec.Name}
		switch spec.Kind {
		case event.SpecUserContext:
			cmd.Type = discordgo.UserApplicationCommand
		case event.SpecMessageContext:
			cmd.Type = discordgo.MessageApplicationCommand
		default:
			cmd.Type = discordgo.ChatApplicationCommand
			// Context-menu commands must not carry a description.
			cmd.Description = spec.Description
		}
		cmds = append(cmds, cmd)
	}
	_, err := r.session.ApplicationCommandBulkOverwrite(r.appID, "", cmds)
	return err
}

// ownerResolver looks up the application owner for owner-list backfill.
type ownerResolver struct {
	session *discordgo.Session
}

func (r *ownerResolver) AppOwnerID() (string, error) {
	app, err := r.session.Application("@me")
	if err != nil {
		return "", err
	}
	if app.Owner != nil {
		return app.Owner.ID, nil
	}
	if app.Team != nil {
		return app.Team.OwnerID, nil
	}
	return "", errors.New("discord: application has no resolvable owner")
}
