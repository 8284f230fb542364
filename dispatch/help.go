package dispatch

import (
	"fmt"
	"strings"

	"github.com/dshills/discordkit/command"
	"github.com/dshills/discordkit/event"
)

// helpCommand builds the built-in chat help command registered by the
// Builder when WithHelpCommand is set. Bare "help" lists every registered
// command; "help <name>" details one.
func helpCommand(h *Handler) *command.Command {
	return &command.Command{
		Name: "help",
		Help: "Lists every command, or details one: help <command>.",
		Kind: command.KindChat,
		Chat: func(ev event.Message, args string) error {
			if name := strings.TrimSpace(args); name != "" {
				return ev.Responder.Reply(h.commandHelp(name))
			}
			return ev.Responder.Reply(h.helpListing())
		},
	}
}

// helpListing enumerates chat commands under the configured prefix and
// slash commands under "/".
func (h *Handler) helpListing() string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, cmd := range h.registry.Commands(command.KindChat) {
		fmt.Fprintf(&sb, "%s%s - %s\n", h.prefix, cmd.Name, cmd.HelpText())
	}
	for _, cmd := range h.registry.Commands(command.KindSlash) {
		fmt.Fprintf(&sb, "/%s - %s\n", cmd.Name, cmd.HelpText())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// commandHelp details one command, resolved by name or chat alias.
func (h *Handler) commandHelp(name string) string {
	cmd := h.registry.Resolve(command.KindChat, name)
	if cmd == nil {
		cmd = h.registry.Resolve(command.KindSlash, name)
	}
	if cmd == nil {
		return fmt.Sprintf("No command named %q.", name)
	}
	if len(cmd.Aliases) > 0 {
		return fmt.Sprintf("%s (aliases: %s) - %s",
			cmd.Name, strings.Join(cmd.Aliases, ", "), cmd.HelpText())
	}
	return cmd.Name + " - " + cmd.HelpText()
}
