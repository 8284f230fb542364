// Package discord binds the dispatch engine to a bwmarrin/discordgo
// session.
//
// Attach registers one gateway callback per event family and translates
// raw discordgo payloads into the platform-agnostic event values the
// dispatcher consumes. The package also implements the outbound responder
// and surface interfaces against the live session, including the mapping
// from event.Page and event.Button to Discord embeds and action rows.
//
// Nothing outside this package imports discordgo; the rest of the library
// is testable with in-memory fakes.
package discord
