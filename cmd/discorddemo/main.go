// Package main is a demonstration bot exercising every dispatch surface
// the library offers: prefixed chat commands, slash commands, context
// menus, autocomplete, buttons, select menus, modals, and both paginator
// flavors.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/dshills/discordkit/discord"
	"github.com/dshills/discordkit/dispatch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "discorddemo",
		Short: "Demo Discord bot built on the discordkit dispatcher",
		Long: `Runs a Discord bot showcasing chat commands, slash commands, context
menus, autocomplete, interactive components, and paginated menus.

Configuration comes from the environment: DISCORD_TOKEN (required),
COMMAND_PREFIX, OWNER_IDS, and COMPONENT_CACHE_SIZE.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Connect to the gateway and serve commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(verbose)
		},
	})

	return cmd
}

func runBot(verbose bool) error {
	cfg, err := discord.ConfigFromEnv()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot := newDemoBot(log, cancel)

	handler, err := dispatch.NewBuilder().
		AddCommands(bot.commands()...).
		AddOwners(cfg.OwnerIDs...).
		WithPrefix(cfg.Prefix).
		WithCacheSize(cfg.CacheSize).
		WithLogger(log).
		WithMetrics().
		WithHelpCommand().
		Build()
	if err != nil {
		return fmt.Errorf("building dispatcher: %w", err)
	}
	bot.handler = handler

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	discord.Attach(session, handler, log)

	if err := session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}
	log.Info("bot is up", "prefix", cfg.Prefix)

	<-ctx.Done()
	log.Info("shutting down")

	// Let in-flight command invocations finish before closing the gateway.
	handler.Wait()
	return session.Close()
}
