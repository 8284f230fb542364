package discord

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings for running a bot process.
// Library embedders who construct their own dispatch.Builder do not need
// it; it exists for executables like cmd/discorddemo.
type Config struct {
	// Token is the bot token, without the "Bot " prefix.
	Token string `env:"DISCORD_TOKEN,required,notEmpty"`

	// Prefix is the single-character chat command prefix.
	Prefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	// OwnerIDs are the user ids allowed to run owner-only commands. When
	// empty, the application owner is resolved at ready time.
	OwnerIDs []string `env:"OWNER_IDS" envSeparator:","`

	// CacheSize is the component correlation cache capacity.
	CacheSize int `env:"COMPONENT_CACHE_SIZE" envDefault:"100"`
}

// ConfigFromEnv loads Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
