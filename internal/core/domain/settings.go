package domain

// Default settings values.
const (
	DefaultCommandPrefix    = "!"
	DefaultRepliesPerMinute = 20
	DefaultReplyBurst       = 3
)

// Configuration keys understood by the settings service.
const (
	KeyDiscordToken     = "discord.token"
	KeyDiscordPrefix    = "discord.prefix"
	KeyDiscordOwners    = "discord.owners"
	KeyRepliesPerMinute = "responder.replies_per_minute"
	KeyReplyBurst       = "responder.burst"
	KeyDataDir          = "storage.data_dir"
	KeyVerbose          = "logging.verbose"
)

// Settings is the typed application configuration.
type Settings struct {
	// DiscordToken is the bot token used by the Discord transport.
	DiscordToken string

	// CommandPrefix marks a message as a command (e.g. "!about").
	CommandPrefix string

	// Owners lists user IDs allowed to run owner-only commands.
	Owners []string

	// RateLimit bounds how often the bot replies in a single channel.
	RateLimit RateLimit

	// DataDir is where the SQLite database lives. Empty means the default.
	DataDir string

	// Verbose enables debug logging.
	Verbose bool
}

// RateLimit configures the per-channel reply limiter.
type RateLimit struct {
	// RepliesPerMinute is the sustained reply rate. Zero or less disables limiting.
	RepliesPerMinute int

	// Burst is how many replies may be sent back to back.
	Burst int
}

// Enabled returns true if replies are rate limited.
func (r RateLimit) Enabled() bool {
	return r.RepliesPerMinute > 0
}

// DefaultSettings returns settings with defaults applied.
func DefaultSettings() Settings {
	return Settings{
		CommandPrefix: DefaultCommandPrefix,
		RateLimit: RateLimit{
			RepliesPerMinute: DefaultRepliesPerMinute,
			Burst:            DefaultReplyBurst,
		},
	}
}

// IsOwner returns true if userID is listed as an owner.
func (s Settings) IsOwner(userID string) bool {
	for _, id := range s.Owners {
		if id == userID {
			return true
		}
	}
	return false
}
