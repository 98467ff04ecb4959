package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "!", s.CommandPrefix)
	assert.Equal(t, DefaultRepliesPerMinute, s.RateLimit.RepliesPerMinute)
	assert.Equal(t, DefaultReplyBurst, s.RateLimit.Burst)
	assert.True(t, s.RateLimit.Enabled())
	assert.Empty(t, s.DiscordToken)
}

func TestRateLimit_Enabled(t *testing.T) {
	assert.False(t, RateLimit{}.Enabled())
	assert.False(t, RateLimit{RepliesPerMinute: -1}.Enabled())
	assert.True(t, RateLimit{RepliesPerMinute: 1}.Enabled())
}

func TestSettings_IsOwner(t *testing.T) {
	s := Settings{Owners: []string{"1", "2"}}

	assert.True(t, s.IsOwner("2"))
	assert.False(t, s.IsOwner("3"))
	assert.False(t, Settings{}.IsOwner(""))
}
