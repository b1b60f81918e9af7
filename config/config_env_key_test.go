package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cron": map[string]any{
			"secret": "",
		},
		"vapid": map[string]any{
			"privateKey": "",
		},
		"reminder": map[string]any{
			"maxConcurrency": 0,
			"dedup": map[string]any{
				"enabled": false,
			},
		},
		"auth": map[string]any{
			"sessionSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CRON_SECRET", want: "cron.secret"},
		{envKey: "VAPID_PRIVATEKEY", want: "vapid.privateKey"},
		{envKey: "REMINDER_MAXCONCURRENCY", want: "reminder.maxConcurrency"},
		{envKey: "REMINDER_DEDUP_ENABLED", want: "reminder.dedup.enabled"},
		{envKey: "AUTH_SESSIONSECRET", want: "auth.sessionSecret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsReminderAndCron(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DefaultTimezone, cfg.Reminder.Timezone)
	assert.Equal(t, DefaultReminderURL, cfg.Reminder.URL)
	assert.Equal(t, DefaultReminderTTL, cfg.Reminder.TTL)
	assert.Equal(t, "high", cfg.Reminder.Urgency)
	assert.Equal(t, DefaultDedupTTL, cfg.Reminder.Dedup.TTL)
	assert.Equal(t, DefaultCronRunTimeout, cfg.Cron.RunTimeout)
	assert.False(t, cfg.PushConfigured())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Reminder: &ReminderConfig{Timezone: "Europe/Lisbon", TTL: time.Hour},
		VAPID:    &VAPIDConfig{PublicKey: "pub", PrivateKey: "priv"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "Europe/Lisbon", cfg.Reminder.Timezone)
	assert.Equal(t, time.Hour, cfg.Reminder.TTL)
	assert.Equal(t, DefaultVAPIDSubscriber, cfg.VAPID.Subscriber)
	assert.True(t, cfg.PushConfigured())
}
