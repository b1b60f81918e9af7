package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	DefaultTimezone        = "America/Sao_Paulo"
	DefaultReminderTitle   = "A chama está apagando! 🔥"
	DefaultReminderBody    = "Você ainda não registrou seu treino de hoje. Mantenha sua meta viva!"
	DefaultReminderURL     = "/?action=open_mood_selector"
	DefaultReminderTTL     = 24 * time.Hour
	DefaultReminderUrgency = "high"
	DefaultVAPIDSubscriber = "contato@gymignite.app"
	DefaultCronRunTimeout  = 5 * time.Minute
	DefaultDedupTTL        = 48 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Auth configures validation of session tokens issued by the external auth provider
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Cron configures how the reminder run is triggered
	Cron *CronConfig `json:"cron" yaml:"cron"`

	// Reminder configures the daily reminder content and delivery hints
	Reminder *ReminderConfig `json:"reminder" yaml:"reminder"`

	// VAPID keys for the web push channel
	VAPID *VAPIDConfig `json:"vapid" yaml:"vapid"`

	// Firebase configuration for FCM token subscriptions
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis backs the same-day reminder ledger
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for reminder tick events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig holds the shared secret used to verify HS256 session tokens.
type AuthConfig struct {
	SessionSecret string `json:"sessionSecret" yaml:"sessionSecret"`
}

// CronConfig defines the trigger configuration for reminder runs
type CronConfig struct {
	// Secret expected as "Authorization: Bearer <secret>" on the trigger endpoint
	Secret string `json:"secret" yaml:"secret"`

	// Schedule is an optional in-process cron expression evaluated in the reminder timezone.
	// Empty disables the in-process trigger.
	Schedule string `json:"schedule" yaml:"schedule"`

	// RunTimeout bounds a single in-process run
	RunTimeout time.Duration `json:"runTimeout" yaml:"runTimeout"`
}

// ReminderConfig defines the reminder content and delivery hints
type ReminderConfig struct {
	// Timezone used to decide which calendar day is "today"
	Timezone string `json:"timezone" yaml:"timezone"`

	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
	URL   string `json:"url" yaml:"url"`

	// TTL is how long the push service keeps an undelivered message
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Urgency hint sent to the push service (very-low, low, normal, high)
	Urgency string `json:"urgency" yaml:"urgency"`

	// MaxConcurrency caps in-flight dispatches per run, 0 means unbounded
	MaxConcurrency int `json:"maxConcurrency" yaml:"maxConcurrency"`

	Dedup DedupConfig `json:"dedup" yaml:"dedup"`
}

// DedupConfig controls the same-day reminder ledger
type DedupConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// VAPIDConfig holds the application server keys for web push
type VAPIDConfig struct {
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
	// Subscriber is the contact (mailto or https URL) included in the VAPID JWT
	Subscriber string `json:"subscriber" yaml:"subscriber"`
}

// FirebaseConfig defines Firebase configuration for FCM token subscriptions
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// LinkOrigin is the https origin FCM click links are resolved against
	LinkOrigin string `json:"linkOrigin" yaml:"linkOrigin"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for reminder tick events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file, e.g. CRON_SECRET -> cron.secret
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so downstream code never sees a nil reminder or cron config.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Cron == nil {
		cfg.Cron = &CronConfig{}
	}
	if cfg.Cron.RunTimeout <= 0 {
		cfg.Cron.RunTimeout = DefaultCronRunTimeout
	}

	if cfg.Reminder == nil {
		cfg.Reminder = &ReminderConfig{}
	}
	r := cfg.Reminder
	if r.Timezone == "" {
		r.Timezone = DefaultTimezone
	}
	if r.Title == "" {
		r.Title = DefaultReminderTitle
	}
	if r.Body == "" {
		r.Body = DefaultReminderBody
	}
	if r.URL == "" {
		r.URL = DefaultReminderURL
	}
	if r.TTL <= 0 {
		r.TTL = DefaultReminderTTL
	}
	if r.Urgency == "" {
		r.Urgency = DefaultReminderUrgency
	}
	if r.Dedup.TTL <= 0 {
		r.Dedup.TTL = DefaultDedupTTL
	}

	if cfg.VAPID != nil && cfg.VAPID.Subscriber == "" {
		cfg.VAPID.Subscriber = DefaultVAPIDSubscriber
	}
}

// PushConfigured reports whether at least one push channel has credentials.
func (cfg *Config) PushConfigured() bool {
	vapidReady := cfg.VAPID != nil && cfg.VAPID.PublicKey != "" && cfg.VAPID.PrivateKey != ""
	firebaseReady := cfg.Firebase != nil && cfg.Firebase.CredentialsPath != ""

	return vapidReady || firebaseReady
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
