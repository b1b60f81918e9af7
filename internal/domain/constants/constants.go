// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// TickSource identifies what requested a reminder run.
const (
	TickSourceHTTP   = "http"
	TickSourceCron   = "cron"
	TickSourcePubSub = "pubsub"
	TickSourceCLI    = "cli"
)
