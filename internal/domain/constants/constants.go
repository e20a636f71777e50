// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
