// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop marks a local development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"

	// PubSubProviderLocal publishes room events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes room events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// PlatformIOS and PlatformAndroid are the push-capable device platforms.
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)
