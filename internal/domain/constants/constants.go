// Package constants holds identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for spin recording. An empty provider means spins are written directly.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Result cache backends
const (
	CacheBackendPostgres = "postgres"
	CacheBackendRedis    = "redis"
	CacheBackendMemory   = "memory"
)

// Echo context keys set by the auth middleware
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
)
