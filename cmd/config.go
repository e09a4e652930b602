package cmd

import "time"

// Config carries the runtime settings of the fulfillment service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// NotifyQueueCapacity bounds the in-process notification queue.
	// Zero falls back to the notifier's default.
	NotifyQueueCapacity int

	// AreaCacheTTL is how long the resolver reuses its active-area
	// snapshot before reloading. Zero disables caching.
	AreaCacheTTL time.Duration
}
