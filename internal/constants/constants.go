// Package constants provides shared configuration values used across the cwlog application.
package constants

import "time"

// Configuration file defaults
const (
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "cwlog.yaml"

	// DefaultEnvFile is the dotenv file loaded at startup when present
	DefaultEnvFile = ".env"

	// DefaultTimezone is the zone local date-time input is interpreted in
	DefaultTimezone = "Asia/Tokyo"

	// DefaultLogLevel is the default slog level
	DefaultLogLevel = "warn"
)

// Environment variables read from the process environment or .env
const (
	EnvProfile   = "AWS_PROFILE"
	EnvRegion    = "AWS_REGION"
	EnvLogPrefix = "LOG_PREFIX"
	EnvStage     = "SLS_STAGE"
	EnvPrefix    = "CWLOG"
)

// Query defaults
const (
	// DefaultKeywordWindow is how far back keyword-only searches look
	DefaultKeywordWindow = 24 * time.Hour

	// DefaultMaxEvents caps the number of events fetched by one search
	DefaultMaxEvents = 10000

	// MaxEventsLimit is the maximum configurable max_events value
	// to prevent memory exhaustion on very large groups
	MaxEventsLimit = 100000

	// DefaultRequestTimeout is the default timeout for a single backend query
	DefaultRequestTimeout = 2 * time.Minute
)

// Follow mode defaults
const (
	// DefaultPollInterval is how often follow mode polls for new events
	DefaultPollInterval = 2 * time.Second

	// MinPollInterval is the smallest accepted poll interval
	MinPollInterval = 500 * time.Millisecond

	// DefaultSeenBuffer is the number of recent event ids remembered by follow mode
	DefaultSeenBuffer = 1000

	// DefaultFollowLookback is how far behind the newest seen event each
	// follow poll starts, so events ingested late by other streams are still fetched
	DefaultFollowLookback = 10 * time.Second
)
