package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/logging"
)

// Validate checks the configuration for errors
func Validate(config *Config) error {
	var errs []string

	if _, err := time.LoadLocation(config.Search.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("search.timezone: unknown time zone %q", config.Search.Timezone))
	}

	if d, err := time.ParseDuration(config.Search.KeywordWindow); err != nil {
		errs = append(errs, fmt.Sprintf("search.keyword_window: invalid duration %q", config.Search.KeywordWindow))
	} else if d <= 0 {
		errs = append(errs, "search.keyword_window: must be positive")
	}

	if config.Search.MaxEvents < 1 || config.Search.MaxEvents > constants.MaxEventsLimit {
		errs = append(errs, fmt.Sprintf("search.max_events: must be between 1 and %d, got %d",
			constants.MaxEventsLimit, config.Search.MaxEvents))
	}

	if d, err := time.ParseDuration(config.Follow.PollInterval); err != nil {
		errs = append(errs, fmt.Sprintf("follow.poll_interval: invalid duration %q", config.Follow.PollInterval))
	} else if d < constants.MinPollInterval {
		errs = append(errs, fmt.Sprintf("follow.poll_interval: must be at least %s", constants.MinPollInterval))
	}

	if !logging.ValidLevel(config.LogLevel) {
		errs = append(errs, fmt.Sprintf("log_level: unknown level %q", config.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
