package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/charliek/cwlog/internal/constants"
)

// Override keys shared by viper env bindings and cobra flags
const (
	KeyProfile       = "profile"
	KeyRegion        = "region"
	KeyPrefix        = "prefix"
	KeyStage         = "stage"
	KeyTimezone      = "timezone"
	KeyKeywordWindow = "keyword_window"
	KeyMaxEvents     = "max_events"
	KeyPollInterval  = "poll_interval"
	KeyLogLevel      = "log_level"
)

// envBindings maps each key to the variables it reads, in priority order.
// The unprefixed names are the ones a project .env usually carries.
var envBindings = map[string][]string{
	KeyProfile:       {constants.EnvPrefix + "_PROFILE", constants.EnvProfile},
	KeyRegion:        {constants.EnvPrefix + "_REGION", constants.EnvRegion},
	KeyPrefix:        {constants.EnvPrefix + "_PREFIX", constants.EnvLogPrefix},
	KeyStage:         {constants.EnvPrefix + "_STAGE", constants.EnvStage},
	KeyTimezone:      {constants.EnvPrefix + "_TIMEZONE"},
	KeyKeywordWindow: {constants.EnvPrefix + "_KEYWORD_WINDOW"},
	KeyMaxEvents:     {constants.EnvPrefix + "_MAX_EVENTS"},
	KeyPollInterval:  {constants.EnvPrefix + "_POLL_INTERVAL"},
	KeyLogLevel:      {constants.EnvPrefix + "_LOG_LEVEL"},
}

// NewViper returns a viper instance with every override key bound to its
// environment variables. Callers bind flags on top with BindPFlag.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for key, names := range envBindings {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}
	return v
}

// ApplyOverrides copies every key set in v (by environment or by an
// explicitly passed flag) onto cfg and re-validates the result
func ApplyOverrides(cfg *Config, v *viper.Viper) error {
	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	setString(KeyProfile, &cfg.AWS.Profile)
	setString(KeyRegion, &cfg.AWS.Region)
	setString(KeyPrefix, &cfg.LogGroups.Prefix)
	setString(KeyStage, &cfg.LogGroups.Stage)
	setString(KeyTimezone, &cfg.Search.Timezone)
	setString(KeyKeywordWindow, &cfg.Search.KeywordWindow)
	setString(KeyPollInterval, &cfg.Follow.PollInterval)
	setString(KeyLogLevel, &cfg.LogLevel)
	if v.IsSet(KeyMaxEvents) {
		cfg.Search.MaxEvents = v.GetInt(KeyMaxEvents)
	}

	return Validate(cfg)
}

// LoadEnvFile reads a .env file and returns the variables as a map
func LoadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("env file not found: %s", path)
	}

	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	return env, nil
}

// ApplyEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is ignored unless
// required is true.
func ApplyEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return fmt.Errorf("env file not found: %s", path)
		}
		return nil
	}

	if err := CheckFilePermissions(path); err != nil {
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// CheckFilePermissions checks if a file has secure permissions.
// On Unix-like systems, it verifies the file is not world-writable.
func CheckFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking file permissions: %w", err)
	}

	// others have write (0002)
	if info.Mode().Perm()&0002 != 0 {
		return fmt.Errorf("config file %s has insecure permissions: world-writable files can be modified by any user. Please run: chmod o-w %s", path, path)
	}

	return nil
}
