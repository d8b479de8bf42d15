package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/pincode-lookup/internal/app"
	"github.com/atomicstack/pincode-lookup/internal/pincode"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPincode    = "PINCODE_LOOKUP_PINCODE"
	envFilter     = "PINCODE_LOOKUP_FILTER"
	envAPIURL     = "PINCODE_LOOKUP_API_URL"
	envTimeout    = "PINCODE_LOOKUP_TIMEOUT"
	envCacheTTL   = "PINCODE_LOOKUP_CACHE_TTL"
	envInterval   = "PINCODE_LOOKUP_MIN_INTERVAL"
	envWidth      = "PINCODE_LOOKUP_WIDTH"
	envHeight     = "PINCODE_LOOKUP_HEIGHT"
	envShowFooter = "PINCODE_LOOKUP_FOOTER"
	envTrace      = "PINCODE_LOOKUP_TRACE"
	envLogFile    = "PINCODE_LOOKUP_LOG_FILE"

	defaultTimeout = 15 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pincode-lookup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	code := fs.String("pincode", envOrDefault(env, envPincode, ""), "pincode to look up on start")
	filter := fs.String("filter", envOrDefault(env, envFilter, ""), "initial post office name filter")
	apiURL := fs.String("api-url", envOrDefault(env, envAPIURL, pincode.DefaultBaseURL), "base URL of the postal pincode API")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, defaultTimeout), "per-lookup timeout (0 disables)")
	cacheTTL := fs.Duration("cache-ttl", envOrDuration(env, envCacheTTL, 0), "how long to reuse a lookup result (0 disables caching)")
	interval := fs.Duration("min-interval", envOrDuration(env, envInterval, 0), "minimum spacing between API requests (0 disables)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row on the results screen")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			APIURL:     strings.TrimSpace(*apiURL),
			Timeout:    *timeout,
			CacheTTL:   *cacheTTL,
			Interval:   *interval,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Pincode:    strings.TrimSpace(*code),
			Filter:     *filter,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"pincode":  *code,
			"filter":   *filter,
			"apiURL":   *apiURL,
			"timeout":  timeout.String(),
			"cacheTTL": cacheTTL.String(),
			"interval": interval.String(),
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings the program cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.Timeout)
	}
	if cfg.App.CacheTTL < 0 {
		return fmt.Errorf("cache-ttl must be >= 0 (got %s)", cfg.App.CacheTTL)
	}
	if cfg.App.Interval < 0 {
		return fmt.Errorf("min-interval must be >= 0 (got %s)", cfg.App.Interval)
	}
	if cfg.App.APIURL == "" {
		return fmt.Errorf("api-url must not be empty")
	}
	if cfg.App.Pincode != "" {
		if err := pincode.Validate(cfg.App.Pincode); err != nil {
			return fmt.Errorf("pincode %q: %w", cfg.App.Pincode, err)
		}
	}
	return nil
}
