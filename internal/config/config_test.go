package config

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/pincode-lookup/internal/pincode"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.APIURL != pincode.DefaultBaseURL {
		t.Fatalf("expected default api url, got %q", cfg.App.APIURL)
	}
	if cfg.App.Timeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %s", cfg.App.Timeout)
	}
	if cfg.App.CacheTTL != 0 {
		t.Fatalf("expected caching disabled, got %s", cfg.App.CacheTTL)
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace off by default")
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envPincode + "=110001",
		envTimeout + "=3s",
		envCacheTTL + "=1m",
		envTrace + "=true",
		envLogFile + "=/tmp/env.log",
	}
	cfg, err := LoadArgs([]string{"--pincode", "411001", "--filter", "gpo", "--timeout", "2s"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Pincode != "411001" {
		t.Fatalf("expected flag pincode, got %q", cfg.App.Pincode)
	}
	if cfg.App.Filter != "gpo" {
		t.Fatalf("expected filter gpo, got %q", cfg.App.Filter)
	}
	if cfg.App.Timeout != 2*time.Second {
		t.Fatalf("expected flag timeout, got %s", cfg.App.Timeout)
	}
	if cfg.App.CacheTTL != time.Minute {
		t.Fatalf("expected env cache ttl, got %s", cfg.App.CacheTTL)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/env.log" {
		t.Fatalf("expected env logging settings, got %#v", cfg.Logging)
	}
	if cfg.Flags["cacheTTL"] != "1m0s" {
		t.Fatalf("expected cacheTTL flag recorded, got %q", cfg.Flags["cacheTTL"])
	}
}

func TestLoadArgsRecordsFullArgv(t *testing.T) {
	args := []string{"--pincode", "411001", "--trace", "extra"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(cfg.Args, " ") != strings.Join(args, " ") {
		t.Fatalf("expected full argv recorded, got %v", cfg.Args)
	}
	args[0] = "changed"
	if cfg.Args[0] != "--pincode" {
		t.Fatalf("expected argv copied, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envTimeout + "=soon", envWidth + "=wide", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Timeout != defaultTimeout || cfg.App.Width != 0 {
		t.Fatalf("expected fallbacks for malformed env, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative timeout", func(c *Config) { c.App.Timeout = -time.Second }, "timeout"},
		{"negative cache ttl", func(c *Config) { c.App.CacheTTL = -time.Second }, "cache-ttl"},
		{"negative interval", func(c *Config) { c.App.Interval = -time.Second }, "min-interval"},
		{"empty api url", func(c *Config) { c.App.APIURL = "" }, "api-url"},
		{"bad pincode", func(c *Config) { c.App.Pincode = "12345" }, pincode.MessageInvalid},
		{"good pincode", func(c *Config) { c.App.Pincode = "411001" }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
