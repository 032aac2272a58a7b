// Package config loads the planner's runtime settings.
//
// Sources are applied in order, later ones winning:
//  1. built-in defaults
//  2. a TOML file given by --config or PLANNER_CONFIG
//  3. a .env file in the working directory
//  4. process environment variables
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// EnvConfigFile names the variable pointing at a TOML config file
	EnvConfigFile = "PLANNER_CONFIG"

	defaultHTTPAddr = ":8000"
	defaultGRPCAddr = ":8080"
	defaultAPIToken = "dev-token"
	defaultEnvFile  = ".env"
)

// Config holds all runtime settings for the servers and the CLI
type Config struct {
	HTTP HTTPConfig `toml:"http"`
	GRPC GRPCConfig `toml:"grpc"`
	Log  LogConfig  `toml:"log"`
}

// HTTPConfig configures the JSON API
type HTTPConfig struct {
	Addr        string   `toml:"addr"`
	CORSOrigins []string `toml:"cors_origins"`
}

// GRPCConfig configures the gRPC API
type GRPCConfig struct {
	Addr     string `toml:"addr"`
	APIToken string `toml:"api_token"`
}

// LogConfig configures the logrus logger
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:        defaultHTTPAddr,
			CORSOrigins: []string{"*"},
		},
		GRPC: GRPCConfig{
			Addr:     defaultGRPCAddr,
			APIToken: defaultAPIToken,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration. path may be empty, in which case
// PLANNER_CONFIG is consulted; a missing default .env is not an error.
func Load(path string) (Config, error) {
	return load(path, defaultEnvFile, os.LookupEnv)
}

func load(path, envFile string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	// .env values never override real environment variables
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading %s: %w", envFile, err)
	}
	lookup := func(key string) (string, bool) {
		if value, ok := lookupEnv(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}

	if path == "" {
		path, _ = lookup(EnvConfigFile)
	}
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return cfg, fmt.Errorf("parsing config %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}

	applyEnv(&cfg, lookup)
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if value, ok := lookup("HTTP_ADDR"); ok && value != "" {
		cfg.HTTP.Addr = value
	}
	if value, ok := lookup("GRPC_ADDR"); ok && value != "" {
		cfg.GRPC.Addr = value
	}
	if value, ok := lookup("API_TOKEN"); ok && value != "" {
		cfg.GRPC.APIToken = value
	}
	if value, ok := lookup("CORS_ORIGINS"); ok && value != "" {
		cfg.HTTP.CORSOrigins = splitList(value)
	}
	if value, ok := lookup("LOG_LEVEL"); ok && value != "" {
		cfg.Log.Level = value
	}
	if value, ok := lookup("LOG_FORMAT"); ok && value != "" {
		cfg.Log.Format = value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration and reports every problem at once
func (c Config) Validate() error {
	var problems []string

	if err := validateAddr(c.HTTP.Addr); err != nil {
		problems = append(problems, fmt.Sprintf("invalid http address '%s': %v", c.HTTP.Addr, err))
	}
	if err := validateAddr(c.GRPC.Addr); err != nil {
		problems = append(problems, fmt.Sprintf("invalid grpc address '%s': %v", c.GRPC.Addr, err))
	}
	if c.HTTP.Addr != "" && c.HTTP.Addr == c.GRPC.Addr {
		problems = append(problems, fmt.Sprintf("http and grpc cannot share address '%s'", c.HTTP.Addr))
	}
	if strings.TrimSpace(c.GRPC.APIToken) == "" {
		problems = append(problems, "API token cannot be empty")
	}
	if len(c.HTTP.CORSOrigins) == 0 {
		problems = append(problems, "at least one CORS origin is required")
	}
	for _, origin := range c.HTTP.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			problems = append(problems, "CORS origins cannot contain empty entries")
			break
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be one of [json text]", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func validateAddr(addr string) error {
	if addr == "" {
		return errors.New("must not be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port '%s' must be a number", port)
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port %d must be between 0 and 65535", n)
	}
	return nil
}
