package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	log "github.com/mgutz/logxi/v1"
)

const (
	EnvProduction = "production"
	EnvLocal      = "local"

	ProductionEndpoint = "https://fa96407.azurewebsites.net/api/http_trigger"
	LocalEndpoint      = "http://localhost:7071/api/http_trigger"

	defaultPort   = "7071"
	defaultWebDir = "web"
)

var logger = log.New("config")

type Config struct {
	Env      string
	Endpoint string
	Port     string
	WebDir   string
}

// Load reads the given .env files (".env" when none are named) into the
// process environment and builds a Config from it. A missing file is not an
// error.
func Load(files ...string) (*Config, error) {
	loadFiles(files...)
	return FromEnv(os.Getenv)
}

// LoadUnresolved is Load without endpoint resolution, for callers that merge
// their own overrides before calling Resolve.
func LoadUnresolved(files ...string) *Config {
	loadFiles(files...)
	return Read(os.Getenv)
}

func loadFiles(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Info("env file not found, using process environment", "err", err)
	}
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Read(getenv)
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read copies the settings out of the environment as they are. Env and
// Endpoint are left unvalidated.
func Read(getenv func(string) string) *Config {
	cfg := &Config{
		Env:      getenv("VISITORS_ENV"),
		Endpoint: getenv("VISITORS_ENDPOINT"),
		Port:     getenv("PORT"),
		WebDir:   getenv("VISITORS_WEB_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.WebDir == "" {
		cfg.WebDir = defaultWebDir
	}

	return cfg
}

// Resolve replaces Endpoint with the validated counter URL and defaults Env
// to production.
func (c *Config) Resolve() error {
	endpoint, err := ResolveEndpoint(c.Env, c.Endpoint)
	if err != nil {
		return err
	}
	c.Endpoint = endpoint
	if c.Env == "" {
		c.Env = EnvProduction
	}

	return nil
}

// ResolveEndpoint picks the counter URL: an explicit endpoint wins, otherwise
// the default for env. An empty env means production.
func ResolveEndpoint(env, endpoint string) (string, error) {
	if endpoint == "" {
		switch env {
		case "", EnvProduction:
			endpoint = ProductionEndpoint
		case EnvLocal:
			endpoint = LocalEndpoint
		default:
			return "", fmt.Errorf("unknown environment %q, want %q or %q", env, EnvProduction, EnvLocal)
		}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid endpoint %q: want an absolute http(s) URL", endpoint)
	}

	return endpoint, nil
}
