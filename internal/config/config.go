package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Delays    DelayConfig     `toml:"delays"`
	Voice     VoiceConfig     `toml:"voice"`
	Session   SessionConfig   `toml:"session"`
	Redis     RedisConfig     `toml:"redis"`
	Database  DatabaseConfig  `toml:"database"`
	Inference InferenceConfig `toml:"inference"`
}

type ServerConfig struct {
	Port           string   `toml:"port"`
	Environment    string   `toml:"environment"`
	ReadTimeout    Duration `toml:"read_timeout"`
	WriteTimeout   Duration `toml:"write_timeout"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DelayConfig holds the artificial latencies of the simulated backends.
type DelayConfig struct {
	Chat     Duration `toml:"chat"`
	Services Duration `toml:"services"`
	Weather  Duration `toml:"weather"`
}

type VoiceConfig struct {
	Recognition bool     `toml:"recognition"`
	Synthesis   bool     `toml:"synthesis"`
	SpeechRate  float64  `toml:"speech_rate"`
	ListenDelay Duration `toml:"listen_delay"`
	WordPace    Duration `toml:"word_pace"`
}

// SessionConfig selects where page sessions (language selection) are kept.
type SessionConfig struct {
	Store string   `toml:"store"` // memory, redis or postgres
	TTL   Duration `toml:"ttl"`

	// SweepInterval is how often panel state of expired sessions is dropped.
	SweepInterval Duration `toml:"sweep_interval"`
}

type RedisConfig struct {
	URL string `toml:"url"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

// InferenceConfig points the responder at a remote backend. Empty URL keeps the canned one in process.
type InferenceConfig struct {
	URL            string   `toml:"url"`
	MaxAttempts    int      `toml:"max_attempts"`
	InitialBackoff Duration `toml:"initial_backoff"`
	Timeout        Duration `toml:"timeout"`
}

// Duration decodes Go duration strings ("1500ms") from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			Environment:  "development",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
		Delays: DelayConfig{
			Chat:     Duration{1500 * time.Millisecond},
			Services: Duration{2000 * time.Millisecond},
			Weather:  Duration{1000 * time.Millisecond},
		},
		Voice: VoiceConfig{
			Recognition: true,
			Synthesis:   true,
			SpeechRate:  0.8,
			ListenDelay: Duration{3 * time.Second},
			WordPace:    Duration{400 * time.Millisecond},
		},
		Session: SessionConfig{
			Store:         "memory",
			TTL:           Duration{24 * time.Hour},
			SweepInterval: Duration{5 * time.Minute},
		},
		Redis: RedisConfig{
			URL: "redis://localhost:6379",
		},
		Inference: InferenceConfig{
			MaxAttempts:    3,
			InitialBackoff: Duration{200 * time.Millisecond},
			Timeout:        Duration{10 * time.Second},
		},
	}
}

// Load builds the configuration: defaults, then the TOML file at path
// (skipped when it does not exist), then environment variables.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not decode config file %s: %w", path, err)
		}
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.Environment = getEnv("ENVIRONMENT", cfg.Server.Environment)
	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.Delays.Chat = getEnvAsDuration("CHAT_DELAY", cfg.Delays.Chat)
	cfg.Delays.Services = getEnvAsDuration("SERVICES_DELAY", cfg.Delays.Services)
	cfg.Delays.Weather = getEnvAsDuration("WEATHER_DELAY", cfg.Delays.Weather)

	cfg.Voice.Recognition = getEnvAsBool("VOICE_RECOGNITION", cfg.Voice.Recognition)
	cfg.Voice.Synthesis = getEnvAsBool("VOICE_SYNTHESIS", cfg.Voice.Synthesis)
	cfg.Voice.SpeechRate = getEnvAsFloat("SPEECH_RATE", cfg.Voice.SpeechRate)
	cfg.Voice.ListenDelay = getEnvAsDuration("LISTEN_DELAY", cfg.Voice.ListenDelay)

	cfg.Session.Store = getEnv("SESSION_STORE", cfg.Session.Store)
	cfg.Session.TTL = getEnvAsDuration("SESSION_TTL", cfg.Session.TTL)
	cfg.Session.SweepInterval = getEnvAsDuration("SESSION_SWEEP_INTERVAL", cfg.Session.SweepInterval)
	cfg.Redis.URL = getEnv("REDIS_URL", cfg.Redis.URL)
	cfg.Database.URL = getEnv("DB_CONNECTION_STRING", cfg.Database.URL)

	cfg.Inference.URL = getEnv("INFERENCE_URL", cfg.Inference.URL)
	cfg.Inference.MaxAttempts = getEnvAsInt("INFERENCE_MAX_ATTEMPTS", cfg.Inference.MaxAttempts)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case "memory", "redis":
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("session store postgres needs DB_CONNECTION_STRING")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	if c.Session.SweepInterval.Duration <= 0 {
		return fmt.Errorf("session sweep interval must be positive, got %s", c.Session.SweepInterval.Duration)
	}
	if c.Inference.MaxAttempts < 1 {
		return fmt.Errorf("inference max attempts must be at least 1, got %d", c.Inference.MaxAttempts)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue Duration) Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return Duration{value}
	}
	return defaultValue
}
