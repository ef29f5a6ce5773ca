package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "WIRESCREEN"

// Output formats understood by the CLI.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the CLI configuration loaded from defaults, a .env file,
// WIRESCREEN_* environment variables and command line flags.
type Config struct {
	Host           string        `mapstructure:"host"`
	APIToken       string        `mapstructure:"api_token" json:"-"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
	Output         string        `mapstructure:"output"`
}

// flagKeys maps shared flag names to config keys.
var flagKeys = map[string]string{
	"host":    "host",
	"token":   "api_token",
	"timeout": "timeout_seconds",
	"output":  "output",
}

// RegisterFlags adds the flags shared by every command to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("host", "", "Base URL of the WireScreen API (env WIRESCREEN_HOST)")
	fs.String("token", "", "API token (env WIRESCREEN_API_TOKEN)")
	fs.Int64("timeout", 0, "Request timeout in seconds (env WIRESCREEN_TIMEOUT_SECONDS)")
	fs.String("output", "", "Output format: json or yaml (env WIRESCREEN_OUTPUT)")
}

// Load reads configuration from the environment and, when fs is non-nil,
// from flags registered with RegisterFlags. Flags that were set win.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("host", "")
	v.SetDefault("api_token", "")
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("log_level", "warn")
	v.SetDefault("output", OutputJSON)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	switch cfg.Output {
	case OutputJSON, OutputYAML:
	default:
		return nil, fmt.Errorf("invalid output %q (want %s or %s)", cfg.Output, OutputJSON, OutputYAML)
	}

	return &cfg, nil
}

// bindFlags binds only flags the user set, so unset flags do not mask env values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// String redacts the token so the config can be logged.
func (c Config) String() string {
	token := ""
	if c.APIToken != "" {
		token = "<redacted>"
	}
	return fmt.Sprintf("host=%s token=%s timeout=%s log_level=%s output=%s",
		c.Host, token, c.Timeout, c.LogLevel, c.Output)
}
