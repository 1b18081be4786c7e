package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task API the client talks to
	TaskAPI TaskAPIConfig

	// Reference backend
	DevServer DevServerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	AllowedOrigins  []string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TaskAPIConfig struct {
	// BaseURL is the root under which /tasks is addressed.
	BaseURL string
}

type DevServerConfig struct {
	Port           int
	Storage        string // memory, mysql or postgres
	DSN            string
	AllowedOrigins []string
}

// Flags bound into the configuration when present on the FlagSet.
const (
	FlagBaseURL  = "base-url"
	FlagLogLevel = "log-level"
)

var flagKeys = map[string]string{
	FlagBaseURL:  "task_api.base_url",
	FlagLogLevel: "logger.level",
}

// Load loads configuration using Viper.
// A .env file is loaded into the process environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Flags set on fs override every other source. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = stringList(v, "http_server.allowed_origins")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Task API
	cfg.TaskAPI.BaseURL = strings.TrimSpace(v.GetString("task_api.base_url"))
	if cfg.TaskAPI.BaseURL == "" {
		return nil, errors.New("task_api.base_url must not be empty")
	}

	// Dev server
	cfg.DevServer.Port = v.GetInt("dev_server.port")
	cfg.DevServer.Storage = v.GetString("dev_server.storage")
	cfg.DevServer.DSN = v.GetString("dev_server.dsn")
	cfg.DevServer.AllowedOrigins = stringList(v, "dev_server.allowed_origins")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.allowed_origins", []string{"http://localhost:4200"})
	v.SetDefault("http_server.rate_limit_per_min", 600)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("task_api.base_url", "http://localhost:8081/api")
	v.SetDefault("dev_server.port", 8081)
	v.SetDefault("dev_server.storage", "memory")
	v.SetDefault("dev_server.allowed_origins", []string{"*"})
}

// stringList reads a list that may come from YAML or from a comma-separated
// environment variable.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
