package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	LLM      LLMConfig      `yaml:"llm"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// LLMConfig selects and credentials the chat-completion provider. Provider is
// "openai" or "azure"; azure additionally needs an endpoint and a deployment
// name, which stands in for the model.
type LLMConfig struct {
	Provider   string `yaml:"provider"`
	Endpoint   string `yaml:"endpoint"`
	APIVersion string `yaml:"api_version"`
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	Deployment string `yaml:"deployment"`
	Model      string `yaml:"model"`
}

// ModelName returns the model identifier for completion calls: the deployment
// name on azure, the model name otherwise.
func (l LLMConfig) ModelName() string {
	if l.Provider == "azure" && l.Deployment != "" {
		return l.Deployment
	}
	return l.Model
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix ENDURELY_ and underscore-separated paths:
//
//	ENDURELY_SERVER_HOST, ENDURELY_SERVER_PORT,
//	ENDURELY_DB_HOST, ENDURELY_DB_PORT, ENDURELY_DB_NAME,
//	ENDURELY_DB_USER, ENDURELY_DB_PASSWORD, ENDURELY_DB_SSLMODE,
//	ENDURELY_AUTH_API_KEY,
//	ENDURELY_LLM_PROVIDER, ENDURELY_LLM_ENDPOINT, ENDURELY_LLM_API_VERSION,
//	ENDURELY_LLM_BASE_URL, ENDURELY_LLM_API_KEY, ENDURELY_LLM_DEPLOYMENT,
//	ENDURELY_LLM_MODEL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ENDURELY_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ENDURELY_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ENDURELY_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("ENDURELY_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("ENDURELY_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("ENDURELY_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("ENDURELY_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ENDURELY_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("ENDURELY_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("ENDURELY_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("ENDURELY_LLM_ENDPOINT"); v != "" {
		cfg.LLM.Endpoint = v
	}
	if v := os.Getenv("ENDURELY_LLM_API_VERSION"); v != "" {
		cfg.LLM.APIVersion = v
	}
	if v := os.Getenv("ENDURELY_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("ENDURELY_LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("ENDURELY_LLM_DEPLOYMENT"); v != "" {
		cfg.LLM.Deployment = v
	}
	if v := os.Getenv("ENDURELY_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Auth.APIKey == "" {
		return fmt.Errorf("auth.api_key is required")
	}
	switch c.LLM.Provider {
	case "openai":
		if c.LLM.Model == "" {
			return fmt.Errorf("llm.model is required for provider openai")
		}
	case "azure":
		if c.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required for provider azure")
		}
		if c.LLM.Deployment == "" && c.LLM.Model == "" {
			return fmt.Errorf("llm.deployment or llm.model is required for provider azure")
		}
	case "":
		return fmt.Errorf("llm.provider is required")
	default:
		return fmt.Errorf("llm.provider must be openai or azure, got %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	return nil
}
