package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return &config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.viper == nil {
		return fmt.Errorf("config not loaded")
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := m.validateConfig(&config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.config = &config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	m.viper.SetConfigFile(configPath)

	m.viper.SetEnvPrefix("SEOAGENT")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	// The API key usually arrives via env, not the config file.
	m.viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	m.viper.BindEnv("trends.api_key", "SERPAPI_KEY")

	m.viper.SetDefault("server.host", "0.0.0.0")
	m.viper.SetDefault("server.port", 8000)
	m.viper.SetDefault("trends.base_url", "https://serpapi.com")
	m.viper.SetDefault("research.max_keywords", 50)
	m.viper.SetDefault("research.batch_size", 20)
	m.viper.SetDefault("research.batch_delay_ms", 500)
	m.viper.SetDefault("research.seed_delay_ms", 1000)
	m.viper.SetDefault("research.country", "US")
	m.viper.SetDefault("logger.level", "info")
	m.viper.SetDefault("logger.format", "json")
}

func (m *manager) validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Research.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive")
	}

	if config.Research.MaxKeywords <= 0 {
		return fmt.Errorf("max_keywords must be positive")
	}

	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api_key is required - set OPENAI_API_KEY")
	}

	return nil
}
