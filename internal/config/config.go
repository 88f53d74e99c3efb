package config

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Trends   TrendsConfig   `mapstructure:"trends"`
	Research ResearchConfig `mapstructure:"research"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type OpenAIConfig struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	GenerationModel     string `mapstructure:"generation_model"`
	ClassificationModel string `mapstructure:"classification_model"`
}

type TrendsConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type ResearchConfig struct {
	MaxKeywords  int    `mapstructure:"max_keywords"`
	BatchSize    int    `mapstructure:"batch_size"`
	BatchDelayMs int    `mapstructure:"batch_delay_ms"`
	SeedDelayMs  int    `mapstructure:"seed_delay_ms"`
	Country      string `mapstructure:"country"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
