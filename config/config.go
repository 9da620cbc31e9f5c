package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// OpenAI configures the conversational provider and the classifier.
type OpenAI struct {
	APIKey        string  `env:"OPENAI_API_KEY" env-required:"true"`
	Model         string  `env:"OPENAI_MODEL" env-default:"gpt-4o"`
	BaseURL       string  `env:"OPENAI_BASE_URL"`
	Temperature   float32 `env:"MODEL_TEMPERATURE" env-default:"0"`
	HistoryWindow int     `env:"HISTORY_WINDOW" env-default:"20"`
}

// Wolfram configures the computational provider.
type Wolfram struct {
	AppID   string `env:"WOLFRAM_APP_ID" env-required:"true"`
	BaseURL string `env:"WOLFRAM_BASE_URL" env-default:"http://api.wolframalpha.com"`
}

type Server struct {
	Port string `env:"PORT" env-default:"8000"`
}

type Config struct {
	OpenAI  OpenAI
	Wolfram Wolfram
	Server  Server
}

// Load reads configuration from the environment, with a .env file applied
// first when one exists in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
