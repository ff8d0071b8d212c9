package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	Name    string `env:"APP_NAME" envDefault:"intern-coach"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	Port    string `env:"APP_PORT" envDefault:":3000"`
	BaseURL string `env:"APP_URL" envDefault:"http://localhost:3000"`
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		cfg := AppConfig{}
		if err := env.Parse(&cfg); err != nil {
			log.Fatalf("Could not parse app config: %v", err)
		}
		appConfig = &cfg
	})
	return appConfig
}
