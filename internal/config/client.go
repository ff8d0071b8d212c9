package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

type ClientConfig struct {
	BaseURL string `env:"COACH_API_URL" envDefault:"http://localhost:3000"`
	// WeeklyGoal is the target number of applications per week.
	WeeklyGoal int `env:"WEEKLY_GOAL" envDefault:"5"`
}

var (
	clientConfig *ClientConfig
	clientOnce   sync.Once
)

func LoadClientConfig() *ClientConfig {
	clientOnce.Do(func() {
		cfg := ClientConfig{}
		if err := env.Parse(&cfg); err != nil {
			log.Fatalf("Could not parse client config: %v", err)
		}
		if cfg.WeeklyGoal < 1 {
			cfg.WeeklyGoal = 1
		}
		clientConfig = &cfg
	})
	return clientConfig
}
