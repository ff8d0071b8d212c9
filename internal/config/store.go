package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

type StoreConfig struct {
	// DataFile holds the whole collection as one JSON array.
	DataFile string `env:"DATA_FILE" envDefault:"data/internships.json"`
}

var (
	storeConfig *StoreConfig
	storeOnce   sync.Once
)

func LoadStoreConfig() *StoreConfig {
	storeOnce.Do(func() {
		cfg := StoreConfig{}
		if err := env.Parse(&cfg); err != nil {
			log.Fatalf("Could not parse store config: %v", err)
		}
		storeConfig = &cfg
	})
	return storeConfig
}
