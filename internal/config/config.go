package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Strategy  string `yaml:"strategy" env:"GAME_STRATEGY" env-default:"best"`
	FirstTurn string `yaml:"first-turn" env:"GAME_FIRST_TURN" env-default:"random"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine; the environment and defaults cover every setting.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
