package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/sparques/irbot/nec"
	"gopkg.in/yaml.v2"
)

type EnvConfig struct {
	Profile string `env:"IRSIM_PROFILE"`
	HTTP    string `env:"IRSIM_HTTP"`
	Address int    `env:"IRSIM_ADDRESS" envDefault:"0"`
	TickUS  int    `env:"IRSIM_TICK_US" envDefault:"1"`
}

func loadEnv() (*EnvConfig, error) {
	cfg := new(EnvConfig)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.check()
}

func (cfg *EnvConfig) check() error {
	if cfg.Address < 0 || cfg.Address > 0xFF {
		return fmt.Errorf("address %d does not fit in a byte", cfg.Address)
	}
	if cfg.TickUS <= 0 {
		return fmt.Errorf("tick must be at least 1us, got %d", cfg.TickUS)
	}
	return nil
}

func (cfg *EnvConfig) Tick() time.Duration {
	return time.Duration(cfg.TickUS) * time.Microsecond
}

// loadProfile reads a YAML profile over the defaults. No file means the
// defaults.
func loadProfile(filename string) (nec.Profile, error) {
	p := nec.DefaultProfile
	if filename == "" {
		return p, nil
	}
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}
