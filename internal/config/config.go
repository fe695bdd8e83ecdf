// Package config loads the device configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	LeftDev  string `yaml:"left_dev"`  // e.g. /dev/spidev0.0
	RightDev string `yaml:"right_dev"` // e.g. /dev/spidev1.0
}

type Servos struct {
	LeftPin  string `yaml:"left_pin"`  // GPIO name, e.g. GPIO12
	RightPin string `yaml:"right_pin"` // GPIO name, e.g. GPIO13
	Model    string `yaml:"model"`     // "sg90" | "mg995"
}

type Audio struct {
	Driver string `yaml:"driver"` // "oto" | "none"
}

type Control struct {
	Addr string `yaml:"addr"` // HTTP listen address for the control plane
}

type Remote struct {
	URL        string `yaml:"url"` // state document to poll; empty disables
	IntervalMS int    `yaml:"interval_ms"`
}

type Config struct {
	Driver  string  `yaml:"driver"` // "spi" | "sim"
	SPI     SPI     `yaml:"spi,omitempty"`
	Servos  Servos  `yaml:"servos,omitempty"`
	Audio   Audio   `yaml:"audio,omitempty"`
	Control Control `yaml:"control,omitempty"`
	Remote  Remote  `yaml:"remote,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
