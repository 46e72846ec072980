// Package config loads the server configuration: compiled-in defaults,
// then an optional yaml file, then positional command line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const (
	// DefaultHost is the wildcard bind address.
	DefaultHost = "::"
	// DefaultPort is the standard IRC port.
	DefaultPort = "6667"
)

type Config struct {
	Server struct {
		Name          string `yaml:"name"`
		Host          string `yaml:"host"`
		Port          string `yaml:"port"`
		WebsocketAddr string `yaml:"websocket_addr"`
		Debug         bool   `yaml:"debug"`
	} `yaml:"server"`
}

// Default returns the compiled-in configuration: wildcard host, standard
// port, message prefix taken from the machine hostname at startup.
func Default() *Config {
	c := &Config{}
	c.Server.Host = DefaultHost
	c.Server.Port = DefaultPort
	return c
}

// Load builds the configuration from ~/.tinyircd/conf.yaml when the file
// exists, falling back to defaults otherwise.
func Load() (*Config, error) {
	c := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return c, nil
	}
	path := filepath.Join(home, ".tinyircd", "conf.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	return c, nil
}

// ApplyArgs overrides host and port from the positional arguments
// `[host] [port]`. A single argument containing no ':' is reinterpreted
// as a port, with the host left at the wildcard address.
func (c *Config) ApplyArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		if strings.Contains(args[0], ":") {
			c.Server.Host = args[0]
		} else {
			c.Server.Port = args[0]
		}
		return nil
	case 2:
		c.Server.Host = args[0]
		c.Server.Port = args[1]
		return nil
	default:
		return fmt.Errorf("usage: tinyircd [host] [port]")
	}
}
