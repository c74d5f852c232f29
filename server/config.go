package server

import "github.com/joeshaw/envdecode"

// Config is the server configuration, populated from the environment
type Config struct {
	Addr        string `env:"UNO_ADDR,default=:8000"`
	TargetScore int    `env:"UNO_TARGET,default=500"`
}

// ConfigFromEnv reads Config from the environment, falling back to the
// declared defaults
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
