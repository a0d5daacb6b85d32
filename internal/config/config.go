package config

import (
	"github.com/caarlos0/env/v11"
)

// Config vem do ambiente. A credencial privilegiada do backend viaja dentro
// da própria DATABASE_URL (connection string com a role de serviço).
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        int    `env:"PORT" envDefault:"8080"`
	Transport   string `env:"MCP_TRANSPORT" envDefault:"stdio"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
