package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
	Lobby struct {
		TTLSeconds int
	}
}

var C Config

// Load reads config/config.yaml when present and lets the environment
// override every key (SERVER_PORT, REDIS_ADDR, JWT_SECRET, ...). The
// listening port always has a usable default.
func Load() {
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("lobby.ttlseconds", 300)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile("config/config.yaml")
	if err := viper.ReadInConfig(); err != nil {
		// file is optional; env vars and defaults cover everything
		log.Printf("no config file loaded: %v", err)
	}

	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
