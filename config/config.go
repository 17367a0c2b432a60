package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
	StaticDir     string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":3000"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./public"
	}

	return cfg
}
