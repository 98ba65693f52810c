package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort     string `yaml:"APP_PORT"`
	CORSOrigins string `yaml:"CORS_ORIGINS"`

	// Database configuration
	DBPath string `yaml:"DB_PATH"`

	// Logging configuration
	LogDir string `yaml:"LOG_DIR"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "DB_PATH":
		return config.DBPath
	case "LOG_DIR":
		return config.LogDir
	default:
		return ""
	}
}
