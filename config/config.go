package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig  `yaml:"logging"`
	Server      ServerConfig   `yaml:"server"`
	GeminiModel string         `yaml:"gemini_model"`
	Reminder    ReminderConfig `yaml:"reminder"`
	Mongo       MongoConfig    `yaml:"mongo"`
	Kafka       KafkaConfig    `yaml:"kafka"`
	Feeds       FeedsConfig    `yaml:"feeds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// ReminderConfig controls the deadline reminder scanner.
// IntervalMinutes is how often saved records are scanned; WindowHours is the
// "deadline approaching" horizon. Zero or negative values fall back to the
// defaults (5 minutes / 24 hours).
type ReminderConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"`
	WindowHours     int `yaml:"window_hours"`
}

// MongoConfig enables the write-behind archive when URI is non-empty.
// With an empty URI all records live in memory only, for the process lifetime.
type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// KafkaConfig enables domain event publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

// FeedsConfig bounds the feed import endpoint.
type FeedsConfig struct {
	ImportLimit int `yaml:"import_limit"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
