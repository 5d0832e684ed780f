package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port         string
	DBPath       string
	APIToken     string
	BodyLimit    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// fileConfig mirrors AppConfig for the optional YAML file named by CONFIG_FILE.
type fileConfig struct {
	Port         string `yaml:"port"`
	DBPath       string `yaml:"db_path"`
	APIToken     string `yaml:"api_token"`
	BodyLimit    string `yaml:"body_limit"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

var ErrMissingToken = errors.New("API_TOKEN is not set")

// Load reads the given .env files (".env" when none are given), then the
// process environment, then CONFIG_FILE for anything still unset.
func Load(envFiles ...string) (AppConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	var file fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return AppConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	get := func(k, fromFile, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		if fromFile != "" {
			return fromFile
		}
		return def
	}

	readTimeout, err := time.ParseDuration(get("READ_TIMEOUT", file.ReadTimeout, "15s"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(get("WRITE_TIMEOUT", file.WriteTimeout, "15s"))
	if err != nil {
		return AppConfig{}, fmt.Errorf("WRITE_TIMEOUT: %w", err)
	}

	cfg := AppConfig{
		Port:         get("PORT", file.Port, "8080"),
		DBPath:       get("DB_PATH", file.DBPath, "eggfarm.db"),
		APIToken:     get("API_TOKEN", file.APIToken, ""),
		BodyLimit:    get("BODY_LIMIT", file.BodyLimit, "1M"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	if _, err := bytes.Parse(cfg.BodyLimit); err != nil {
		return AppConfig{}, fmt.Errorf("BODY_LIMIT: %w", err)
	}
	if cfg.APIToken == "" {
		return AppConfig{}, ErrMissingToken
	}
	log.Printf("[cfg] %s", cfg)
	return cfg, nil
}

// String keeps the token out of logs.
func (c AppConfig) String() string {
	return fmt.Sprintf("{Port:%s DBPath:%s APIToken:<redacted> BodyLimit:%s ReadTimeout:%s WriteTimeout:%s}",
		c.Port, c.DBPath, c.BodyLimit, c.ReadTimeout, c.WriteTimeout)
}
