package config

import (
	"errors"
	"os"
	"sync"
)

type Config struct {
	Env            string
	LogLevel       string
	Port           string
	StorageBackend string
	MongoURI       string
	MongoDatabase  string
	GeminiAPIKey   string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = loadDotEnv()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			Port:           getEnv("PORT", "8080"),
			StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
			MongoURI:       getEnv("MONGO_URI", ""),
			MongoDatabase:  getEnv("MONGO_DATABASE", "moodtracker"),
			GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.StorageBackend != "memory" && c.StorageBackend != "mongo" {
		return errors.New("STORAGE_BACKEND must be one of: memory, mongo")
	}
	if c.StorageBackend == "mongo" && c.MongoURI == "" {
		return errors.New("MONGO_URI is required when STORAGE_BACKEND=mongo")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		f, err := os.Open(".env")
		if err != nil {
			return err
		}
		defer f.Close()
		var lines []string
		buf := make([]byte, 4096)
		for {
			n, err := f.Read(buf)
			if n > 0 {
				lines = append(lines, string(buf[:n]))
			}
			if err != nil {
				break
			}
		}
		for _, line := range lines {
			for _, l := range splitLines(line) {
				if len(l) == 0 || l[0] == '#' {
					continue
				}
				kv := splitKV(l)
				if len(kv) == 2 {
					os.Setenv(kv[0], kv[1])
				}
			}
		}
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, c := range s {
		if c == '\n' || c == '\r' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func splitKV(s string) []string {
	for i, c := range s {
		if c == '=' {
			return []string{s[:i], s[i+1:]}
		}
	}
	return nil
}
