package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
)

var cfgFile *string = flag.String("c", "config.json", "config file")

type Config struct {
	ListenAddr string `json:"listen_addr"`
	// Domain enables autocert TLS on :443 when set.
	Domain         string `json:"domain"`
	AllowedOrigins string `json:"allowed_origins"` // comma separated, "*" allows all

	RateLimitPerMinute int `json:"rate_limit_per_minute"`
	MaxDownloadSizeMB  int `json:"max_download_size_mb"`
	ExtractTimeoutSec  int `json:"extract_timeout_sec"`

	YtdlpPath string `json:"ytdlp_path"`

	RedisAddr string `json:"redis_addr"`
	RedisPass string `json:"redis_pass"`
	RedisDB   int    `json:"redis_db"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"` // "" text, "json" structured
	LogDir    string `json:"log_dir"`
}

var cfg *Config

func Get() Config {
	return *cfg
}

// LoadConfig reads the JSON config file selected by -c (if it exists),
// applies env overrides, then fills defaults.
func LoadConfig() (*Config, error) {
	if !flag.Parsed() {
		flag.Parse()
	}
	temp := Config{}
	if data, err := os.ReadFile(*cfgFile); err == nil {
		if err = json.Unmarshal(data, &temp); err != nil {
			return nil, err
		}
	}
	applyEnv(&temp)
	applyDefaults(&temp)
	cfg = &temp
	return cfg, nil
}

// Set replaces the global config. Test hook.
func Set(c Config) {
	cfg = &c
}

func applyEnv(c *Config) {
	c.ListenAddr = envOr("LISTEN_ADDR", c.ListenAddr)
	c.Domain = envOr("DOMAIN", c.Domain)
	c.AllowedOrigins = envOr("ALLOWED_ORIGINS", c.AllowedOrigins)
	c.RateLimitPerMinute = envIntOr("RATE_LIMIT_PER_MINUTE", c.RateLimitPerMinute)
	c.MaxDownloadSizeMB = envIntOr("MAX_DOWNLOAD_SIZE_MB", c.MaxDownloadSizeMB)
	c.ExtractTimeoutSec = envIntOr("DOWNLOAD_TIMEOUT_SECONDS", c.ExtractTimeoutSec)
	c.YtdlpPath = envOr("YTDLP_PATH", c.YtdlpPath)
	c.RedisAddr = envOr("REDIS_ADDR", c.RedisAddr)
	c.RedisPass = envOr("REDIS_PASS", c.RedisPass)
	c.RedisDB = envIntOr("REDIS_DB", c.RedisDB)
	c.LogLevel = envOr("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOr("LOG_FORMAT", c.LogFormat)
	c.LogDir = envOr("LOG_DIR", c.LogDir)
}

func applyDefaults(c *Config) {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8000"
	}
	if c.AllowedOrigins == "" {
		c.AllowedOrigins = "*"
	}
	if c.RateLimitPerMinute <= 0 {
		c.RateLimitPerMinute = 30
	}
	if c.MaxDownloadSizeMB <= 0 {
		c.MaxDownloadSizeMB = 500
	}
	if c.ExtractTimeoutSec <= 0 {
		c.ExtractTimeoutSec = 300
	}
	if c.YtdlpPath == "" {
		c.YtdlpPath = "yt-dlp"
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
}

// Origins splits AllowedOrigins into a trimmed list.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envIntOr(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
