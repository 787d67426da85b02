package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/gin-gonic/gin"
	"github.com/iwvelando/mortgage-forecast/internal/config"
	"github.com/iwvelando/mortgage-forecast/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address          string               `yaml:"address" toml:"address"`
	Mode             string               `yaml:"mode" toml:"mode"`
	MaxRequestSize   string               `yaml:"maxRequestSize" toml:"maxRequestSize"`
	Logging          config.LoggingConfig `yaml:"logging" toml:"logging"`
	requestSizeBytes int64
}

// LoadConfig loads the server configuration from YAML, or from TOML when the
// file has a .toml extension. If the file does not exist, defaults are
// returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Address:          constants.DefaultServerAddress,
		Mode:             gin.ReleaseMode,
		MaxRequestSize:   strconv.FormatInt(constants.DefaultMaxRequestSizeBytes, 10),
		requestSizeBytes: constants.DefaultMaxRequestSizeBytes,
	}
}

// RequestSizeBytes returns the configured request body limit in bytes.
func (c *Config) RequestSizeBytes() int64 {
	return c.requestSizeBytes
}

// SetRequestSizeBytes overrides the configured request body limit.
func (c *Config) SetRequestSizeBytes(size int64) {
	if size > 0 {
		c.requestSizeBytes = size
		c.MaxRequestSize = strconv.FormatInt(size, 10)
	}
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	switch c.Mode {
	case "":
		c.Mode = gin.ReleaseMode
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		return fmt.Errorf("invalid server mode %q: expected release, debug or test", c.Mode)
	}

	size, err := ParseSize(c.MaxRequestSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxRequestSizeBytes
	}
	c.requestSizeBytes = size
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(upper[:idx]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unit := strings.TrimSpace(upper[idx:]); unit {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unit)
	}

	result := n * multiplier
	if result < 0 || (n != 0 && result/multiplier != n) {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
