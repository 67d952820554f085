package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/amountfmt/internal/config"
	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Config is the amountfmt-server configuration file.
type Config struct {
	Address     string               `yaml:"address"`
	MaxBodySize string               `yaml:"maxBodySize"`
	Currency    string               `yaml:"currency"`
	Logging     config.LoggingConfig `yaml:"logging"`

	bodySizeBytes int64
	currency      constants.CurrencyCode
}

// LoadConfig reads the server configuration at path. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the request body limit handed to NewHandler.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySizeBytes
}

// CurrencyCode returns the currency used when a request names none.
func (c *Config) CurrencyCode() constants.CurrencyCode {
	return c.currency
}

// resolve fills defaults and checks the values that have a fixed form.
func (c *Config) resolve() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	code, err := validation.ValidateCurrency(c.Currency)
	if err != nil {
		return fmt.Errorf("server config currency: %w", err)
	}
	c.currency = code

	size, err := ParseSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("server config maxBodySize: %w", err)
	}
	if size <= 0 {
		size = constants.DefaultMaxBodySizeBytes
	}
	c.bodySizeBytes = size
	return nil
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a byte count with an optional binary unit ("256K",
// "1MB") into bytes. Blank input means the default body limit.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	number := strings.TrimRightFunc(trimmed, func(r rune) bool { return !unicode.IsDigit(r) })
	unit := strings.TrimSpace(trimmed[len(number):])
	number = strings.TrimSpace(number)
	if number == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", unit)
	}

	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}
