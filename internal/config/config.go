package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config represents the application configuration
type Config struct {
	LogLevel string       `toml:"log_level" validate:"required,oneof=debug info warn error"`
	Dealer   DealerConfig `toml:"dealer"`
	Phone    PhoneConfig  `toml:"phone"`
}

// DealerConfig holds the defaults for the deal command
type DealerConfig struct {
	Count int   `toml:"count" validate:"gte=0,lte=52"`
	Seed  int64 `toml:"seed"` // 0 seeds from the clock
}

// PhoneConfig holds the defaults for the dial pipeline
type PhoneConfig struct {
	FillDigit    int    `toml:"fill_digit" validate:"gte=0,lte=9"`
	ContactsFile string `toml:"contacts_file"`
}

var validate = validator.New()

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Dealer: DealerConfig{
			Count: 3,
		},
		Phone: PhoneConfig{
			FillDigit: 0,
		},
	}
}

// Validate checks field ranges
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %v", err)
	}
	return nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "dealtone", "config.toml")
}

// GetContactsFilePath returns the default path of the contacts file
func GetContactsFilePath() string {
	return filepath.Join(GetXDGDataHome(), "dealtone", "contacts.toml")
}

// Load loads the config file from the default location
func Load() (*Config, error) {
	return LoadFrom(GetConfigFilePath())
}

// LoadFrom loads the config file at path, creating it with defaults if it
// doesn't exist
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Start from defaults so missing keys keep their default values
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// ResolveContactsFile returns the contacts file to use: the configured one,
// else the default location if it exists. An empty result means the
// built-in directory.
func (c *Config) ResolveContactsFile() string {
	if c.Phone.ContactsFile != "" {
		return c.Phone.ContactsFile
	}
	if _, err := os.Stat(GetContactsFilePath()); err == nil {
		return GetContactsFilePath()
	}
	return ""
}
