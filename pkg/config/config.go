/*
Package config manages the TOML config for dictree.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/dictree/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path     string `toml:"path"`
	Format   string `toml:"format"`
	MaxWords int    `toml:"max_words"`
}

// CliConfig holds REPL options.
type CliConfig struct {
	DefaultLimit    int    `toml:"default_limit"`
	DefaultMinLen   int    `toml:"default_min_len"`
	DefaultMaxLen   int    `toml:"default_max_len"`
	DefaultNoFilter bool   `toml:"default_no_filter"`
	WarmupPrefix    string `toml:"warmup_prefix"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit  int `toml:"max_limit"`
	MaxPrefix int `toml:"max_prefix"`
	CacheSize int `toml:"cache_size"`
}

// osUserHomeDir is replaced in tests.
var osUserHomeDir = os.UserHomeDir

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:     "word-popularity.txt",
			Format:   "auto",
			MaxWords: 0,
		},
		CLI: CliConfig{
			DefaultLimit:    5,
			DefaultMinLen:   1,
			DefaultMaxLen:   60,
			DefaultNoFilter: false,
			WarmupPrefix:    "t",
		},
		Server: ServerConfig{
			MaxLimit:  64,
			MaxPrefix: 60,
			CacheSize: 4096,
		},
	}
}

// GetDefaultConfigPath returns [UserConfigDir]/dictree/config.toml when that
// directory is writable, otherwise config.toml next to the executable.
func GetDefaultConfigPath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

func getConfigDir() (string, error) {
	if homeDir, err := osUserHomeDir(); err == nil {
		dir := utils.UserConfigDir(homeDir)
		if utils.CheckDirStatus(dir).Writable {
			return dir, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/dictree/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Values missing from the file keep their
// defaults; a file that fails typed decoding is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(raw, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "format"); ok {
		dict.Format = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_min_len"); ok {
		cli.DefaultMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_len"); ok {
		cli.DefaultMaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
	if val, ok := utils.ExtractString(data, "warmup_prefix"); ok {
		cli.WarmupPrefix = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		server.CacheSize = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
