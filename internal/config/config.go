package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/handykit/handykit/internal/constants"
	"github.com/handykit/handykit/internal/logger"
	"github.com/handykit/handykit/pkg/timeutil"
	"github.com/handykit/handykit/pkg/token"
)

// Config holds all configuration settings.
type Config struct {
	// Locale is the BCP 47 tag used for localized formatting (e.g. "en", "ru").
	Locale string `mapstructure:"locale"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxUnits is the maximum number of units rendered by duration formatting.
	MaxUnits int `mapstructure:"max_units"`
	// Compact indicates whether duration formatting omits separators.
	Compact bool `mapstructure:"compact"`
	// TokenLength is the default length for generated random strings.
	TokenLength int `mapstructure:"token_length"`
	// TokenCharset names the default charset for generated random strings
	// (one of "alphanumeric", "alphabetic", "numeric", "hex", "urlsafe").
	TokenCharset string `mapstructure:"token_charset"`
	// DateLayout is the output layout for parsed timestamps, in Go reference
	// time format. Empty means RFC 3339.
	DateLayout string `mapstructure:"date_layout"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedLocale is the parsed language tag.
	ParsedLocale language.Tag
	// ParsedTokenCharset is the resolved token charset.
	ParsedTokenCharset token.Charset
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".handykit.yaml"

	// DefaultLocale is the locale used when the config does not name one.
	DefaultLocale = "en"

	// DefaultLogLevel is the log level used when the config does not name one.
	DefaultLogLevel = "info"

	// DefaultTokenLength is the random string length used when the config
	// does not name one.
	DefaultTokenLength = 32
)

// Static error definitions for better error handling.
var (
	// ErrInvalidLocale indicates that the locale tag could not be parsed.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidMaxUnits indicates that the max units setting is invalid.
	ErrInvalidMaxUnits = errors.New("max_units must be a positive integer")
	// ErrInvalidTokenLength indicates that the token length setting is invalid.
	ErrInvalidTokenLength = errors.New("token_length must be a positive integer")
	// ErrUnknownTokenCharset indicates that the token charset name is not recognized.
	ErrUnknownTokenCharset = errors.New("unknown token_charset")
	// ErrInvalidDateLayout indicates that the date layout cannot render a timestamp.
	ErrInvalidDateLayout = errors.New("invalid date_layout")
)

//nolint:gochecknoglobals // This is an immutable map used as a constant for validation purposes.
var tokenCharsetsByName = map[string]token.Charset{
	"alphanumeric": token.CharsetAlphanumeric,
	"alphabetic":   token.CharsetAlphabetic,
	"numeric":      token.CharsetNumeric,
	"hex":          token.CharsetHex,
	"urlsafe":      token.CharsetURLSafe,
}

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	localeTag := strings.TrimSpace(cfg.Locale)
	if localeTag == "" {
		localeTag = DefaultLocale
	}

	parsedLocale, err := language.Parse(localeTag)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, cfg.Locale)
	}

	cfg.ParsedLocale = parsedLocale

	logLevel := strings.TrimSpace(cfg.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(logLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.MaxUnits == 0 {
		cfg.MaxUnits = timeutil.DefaultMaxUnits
	}

	if cfg.MaxUnits < 0 {
		return ErrInvalidMaxUnits
	}

	if cfg.TokenLength == 0 {
		cfg.TokenLength = DefaultTokenLength
	}

	if cfg.TokenLength < 0 {
		return ErrInvalidTokenLength
	}

	charsetName := strings.ToLower(strings.TrimSpace(cfg.TokenCharset))
	if charsetName == "" {
		charsetName = "alphanumeric"
	}

	charset, ok := tokenCharsetsByName[charsetName]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownTokenCharset, cfg.TokenCharset)
	}

	cfg.ParsedTokenCharset = charset

	if cfg.DateLayout != "" {
		// A layout that cannot round-trip the reference time is not a layout.
		rendered := time.Time{}.Format(cfg.DateLayout)
		if _, parseErr := time.Parse(cfg.DateLayout, rendered); parseErr != nil {
			return fmt.Errorf("%w: '%s'", ErrInvalidDateLayout, cfg.DateLayout)
		}
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.Locale, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the locale value in the node tree.
	updateLocaleInNode(&node, cfg.Locale)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, localeTag string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("locale", localeTag)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateLocaleInNode updates the locale value in the YAML node tree.
func updateLocaleInNode(node *yaml.Node, localeTag string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "locale" {
			valueNode.Value = localeTag

			return
		}
	}

	// The key was absent, append it.
	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "locale"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: localeTag})
}
