package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen"
)

const defaultConfigFile = ".stylegen.yaml"

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEGEN_* prefix)
	if err := k.Load(env.Provider("STYLEGEN_", ".", func(s string) string {
		// STYLEGEN_COMPILE_SOURCE -> compile.source
		// STYLEGEN_CHECK_STRICT -> check.strict
		// STYLEGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildCompileConfig constructs the library's Config struct from koanf state.
func buildCompileConfig(log *zap.Logger) stylegen.Config {
	config := stylegen.Config{
		SourceDir:     getStringWithFallback("source", "compile.source", "web/styles"),
		OutputDir:     getStringWithFallback("output-dir", "compile.output-dir", "internal/web/ui"),
		PackageName:   getStringWithFallback("package", "package", "ui"),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
		FriendlyNames: getBoolWithFallback("friendly-names", "compile.friendly-names", true),
		ClassPrefix:   getStringWithFallback("prefix", "compile.prefix", ""),
		EmitManifest:  getBoolWithFallback("manifest", "compile.manifest", false),
		Logger:        log,
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("compile.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = stylegen.DefaultIncludes
	}

	return config
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
func buildCheckConfig(log *zap.Logger) stylegen.CheckConfig {
	return stylegen.CheckConfig{
		Config:             buildCompileConfig(log),
		Strict:             getBoolWithFallback("strict", "check.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "check.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// logLevel picks the console log level: quiet silences logging, verbose
// enables debug output.
func logLevel() string {
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		return levelNone
	case getBoolWithFallback("verbose", "verbose", false):
		return levelDebug
	}
	return getStringWithFallback("log-level", "log-level", levelNormal)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
