package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (RP_PLANNER_OUTPUT_FILE, ...).
const EnvPrefix = "RP"

// Load loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
// flags may be nil; otherwise each entry maps a config key to the flag that
// overrides it when explicitly set.
func Load(configPath string, flags map[string]*pflag.Flag) (*Config, error) {
	v := viper.New()

	// Set defaults matching Default()
	d := Default()
	v.SetDefault("planner.output_file", d.Planner.OutputFile)
	v.SetDefault("planner.max_target_length", d.Planner.MaxTargetLength)
	v.SetDefault("planner.max_segments", d.Planner.MaxSegments)
	v.SetDefault("planner.max_line_length", d.Planner.MaxLineLength)
	v.SetDefault("planner.max_table_cells", d.Planner.MaxTableCells)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.max_connections", d.Server.MaxConnections)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout.String())

	// Bind environment variables with RP_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, flag := range flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	cfg := &Config{
		Planner: PlannerConfig{
			OutputFile:      v.GetString("planner.output_file"),
			MaxTargetLength: v.GetInt("planner.max_target_length"),
			MaxSegments:     v.GetInt("planner.max_segments"),
			MaxLineLength:   v.GetInt("planner.max_line_length"),
			MaxTableCells:   v.GetInt("planner.max_table_cells"),
		},
		Server: ServerConfig{
			Host:           v.GetString("server.host"),
			Port:           v.GetInt("server.port"),
			MaxConnections: v.GetInt("server.max_connections"),
			RequestTimeout: v.GetDuration("server.request_timeout"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks port range and positive values for limits and timeouts.
func validateConfig(cfg *Config) error {
	if cfg.Planner.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	if cfg.Planner.MaxTargetLength <= 0 {
		return fmt.Errorf("max_target_length must be positive, got %d", cfg.Planner.MaxTargetLength)
	}
	if cfg.Planner.MaxSegments <= 0 {
		return fmt.Errorf("max_segments must be positive, got %d", cfg.Planner.MaxSegments)
	}
	if cfg.Planner.MaxLineLength <= 0 {
		return fmt.Errorf("max_line_length must be positive, got %d", cfg.Planner.MaxLineLength)
	}
	if cfg.Planner.MaxTableCells <= 0 {
		return fmt.Errorf("max_table_cells must be positive, got %d", cfg.Planner.MaxTableCells)
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.MaxConnections <= 0 {
		return fmt.Errorf("max_connections must be positive, got %d", cfg.Server.MaxConnections)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", cfg.Server.RequestTimeout)
	}
	return nil
}
