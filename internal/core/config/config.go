// Package config provides configuration management for railplanner commands.
package config

import (
	"time"

	"github.com/solatis/railplanner/internal/input"
	"github.com/solatis/railplanner/internal/types"
)

// Config is the full railplanner configuration.
type Config struct {
	Planner PlannerConfig
	Server  ServerConfig
}

// PlannerConfig bounds planner input and names the result destination.
type PlannerConfig struct {
	OutputFile      string
	MaxTargetLength int
	MaxSegments     int
	MaxLineLength   int
	MaxTableCells   int
}

// ServerConfig holds configuration for the gRPC planner service.
type ServerConfig struct {
	Host           string
	Port           int
	MaxConnections int
	RequestTimeout time.Duration
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		Planner: PlannerConfig{
			OutputFile:      input.DefaultOutputFile,
			MaxTargetLength: types.DefaultMaxTargetLength,
			MaxSegments:     types.DefaultMaxSegments,
			MaxLineLength:   types.DefaultMaxLineLength,
			MaxTableCells:   types.DefaultMaxTableCells,
		},
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           50061,
			MaxConnections: 1000,
			RequestTimeout: 30 * time.Second,
		},
	}
}

// Limits converts planner settings into input validation limits.
func (c PlannerConfig) Limits() input.Limits {
	return input.Limits{
		MaxTargetLength: c.MaxTargetLength,
		MaxSegments:     c.MaxSegments,
		MaxLineLength:   c.MaxLineLength,
		MaxTableCells:   c.MaxTableCells,
	}
}
