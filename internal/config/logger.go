package config

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger: structured JSON in production,
// human-readable in development.
func NewLogger() (*zap.Logger, error) {
	if LoadAppConfig().Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
