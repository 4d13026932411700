// Package logger builds the service's zap loggers.
package logger

import (
	"go.uber.org/zap"
)

// New creates a zap logger appropriate for the given environment:
// human-readable development output, JSON in production.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// NewNamed creates an environment-appropriate logger named after the
// component that owns it.
func NewNamed(env, name string) (*zap.Logger, error) {
	log, err := New(env)
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
