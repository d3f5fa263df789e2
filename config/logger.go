package config

import "go.uber.org/zap"

// NewLogger returns a console logger in debug mode and a JSON logger otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
