package utils

import "go.uber.org/zap"

// NewLogger builds the process logger. Anything other than "prod" gets the
// human-readable development encoder.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
