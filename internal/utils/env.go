package utils

import (
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from .env files into the process environment.
// Variables that are already set win over file values. It runs before the
// logger exists, so the caller reports the returned error.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}
