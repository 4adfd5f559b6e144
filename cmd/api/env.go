package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// loadDotEnv loads variables from the file named by ENV_FILE, or .env, and
// returns the path it read. A missing file is not an error. Variables
// already set in the process environment are not overridden.
func loadDotEnv() (string, error) {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return path, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	return "", fmt.Errorf("load %s: %w", path, err)
}
