package config

import (
	"path/filepath"

	"fjacquet/nexo-cointracker/internal/fileutils"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory or its parent into the
// process environment. Variables already set are not overridden. It returns
// the file that was loaded, or "" when none was found.
func LoadEnv() (string, error) {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if !fileutils.FileExists(candidate) {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", nil
}

