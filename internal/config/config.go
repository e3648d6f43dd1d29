// Package config resolves run defaults from .env files and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/julianstephens/clockings/internal/constants"
	"github.com/julianstephens/clockings/internal/utils"
)

// LeaveUnset marks that no leave count was configured; the CLI prompts for it.
const LeaveUnset = -1

// Config holds the defaults for a run. Command-line flags override them.
type Config struct {
	// Dir is the working directory holding the clockings file and reports.
	Dir        string
	Input      string
	Vocabulary string
	Reminders  string
	Timezone   string
	ConfigDir  string
	Leave      int
}

// Load reads .env files and environment variables.
func Load() (*Config, error) {
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			// Existing environment variables take precedence over the file.
			_ = godotenv.Load(path)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &Config{
		Dir:        getEnvString("DIR", cwd),
		Input:      getEnvString("INPUT", constants.DefaultInputFile),
		Vocabulary: getEnvString("VOCABULARY", ""),
		Reminders:  getEnvString("REMINDERS", constants.DefaultRemindersFile),
		Timezone:   getEnvString("TIMEZONE", "Local"),
		ConfigDir:  getEnvString("CONFIG_DIR", defaultConfigDir()),
	}

	cfg.Leave, err = getEnvInt("LEAVE", LeaveUnset)
	if err != nil {
		return nil, err
	}

	if !utils.ValidateTimezone(cfg.Timezone) {
		return nil, fmt.Errorf("invalid %sTIMEZONE %q", constants.EnvPrefix, cfg.Timezone)
	}
	if cfg.Leave < LeaveUnset {
		return nil, fmt.Errorf("invalid %sLEAVE %d: must not be negative", constants.EnvPrefix, cfg.Leave)
	}
	return cfg, nil
}

// Resolve joins a relative path onto the working directory.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// getEnvPaths returns the .env files to load, most specific first.
func getEnvPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}
	paths = append(paths, filepath.Join(getEnvString("CONFIG_DIR", defaultConfigDir()), ".env"))
	return paths
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constants.ConfigName)
	}
	return filepath.Join(os.TempDir(), constants.ConfigName)
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(constants.EnvPrefix + key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(constants.EnvPrefix + key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s %q: not a whole number", constants.EnvPrefix, key, v)
	}
	return n, nil
}
