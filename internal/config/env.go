package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override flag defaults.
const (
	EnvSeed       = "SLOTH_SEED"
	EnvDifficulty = "SLOTH_DIFFICULTY"
	EnvConfig     = "SLOTH_CONFIG"
	EnvSSHAddr    = "SLOTH_SSH_ADDR"
	EnvLogLevel   = "SLOTH_LOG_LEVEL"
)

// Env holds overrides read from the environment. Zero values mean unset.
type Env struct {
	Seed       int64
	Difficulty string
	ConfigPath string
	SSHAddr    string
	LogLevel   string
}

// LoadEnv loads the given dotenv files (".env" when none are named) into
// the process environment and reads the SLOTH_* variables. Missing files
// are ignored; variables already set in the environment win over files.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("config: load env: %w", err)
	}

	env := Env{
		Difficulty: os.Getenv(EnvDifficulty),
		ConfigPath: os.Getenv(EnvConfig),
		SSHAddr:    os.Getenv(EnvSSHAddr),
		LogLevel:   os.Getenv(EnvLogLevel),
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, EnvSeed, err)
		}
		env.Seed = seed
	}
	return env, nil
}
