// sloth is a terminal maze game: lead the sloth to its baby before a
// falling monkey lands on it.
//
// Usage:
//
//	sloth                    - Play locally (same as "sloth play")
//	sloth play               - Play locally
//	sloth serve              - Start SSH server for remote play
//	sloth maze               - Print a generated maze
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for a reproducible first maze
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sloth-rescue/internal/config"
	"github.com/vovakirdan/sloth-rescue/internal/engine"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sloth",
	Short: "Sloth Rescue - guide the sloth through the forest to its baby",
	Long: `Sloth Rescue is a terminal maze game. Walk the sloth from the top-left
corner of a forest maze to the baby sloth in the bottom-right corner.
Monkeys drop from the treetops every few ticks; if one lands on you,
the game is over. The score counts the ticks you survived.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  maze     - Print a generated maze

Environment:
  SLOTH_SEED, SLOTH_DIFFICULTY, SLOTH_CONFIG, SLOTH_SSH_ADDR and
  SLOTH_LOG_LEVEL set flag defaults. A .env file in the working
  directory is loaded first.

Examples:
  sloth
  sloth play --difficulty hard
  sloth serve --ssh :2222
  sloth maze --seed 42`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mazeCmd)
}

// applyEnv fills flags the user did not set from SLOTH_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if env.Seed != 0 && !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if env.Difficulty != "" && !flags.Changed("difficulty") {
		flagDifficulty = env.Difficulty
	}
	if env.ConfigPath != "" && !flags.Changed("config") {
		flagConfig = env.ConfigPath
	}
	if env.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if env.SSHAddr != "" && flags.Lookup("ssh") != nil && !flags.Changed("ssh") {
		flagSSHAddr = env.SSHAddr
	}
	return nil
}

// loadGameConfig resolves the config file and difficulty preset into
// engine settings.
func loadGameConfig() (config.GameConfig, engine.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, engine.Config{}, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, engine.Config{}, err
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, engine.Config{}, err
		}
	}

	return cfg, engine.Config{
		Rules:        cfg.GameRules(),
		TickInterval: cfg.Tick.Interval,
		Seed:         flagSeed,
	}, nil
}

// newLogger builds a logger writing to --log-file, or to fallback when no
// file is given. cleanup closes the file.
func newLogger(fallback io.Writer) (logger *log.Logger, cleanup func(), err error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, cleanup := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		w, cleanup = f, func() { _ = f.Close() }
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sloth",
		Level:           level,
	})
	return logger, cleanup, nil
}
