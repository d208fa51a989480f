// ambient draws rain, snow, meteors or falling stars in the terminal, with
// an optional big clock on top.
//
// Usage:
//
//	ambient                  - Run the configured scene
//	ambient run <scene>      - Run a specific scene
//	ambient list             - List available scenes
//	ambient menu             - Pick scenes interactively
//	ambient history          - Show past sessions
//	ambient serve            - Start SSH server for remote viewing
//	ambient config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Override the configured tick rate
//	--seed <value>     - Set RNG seed for reproducible weather
//	--db <path>        - Set database path (default: ~/.ambient/history.db)
//	--config <path>    - Load configuration from a YAML file
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/core"
	_ "github.com/vovakirdan/tui-ambient/internal/scene" // Register scene presets
	"github.com/vovakirdan/tui-ambient/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ambient",
	Short: "Ambient weather and a big clock for your terminal",
	Long: `ambient fills the terminal with rain, snow, meteors or falling stars
and can draw a large digital clock over the weather.

Running ambient without a command starts the scene selected by the
configuration (mode: rain by default).

Available commands:
  run      - Run a specific scene
  list     - Show all available scenes
  menu     - Interactive scene picker
  history  - Show past sessions
  serve    - Start SSH server for remote viewing
  config   - Print the effective configuration

Examples:
  ambient
  ambient run snow --wind left
  ambient run meteor --bounce --blink
  ambient menu
  ambient serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		runScene(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ambient/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addSceneFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the YAML config and applies the global overrides.
// Exits on invalid configuration.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS != 0 {
		cfg.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the logger for interactive commands.
// The TUI owns the terminal, so logs only go to --log-file.
// The returned closer must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn
}

// openStore opens the history database, or returns nil so scenes still run.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt = rt.WithSize(w, h)
	}
	rt.TickRate = cfg.FPS
	rt.Seed = flagSeed
	return rt
}
