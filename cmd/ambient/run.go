package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/platform/tui"
	"github.com/vovakirdan/tui-ambient/internal/registry"
	"github.com/vovakirdan/tui-ambient/internal/scene"
)

var (
	flagLevel     int
	flagDensity   string
	flagWind      string
	flagBounce    bool
	flagBlink     bool
	flagSeconds   bool
	flagHideClock bool
	flagShowHelp  bool
)

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Run a scene",
	Long: `Start the given scene, or the configured one when no scene is named.

Controls:
  P/Space    - Pause
  Ctrl+S     - Save a text screenshot to ~/.ambient/screenshots
  ?          - Toggle the status and help bar
  Q/Ctrl+C   - Quit

Density:
  --level N        - Spawn threshold, lower is denser (overrides --density)
  --density NAME   - light, normal or heavy

Wind:
  random   - Gusts come and go (rain and snow only)
  disable  - No drift
  left     - Constant drift to the left
  right    - Constant drift to the right

Examples:
  ambient run rain
  ambient run snow --density heavy --wind right
  ambient run star --bounce --blink --seconds=false
  ambient run calm --config ./ambient.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScene,
}

func init() {
	addSceneFlags(runCmd)
}

// addSceneFlags registers the per-run overrides on a command.
func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Spawn threshold (0 = from config)")
	cmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: light, normal, heavy")
	cmd.Flags().StringVar(&flagWind, "wind", "", "Wind: random, disable, left, right")
	cmd.Flags().BoolVar(&flagBounce, "bounce", false, "Bounce the clock around the screen")
	cmd.Flags().BoolVar(&flagBlink, "blink", false, "Blink the clock colons")
	cmd.Flags().BoolVar(&flagSeconds, "seconds", true, "Show seconds on the clock")
	cmd.Flags().BoolVar(&flagHideClock, "hide-clock", false, "Do not draw the clock")
	cmd.Flags().BoolVar(&flagShowHelp, "help-bar", false, "Start with the status and help bar visible")
}

// applySceneFlags copies explicitly set flags over the loaded config.
func applySceneFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("density") {
		config.ApplyDensityPreset(cfg, config.DensityPreset(flagDensity))
	}
	if flags.Changed("level") {
		cfg.Level = flagLevel
	}
	if flags.Changed("wind") {
		cfg.Wind = flagWind
	}
	if flags.Changed("bounce") {
		cfg.Clock.Bounce = flagBounce
	}
	if flags.Changed("blink") {
		cfg.Clock.Blink = flagBlink
	}
	if flags.Changed("seconds") {
		cfg.Clock.ShowSeconds = flagSeconds
	}
	if flags.Changed("hide-clock") {
		cfg.Clock.Hidden = flagHideClock
	}
	return cfg.Validate()
}

func runScene(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if err := applySceneFlags(cmd, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sceneID := ""
	if len(args) > 0 {
		sceneID = args[0]
	} else {
		mode, err := cfg.WeatherMode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sceneID = scene.PresetFor(mode)
	}

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'ambient list' to see available scenes.")
		os.Exit(1)
	}

	s, err := registry.Create(sceneID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger("ambient", io.Discard)
	store := openStore(logger)

	runErr := tui.Run(s, store, runtimeConfig(cfg), tui.ModelOptions{
		Logger:   logger,
		ShowHelp: flagShowHelp,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
