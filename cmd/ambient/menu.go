package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ambient/internal/platform/tui"
	"github.com/vovakirdan/tui-ambient/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes from an interactive menu",
	Long: `Start ambient in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a scene.
Quitting a scene with Q returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start scene
  Tab/H        - Session history
  Q            - Quit

Examples:
  ambient menu
  ambient menu --fps 30
  ambient menu --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := newLogger("ambient", io.Discard)
	defer closeLog()

	store := openStore(logger)
	rt := runtimeConfig(cfg)

	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, rt.ScreenW, rt.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		s, err := registry.Create(menuResult.SceneID, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
			continue
		}

		// Fresh weather for every run unless a seed was pinned
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(s, store, rt, tui.ModelOptions{Logger: logger}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
