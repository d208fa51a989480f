package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ambient/internal/config"
	"github.com/vovakirdan/tui-ambient/internal/registry"
	"github.com/vovakirdan/tui-ambient/internal/scene"
	"github.com/vovakirdan/tui-ambient/internal/weather"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenes",
	Long:  `Shows every registered scene with its spawn density and wind behavior.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	scenes := registry.List()
	if len(scenes) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	cfg := loadConfig()
	current := ""
	if mode, err := cfg.WeatherMode(); err == nil {
		current = scene.PresetFor(mode)
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Density"), bold.Sprint("Wind"))

	for _, info := range scenes {
		marker := " "
		if info.ID == current {
			marker = color.GreenString("*")
		}
		tbl.AddRow(marker, info.ID, info.Title, densityLabel(info.ID, cfg), windLabel(info.ID, cfg))
	}

	fmt.Fprintln(color.Output, "Available scenes:")
	fmt.Fprintln(color.Output)
	fmt.Fprintln(color.Output, tbl)
	fmt.Fprintln(color.Output)
	fmt.Fprintln(color.Output, "Run 'ambient run <id>' to start a scene. * marks the configured default.")
}

// densityLabel describes the resolved spawn threshold for a scene.
func densityLabel(id string, cfg config.Config) string {
	s, err := registry.Create(id, cfg)
	if err != nil {
		return color.RedString("invalid")
	}
	st := s.Stats()
	if st.Threshold == 0 {
		return "-"
	}
	return fmt.Sprintf("1/%d", st.Threshold)
}

// windLabel shows the wind setting a scene will actually use.
func windLabel(id string, cfg config.Config) string {
	for _, p := range scene.Presets {
		if p.ID != id {
			continue
		}
		if p.Mode == weather.ModeDisabled {
			return "-"
		}
		cfg.Mode = p.Mode.String()
		s, err := cfg.WeatherSettings()
		if err != nil {
			return color.RedString("invalid")
		}
		if p.Mode.HasTail() {
			return s.Wind.WithoutRandom().String()
		}
		return s.Wind.String()
	}
	return "-"
}
