package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ambient/internal/platform/tui"
	"github.com/vovakirdan/tui-ambient/internal/registry"
	"github.com/vovakirdan/tui-ambient/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show past sessions",
	Long: `Display recent sessions and per-scene totals from the history database.

Examples:
  ambient history
  ambient history rain --limit 5
  ambient history --tui
  ambient history snow --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the history (of one scene if given)")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history interactively")
}

func runHistory(_ *cobra.Command, args []string) {
	sceneID := ""
	if len(args) > 0 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
			fmt.Fprintln(os.Stderr, "Run 'ambient list' to see available scenes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearSessions(sceneID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println(clearedMessage(n))
		return
	}

	if flagHistoryTUI {
		cfg := runtimeConfig(loadConfig())
		if _, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	sessions, err := store.RecentSessions(sceneID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}
	totals, err := store.Totals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		return
	}

	printHistory(color.Output, sessions, totals, sceneID, time.Now())
}

// printHistory writes the recent sessions and the per-scene totals.
func printHistory(w io.Writer, sessions []storage.Session, totals map[string]*storage.SceneTotals, sceneID string, now time.Time) {
	bold := color.New(color.Bold)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'ambient' to start one.")
		return
	}

	bold.Fprintln(w, "Recent sessions")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("SCENE", "STARTED", "LENGTH", "FRAMES", "VIA")
	for _, s := range sessions {
		tbl.AddRow(
			s.SceneID,
			humanize.RelTime(s.StartedAt, now, "ago", "from now"),
			s.Duration.Round(time.Second).String(),
			humanize.Comma(int64(s.Frames)),
			s.Origin,
		)
	}
	fmt.Fprintln(w, tbl)
	fmt.Fprintln(w)

	ids := make([]string, 0, len(totals))
	for id := range totals {
		if sceneID == "" || id == sceneID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	bold.Fprintln(w, "Totals")
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("SCENE", "SESSIONS", "TIME", "FRAMES", "LAST RUN")
	for _, id := range ids {
		t := totals[id]
		tbl.AddRow(
			id,
			t.Sessions,
			t.Duration.Round(time.Second).String(),
			humanize.Comma(int64(t.Frames)),
			humanize.RelTime(t.LastRun, now, "ago", "from now"),
		)
	}
	fmt.Fprintln(w, tbl)
}

// clearedMessage reports how many sessions --clear removed.
func clearedMessage(n int64) string {
	return fmt.Sprintf("Deleted %s.", english.Plural(int(n), "session", "sessions"))
}
