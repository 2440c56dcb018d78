package system

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/tui"
)

type TuiCmd struct {
	Tab       string `help:"Tab to open on (${tabs})." default:"mood"`
	ExportDir string `help:"Directory that exports from the settings screen are written to." type:"path" default:"."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	tab, ok := constants.ParseTab(c.Tab)
	if !ok {
		return fmt.Errorf("unknown tab %q, expected one of %s", c.Tab, strings.Join(constants.TabSlugs(), ", "))
	}
	return launch(ctx, tui.Options{Tab: tab, ExportDir: c.ExportDir})
}

// BreatheCmd opens the TUI on the breathing tab with the timer running
type BreatheCmd struct{}

func (c *BreatheCmd) Run(ctx *cli.Context) error {
	return launch(ctx, tui.Options{Tab: constants.TabBreathing, StartBreathing: true, ExportDir: "."})
}

func launch(ctx *cli.Context, opts tui.Options) error {
	// back up on startup, after the store has loaded
	ctx.PerformAutomaticBackup()

	opts.SystemDark = ctx.SystemDark
	p := tea.NewProgram(tui.NewModel(ctx.Store, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
