package entries

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/journal"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/preferences"
	"github.com/julianstephens/mindmate/internal/sentiment"
)

type JournalCmd struct {
	Analyze JournalAnalyzeCmd `cmd:"" help:"Analyze the tone of some text without saving it."`
	Add     JournalAddCmd     `cmd:"" help:"Save a journal entry."`
	List    JournalListCmd    `cmd:"" help:"List journal entries."`
}

type JournalAnalyzeCmd struct {
	Text []string `arg:"" help:"Text to analyze."`
}

func (c *JournalAnalyzeCmd) Run(ctx *cli.Context) error {
	a, err := journal.NewManager(ctx.Store, nil).Analyze(strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	printAnalysis(ctx, a)
	return nil
}

type JournalAddCmd struct {
	Text      []string `arg:"" help:"Entry text."`
	NoAnalyze bool     `help:"Save without a sentiment analysis."`
}

func (c *JournalAddCmd) Run(ctx *cli.Context) error {
	mgr := journal.NewManager(ctx.Store, nil)
	mgr.SetClock(ctx.Now)
	text := strings.Join(c.Text, " ")

	var analysis *models.Analysis
	if !c.NoAnalyze {
		a, err := mgr.Analyze(text)
		if err != nil {
			return err
		}
		analysis = &a
	}

	entry, err := mgr.Save(text, analysis)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Journal entry saved (%s)\n", entry.Date.Local().Format("Jan 2 15:04"))
	if analysis != nil {
		printAnalysis(ctx, *analysis)
	}
	return nil
}

type JournalListCmd struct {
	Limit int  `short:"l" help:"Show only the most recent entries (0 for all)." default:"0"`
	Full  bool `help:"Print full entry text even when sensitive data is hidden."`
}

func (c *JournalListCmd) Run(ctx *cli.Context) error {
	entries, err := journal.NewManager(ctx.Store, nil).Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("No journal entries yet.")
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[len(entries)-c.Limit:]
	}

	full := c.Full
	if !full {
		settings, err := preferences.LoadSettings(ctx.Store)
		if err != nil {
			return err
		}
		full = settings.ShowSensitiveData
	}

	now := ctx.Now()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		tag := "  "
		if e.Analysis != nil {
			tag = e.Analysis.Emoji
		}
		ctx.Printf("  %-16s %s %s\n", humanize.RelTime(e.Date, now, "ago", "from now"), tag, journal.Preview(e.Text, full))
	}
	return nil
}

func printAnalysis(ctx *cli.Context, a models.Analysis) {
	ctx.Printf("%s %s: %s\n", a.Emoji, a.Sentiment, sentiment.Message(a.Sentiment))
}
