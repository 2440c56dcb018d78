package entries

import (
	"github.com/julianstephens/mindmate/internal/affirmation"
	"github.com/julianstephens/mindmate/internal/cli"
)

type AffirmCmd struct {
	Generate AffirmGenerateCmd `cmd:"" default:"1" help:"Generate an affirmation."`
	History  AffirmHistoryCmd  `cmd:"" help:"Show recent affirmations."`
}

type AffirmGenerateCmd struct{}

func (c *AffirmGenerateCmd) Run(ctx *cli.Context) error {
	g := affirmation.NewGenerator(ctx.Store)
	g.SetClock(ctx.Now)
	got, err := g.Generate()
	if err != nil {
		return err
	}
	ctx.Printf("%s  %s\n", got.Emoji, got.Affirmation.Text)
	return nil
}

type AffirmHistoryCmd struct{}

func (c *AffirmHistoryCmd) Run(ctx *cli.Context) error {
	history, err := affirmation.NewGenerator(ctx.Store).History()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		ctx.Println("No affirmations yet. Generate your first one!")
		return nil
	}
	for _, a := range history {
		ctx.Printf("  %s  %s\n", a.Timestamp.Local().Format("01/02/2006 03:04 PM"), a.Text)
	}
	return nil
}
