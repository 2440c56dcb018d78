package entries

import (
	"fmt"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/mood"
)

type MoodCmd struct {
	Save  MoodSaveCmd  `cmd:"" help:"Record today's mood."`
	List  MoodListCmd  `cmd:"" help:"List recorded moods."`
	Trend MoodTrendCmd `cmd:"" help:"Show the mood trend chart."`
}

type MoodSaveCmd struct {
	Level int    `arg:"" help:"Mood level from 1 (very sad) to 5 (very happy)."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *MoodSaveCmd) Run(ctx *cli.Context) error {
	mgr := mood.NewManager(ctx.Store)
	mgr.SetClock(ctx.Now)
	entry, err := mgr.Save(c.Level, c.Note)
	if err != nil {
		return err
	}
	level, _ := mood.Level(entry.Mood)
	ctx.Printf("✓ Mood saved for %s: %s %s\n", entry.Date, level.Emoji, level.Label)
	return nil
}

type MoodListCmd struct{}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	entries, err := mood.NewManager(ctx.Store).Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Println("No moods recorded yet.")
		return nil
	}

	for _, e := range entries {
		level, ok := mood.Level(e.Mood)
		if !ok {
			ctx.Printf("  %s  ?  (invalid level %d)\n", e.Date, e.Mood)
			continue
		}
		line := fmt.Sprintf("  %s  %s %-10s", e.Date, level.Emoji, level.Label)
		if e.Note != "" {
			line += "  " + e.Note
		}
		ctx.Println(line)
	}
	return nil
}

type MoodTrendCmd struct {
	Days   int  `help:"Number of days to chart." default:"7"`
	Sample bool `help:"Show the sample week instead of your history."`
}

func (c *MoodTrendCmd) Run(ctx *cli.Context) error {
	if c.Sample {
		ctx.Println(mood.Chart(mood.IllustrativeTrend()))
		return nil
	}
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	mgr := mood.NewManager(ctx.Store)
	mgr.SetClock(ctx.Now)
	points, err := mgr.Trend(c.Days)
	if err != nil {
		return err
	}
	ctx.Println(mood.Chart(points))

	logged := 0
	for _, p := range points {
		if p.Level != nil {
			logged++
		}
	}
	ctx.Printf("\n%d of %d days logged (%s to %s)\n", logged, len(points),
		points[0].Date, ctx.Now().Format(constants.DateFormat))
	return nil
}
