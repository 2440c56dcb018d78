package profiles

import (
	"fmt"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/profile"
	"github.com/julianstephens/mindmate/internal/tui/forms"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" default:"1" help:"Show profile details, stats and achievements."`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile details."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	p, err := profile.Load(ctx.Store, now)
	if err != nil {
		return err
	}
	stats, err := profile.ComputeStats(ctx.Store, now)
	if err != nil {
		return err
	}

	ctx.Println("Profile:")
	ctx.Printf("  Name:      %s\n", orDash(p.Name))
	ctx.Printf("  Email:     %s\n", orDash(p.Email))
	ctx.Printf("  Phone:     %s\n", orDash(p.Phone))
	ctx.Printf("  Location:  %s\n", orDash(p.Location))
	ctx.Printf("  Bio:       %s\n", orDash(p.Bio))
	ctx.Printf("  Joined:    %s\n", p.JoinDate)

	ctx.Println("\nProgress:")
	ctx.Printf("  Current streak:    %d days\n", stats.Streak)
	ctx.Printf("  Longest streak:    %d days\n", stats.LongestStreak)
	ctx.Printf("  Journal entries:   %d\n", stats.JournalEntries)
	ctx.Printf("  Mood average:      %.1f\n", stats.MoodAverage)
	ctx.Printf("  Breathing:         %d sessions\n", stats.BreathingCount)

	ctx.Printf("\nAchievements (%d/%d):\n", stats.EarnedCount, len(stats.Achievements))
	for _, a := range stats.Achievements {
		mark := "○"
		if a.Earned {
			mark = "●"
		}
		ctx.Printf("  %s %s - %s\n", mark, a.Name, a.Description)
	}
	return nil
}

type ProfileSetCmd struct {
	Name     *string `help:"Display name."`
	Email    *string `help:"Email address."`
	Phone    *string `help:"Phone number."`
	Location *string `help:"Location."`
	Bio      *string `help:"Short bio."`
	JoinDate *string `help:"Join date (YYYY-MM-DD)."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	p, err := profile.Load(ctx.Store, ctx.Now())
	if err != nil {
		return err
	}

	updated := false
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			updated = true
		}
	}
	set(&p.Name, c.Name)
	set(&p.Email, c.Email)
	set(&p.Phone, c.Phone)
	set(&p.Location, c.Location)
	set(&p.Bio, c.Bio)
	set(&p.JoinDate, c.JoinDate)

	if !updated {
		ctx.Println("No changes specified. Use flags such as --name to update the profile.")
		return nil
	}
	if err := forms.ValidateEmail(p.Email); err != nil {
		return fmt.Errorf("%s: %w", p.Email, err)
	}
	if err := profile.Save(ctx.Store, p); err != nil {
		return err
	}
	ctx.Println("Profile updated successfully.")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
