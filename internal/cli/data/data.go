package data

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/export"
)

type ExportCmd struct {
	Out string `help:"File or directory to write the export to." type:"path" default:"${export_file}"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	path, err := export.Write(ctx.Store, c.Out, ctx.Now())
	if err != nil {
		return err
	}
	ctx.Printf("✓ Data exported to %s\n", path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Export file to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	doc, err := export.Import(ctx.Store, c.File)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Imported %d moods, %d journal entries and %d affirmations (exported %s)\n",
		len(doc.Moods), len(doc.JournalEntries), len(doc.Affirmations),
		doc.ExportDate.Local().Format(constants.DisplayTimeFormat))
	return nil
}

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Are you sure you want to clear all your data?").
			Description("This action cannot be undone.").
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			ctx.Println("Nothing was cleared.")
			return nil
		}
	}

	if err := export.ClearAll(ctx.Store); err != nil {
		return err
	}
	ctx.Println("✓ All data has been cleared.")
	return nil
}
