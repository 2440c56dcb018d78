package system

import (
	"github.com/julianstephens/mindmate/internal/cli"
	"github.com/julianstephens/mindmate/internal/help"
)

// FaqCmd prints the help content with every answer expanded
type FaqCmd struct{}

func (c *FaqCmd) Run(ctx *cli.Context) error {
	ctx.Println(help.Render(nil))
	return nil
}
