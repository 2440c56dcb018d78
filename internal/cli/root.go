package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/mindmate/internal/backup"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/preferences"
	"github.com/julianstephens/mindmate/internal/storage"
)

type Context struct {
	Store storage.Provider
	// SystemDark is the terminal's background as detected at startup
	SystemDark bool
	Now        func() time.Time
	In         io.Reader
	Out        io.Writer
}

// NewContext wires a command context to the process's stdio
func NewContext(store storage.Provider, systemDark bool) *Context {
	return &Context{
		Store:      store,
		SystemDark: systemDark,
		Now:        time.Now,
		In:         os.Stdin,
		Out:        os.Stdout,
	}
}

// Printf writes to the context's output
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes a line to the context's output
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Confirm asks a y/N question on the context's input
func (c *Context) Confirm(question string) (bool, error) {
	c.Printf("%s [y/N]: ", question)
	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// PerformAutomaticBackup creates a backup when the autoBackup setting is on.
// Failures are logged and never interrupt the command.
func (c *Context) PerformAutomaticBackup() {
	settings, err := preferences.LoadSettings(c.Store)
	if err != nil {
		logger.Warn("Skipping automatic backup", "error", err)
		return
	}
	if !settings.AutoBackup {
		return
	}

	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
