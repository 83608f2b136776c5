package checkin

import (
	"fmt"
	"os"
	"strings"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command snapshots a file's current content as a new version
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "checkin" }

// Usage string
func (c *Command) Usage() string { return "checkin <file> [comment]" }

// Short description
func (c *Command) Description() string { return "Check in a file as a new version" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Snapshot the file's current content into the store as the next
version number and record it in the version history.
The remaining arguments become the version comment.`
}

// Optional aliases
func (c *Command) Aliases() []string { return []string{"ci", "commit"} }

// One-letter shortcut
func (c *Command) Short() string { return "c" }

// Run executes the command
func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) < 1 {
		return fmt.Errorf("usage: %s", c.Usage())
	}
	name := ctx.Args[0]
	comment := strings.Join(ctx.Args[1:], " ")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	eng, err := engine.Open(cwd)
	if err != nil {
		return err
	}

	version, err := eng.CheckIn(name, comment)
	if err != nil {
		return err
	}

	fmt.Printf("Checked in '%s' as version %d\n", name, version)
	return nil
}

// Register the command
func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(&Command{},
			middleware.WithRepoCheck(),
			middleware.WithDebugArgsPrint(),
		),
	)
}
