package rollback

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command restores an old version and records it as a new one
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "rollback" }

// Usage string
func (c *Command) Usage() string { return "rollback <file> <version>" }

// Short description
func (c *Command) Description() string { return "Roll a file back to a previous version" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Restore the given version into the working directory and check it
in again as a brand-new version. History is never truncated:
rollback always grows it by one record.`
}

// Optional aliases
func (c *Command) Aliases() []string { return []string{"rb"} }

// One-letter shortcut
func (c *Command) Short() string { return "r" }

// Run executes the command
func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) < 2 {
		return fmt.Errorf("usage: %s", c.Usage())
	}
	name := ctx.Args[0]
	version, err := strconv.Atoi(ctx.Args[1])
	if err != nil {
		return fmt.Errorf("invalid version number %q", ctx.Args[1])
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	eng, err := engine.Open(cwd)
	if err != nil {
		return err
	}

	newVersion, err := eng.Rollback(name, version)
	if err != nil {
		return err
	}

	fmt.Printf("Rolled back '%s' to version %d (recorded as version %d)\n", name, version, newVersion)
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
