package checkout

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command restores a stored version into the working directory
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "checkout" }

// Usage string
func (c *Command) Usage() string { return "checkout <file> [version]" }

// Short description
func (c *Command) Description() string { return "Check out a stored version of a file" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Overwrite the working copy with the stored content of the given
version. Defaults to the latest version when none is given.
The version history is not changed.`
}

// Optional aliases
func (c *Command) Aliases() []string { return []string{"co"} }

// One-letter shortcut
func (c *Command) Short() string { return "" }

// Run executes the command
func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) < 1 {
		return fmt.Errorf("usage: %s", c.Usage())
	}
	name := ctx.Args[0]

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	eng, err := engine.Open(cwd)
	if err != nil {
		return err
	}

	version := eng.Repo.LatestVersion(name)
	if len(ctx.Args) >= 2 {
		version, err = strconv.Atoi(ctx.Args[1])
		if err != nil {
			return fmt.Errorf("invalid version number %q", ctx.Args[1])
		}
	}

	if err := eng.CheckOut(name, version); err != nil {
		return err
	}

	fmt.Printf("Checked out '%s' version %d\n", name, version)
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
