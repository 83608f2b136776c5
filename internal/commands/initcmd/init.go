package initcmd

import (
	"fmt"
	"os"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
)

// Command initializes a new repository
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "init" }

// Usage string
func (c *Command) Usage() string { return "init" }

// Short description
func (c *Command) Description() string { return "Initialize a new repository" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Create the hidden .vcs control directory in the current directory,
with the versions store, temp space and an empty metadata file.`
}

// Optional aliases
func (c *Command) Aliases() []string { return nil }

// One-letter shortcut
func (c *Command) Short() string { return "i" }

// Run executes the command
func (c *Command) Run(ctx *cli.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	if repo.ExistsAt(cwd) {
		return fmt.Errorf("repository already exists in this directory")
	}

	if err := repo.InitAt(cwd); err != nil {
		return err
	}

	fmt.Printf("Initialized empty repository in %s\n", cwd)
	return nil
}

// Register the command
func init() {
	cli.RegisterCommand(
		cli.ApplyMiddlewares(&Command{}, middleware.WithDebugArgsPrint()),
	)
}
