package status

import (
	"fmt"
	"os"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command reports tracked files that differ from their latest snapshot
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "status" }

// Usage string
func (c *Command) Usage() string { return "status" }

// Short description
func (c *Command) Description() string { return "Show tracked files and their state" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Compare every tracked file's working copy against its latest
snapshot and report it as unchanged, modified or missing.`
}

// Optional aliases
func (c *Command) Aliases() []string { return nil }

// One-letter shortcut
func (c *Command) Short() string { return "s" }

// Run executes the command
func (c *Command) Run(ctx *cli.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	eng, err := engine.Open(cwd)
	if err != nil {
		return err
	}

	statuses, err := eng.Status()
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		fmt.Println("No files tracked yet.")
		return nil
	}

	for _, st := range statuses {
		fmt.Printf("%-10s %s (v%d)\n", st.State, st.Name, st.Latest)
	}
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
