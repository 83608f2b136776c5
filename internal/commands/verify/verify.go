package verify

import (
	"fmt"
	"os"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command checks stored snapshots against their recorded digests
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "verify" }

// Usage string
func (c *Command) Usage() string { return "verify [--rebuild]" }

// Short description
func (c *Command) Description() string { return "Verify snapshot integrity" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Re-digest every stored snapshot and compare it against the digest
recorded at check-in time. With --rebuild, re-digest everything on
disk and rewrite the integrity index instead.`
}

// Optional aliases
func (c *Command) Aliases() []string { return nil }

// One-letter shortcut
func (c *Command) Short() string { return "v" }

// Run executes the command
func (c *Command) Run(ctx *cli.Context) error {
	rebuild := len(ctx.Args) > 0 && ctx.Args[0] == "--rebuild"

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	eng, err := engine.Open(cwd)
	if err != nil {
		return err
	}

	if rebuild {
		if err := eng.RebuildIndex(); err != nil {
			return err
		}
		fmt.Println("Integrity index rebuilt.")
		return nil
	}

	damaged, err := eng.Verify()
	if err != nil {
		return err
	}
	if len(damaged) == 0 {
		fmt.Println("All snapshots verified OK.")
		return nil
	}

	for _, d := range damaged {
		fmt.Printf("DAMAGED %s: %s\n", d.Key, d.Reason)
	}
	return fmt.Errorf("%d damaged snapshot(s) found", len(damaged))
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
