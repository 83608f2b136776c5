package list

import (
	"fmt"
	"os"
	"time"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command lists all versions of a file
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "list" }

// Usage string
func (c *Command) Usage() string { return "list <file>" }

// Short description
func (c *Command) Description() string { return "List all versions of a file" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Show every recorded version of the file with its number,
timestamp, size, hash label and comment, newest first.`
}

// Optional aliases
func (c *Command) Aliases() []string { return []string{"ls"} }

// One-letter shortcut
func (c *Command) Short() string { return "l" }

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

	records := eng.List(name)
	if len(records) == 0 {
		fmt.Printf("No versions found for '%s'\n", name)
		return nil
	}

	fmt.Printf("\nVersions for file: %s\n", name)
	fmt.Printf("%-8s %-20s %-10s %-12s %s\n", "Version", "Timestamp", "Size", "Hash", "Comment")
	fmt.Printf("%-8s %-20s %-10s %-12s %s\n", "-------", "----------", "----", "----", "-------")
	for _, rec := range records {
		ts := time.Unix(rec.Timestamp, 0).Format("2006-01-02 15:04")
		label := rec.Hash
		if len(label) > 12 {
			label = label[:12]
		}
		fmt.Printf("%-8d %-20s %-10d %-12s %s\n", rec.Version, ts, rec.Size, label, rec.Comment)
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
