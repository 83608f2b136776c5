package log

import (
	"fmt"
	"os"
	"time"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/engine"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/middleware"
)

// Command shows the full history across all tracked files
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "log" }

// Usage string
func (c *Command) Usage() string { return "log" }

// Short description
func (c *Command) Description() string { return "Show the full version history" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return `Show every check-in across all tracked files, newest first,
with the running total of recorded versions.`
}

// Optional aliases
func (c *Command) Aliases() []string { return nil }

// One-letter shortcut
func (c *Command) Short() string { return "" }

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

	if len(eng.Repo.History) == 0 {
		fmt.Println("No versions recorded yet.")
		return nil
	}

	for _, rec := range eng.Repo.History {
		ts := time.Unix(rec.Timestamp, 0).Format("2006-01-02 15:04:05")
		fmt.Printf("%s  %s v%d  (%d bytes)  %s\n", ts, rec.Filename, rec.Version, rec.Size, rec.Comment)
	}
	fmt.Printf("\nTotal versions: %d\n", eng.Repo.TotalVersions)
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
