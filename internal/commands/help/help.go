package help

import (
	"fmt"
	"strings"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
)

// Command shows help information for commands
type Command struct{}

// Canonical name
func (c *Command) Name() string { return "help" }

// Usage string
func (c *Command) Usage() string { return "help [command]" }

// Short description
func (c *Command) Description() string { return "Show help for commands" }

// Detailed description
func (c *Command) DetailedDescription() string {
	return "Display detailed help information for a specific command, or list all commands if none is provided."
}

// Aliases
func (c *Command) Aliases() []string { return []string{"h", "?"} }

// Shortcut
func (c *Command) Short() string { return "" }

// Run executes the help command
func (c *Command) Run(ctx *cli.Context) error {
	if len(ctx.Args) > 0 {
		return commandHelp(strings.ToLower(ctx.Args[0]))
	}
	return listAllCommands()
}

// commandHelp shows detailed help for a single command
func commandHelp(name string) error {
	cmd, ok := cli.GetCommand(name)
	if !ok {
		fmt.Printf("Unknown command: %s\n", name)
		return nil
	}

	if usage := cmd.Usage(); usage != "" {
		fmt.Printf("Usage: %s\n\n", usage)
	}
	fmt.Printf("%s\n", cmd.DetailedDescription())

	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Printf("\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	return nil
}

// listAllCommands lists all registered commands
func listAllCommands() error {
	fmt.Println("vcs - simple file versioning")
	fmt.Println()
	for _, cmd := range cli.AllCommands() {
		fmt.Printf("  %-28s %s\n", cmd.Usage(), cmd.Description())
	}
	fmt.Println("\nUse 'help <command>' to see detailed usage of a specific command.")
	return nil
}

// Register command
func init() {
	cli.RegisterCommand(&Command{})
}
