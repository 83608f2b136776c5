package main

import (
	"fmt"
	"os"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	_ "github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/commands"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: vcs <command> [args...]")
		fmt.Println("Available commands:")
		for _, cmd := range cli.AllCommands() {
			fmt.Printf("  %s: %s\n", cmd.Usage(), cmd.Description())
		}
		os.Exit(1)
	}

	cmdName := os.Args[1]
	cmd, ok := cli.GetCommand(cmdName)
	if !ok {
		fmt.Printf("Unknown command: %s\n", cmdName)
		os.Exit(1)
	}

	ctx := &cli.Context{
		Args: os.Args[2:],
	}

	if err := cmd.Run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
