package middleware

import (
	"fmt"
	"os"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/cli"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
)

// WithRepoCheck ensures a repository exists in the working directory before
// running the command.
func WithRepoCheck() cli.Middleware {
	return func(cmd cli.Command) cli.Command {
		return &cli.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *cli.Context) error {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to determine working directory: %w", err)
				}
				if !repo.ExistsAt(cwd) {
					return fmt.Errorf("no repository found, use 'init' to create one")
				}
				return cmd.Run(ctx)
			},
		}
	}
}
