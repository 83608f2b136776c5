package cli

// Command represents a cli command
type Command interface {
	Name() string
	Usage() string
	Description() string
	DetailedDescription() string
	Aliases() []string
	Short() string
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args []string
}
