package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/woook/paneldump/cmd/paneldump/cmd/check"
	"github.com/woook/paneldump/cmd/paneldump/cmd/dump"
)

// CreateDumpCommand creates the dump command with app dependencies.
func (a *App) CreateDumpCommand() *cobra.Command {
	return dump.NewCommand(a)
}

// CreateCheckCommand creates the check command with app dependencies.
func (a *App) CreateCheckCommand() *cobra.Command {
	return check.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for paneldump CLI.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("paneldump version %s\n", a.version)
			fmt.Printf("commit: %s\n", a.commit)
			fmt.Printf("built: %s\n", a.date)
			fmt.Printf("built by: %s\n", a.builtBy)
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
