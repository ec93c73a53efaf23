package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quark/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

// newLogger builds the command logger from the persistent flags.
func (f *rootFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}

	var human bool
	switch f.logFormat {
	case "", "human":
		human = true
	case "json":
		human = false
	default:
		return nil, newCommandError(
			"configure logging",
			fmt.Sprintf("log format %q", f.logFormat),
			fmt.Errorf("unsupported log format"),
			"Use --log-format human or --log-format json.",
		)
	}

	return logger.New(logger.Options{Level: level, HumanReadable: human, Writer: cmd.ErrOrStderr()})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quark",
		Short:         "Quark composes CSS utility classes and inline styles for components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "human", "Log output format (human|json)")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newConcernsCmd())
	cmd.AddCommand(newPlaygroundCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
