package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/quark/internal/tui"
)

func newPlaygroundCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground [EXPR...]",
		Short: "Launch the interactive expression playground",
		Long:  `Launch a terminal UI that re-renders chain expressions as you type them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.newLogger(cmd)
			if err != nil {
				return err
			}
			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("launch playground", "stdout is not a terminal", fmt.Errorf("interactive mode requires a TTY"), "Use 'quark render' for non-interactive output.")
			}

			log.Info("launching playground")
			model := tui.NewModel(strings.Join(args, " "), log.With("command", "playground"))
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				log.Error(err, "playground failed")
				return fmt.Errorf("failed to run playground: %w", err)
			}
			return nil
		},
	}

	return cmd
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
