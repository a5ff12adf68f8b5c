package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// SquashController handles the "squash" subcommand.
type SquashController struct {
	command commands.Squash
}

// NewSquashController creates a new SquashController.
func NewSquashController(command commands.Squash) *SquashController {
	return &SquashController{command: command}
}

// GetBind returns the Cobra command metadata for the squash controller.
func (it *SquashController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "squash <revision>...",
		Short: "Print the combined message of several commits",
		Long: `Join the messages of the given commits into one, keeping every
provenance trailer. Messages of plain submodule bumps are put last.`,
		Args: cobra.MinimumNArgs(1),
	}
}

// Execute prints the joined message.
func (it *SquashController) Execute(cmd *cobra.Command, args []string) error {
	message, err := it.command.Execute(context.Background(), commands.SquashOptions{
		RepoDir:   repoDir(cmd),
		Revisions: args,
	})
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(message)
	return err
}

// AddFlags is a no-op, squash has no flags of its own.
func (it *SquashController) AddFlags(_ *cobra.Command) {}
