package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// AnnotateController handles the "annotate" subcommand.
type AnnotateController struct {
	command commands.Annotate
}

// NewAnnotateController creates a new AnnotateController.
func NewAnnotateController(command commands.Annotate) *AnnotateController {
	return &AnnotateController{command: command}
}

// GetBind returns the Cobra command metadata for the annotate controller.
func (it *AnnotateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "annotate <message-file> <hash>",
		Short: "Record the originating commit in a commit message",
		Long: `Append a "^-- <subdir> <hash>" trailer to a commit message file.

Without --subdir the trailer refers to the top repository.`,
		Args: cobra.ExactArgs(2), //nolint:mnd // message file and hash
	}
}

// Execute edits the message file in place.
func (it *AnnotateController) Execute(cmd *cobra.Command, args []string) error {
	subdir, _ := cmd.Flags().GetString("subdir")
	return it.command.Execute(context.Background(), commands.AnnotateOptions{
		MessageFile: args[0],
		Subdir:      subdir,
		Hash:        args[1],
	})
}

// AddFlags adds the annotate-specific flags to the given Cobra command.
func (it *AnnotateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("subdir", "", "Submodule path the commit comes from (default: the top repository)")
}
