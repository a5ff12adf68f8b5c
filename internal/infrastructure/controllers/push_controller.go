package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// PushController handles the "push" subcommand.
type PushController struct {
	command      commands.Push
	loadSettings entities.SettingsLoader
}

// NewPushController creates a new PushController.
func NewPushController(command commands.Push, loadSettings entities.SettingsLoader) *PushController {
	return &PushController{command: command, loadSettings: loadSettings}
}

// GetBind returns the Cobra command metadata for the push controller.
func (it *PushController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "push <remote> <refspec>...",
		Short: "Push refs to the repository a remote refers to",
		Long: `Push refs to the push URL of the repository the remote resolves to.

A ref spec is either "local:remote", taken verbatim, or a single branch name
which is pushed to the branch of the same name.`,
		Args: cobra.MinimumNArgs(2), //nolint:mnd // remote and at least one ref spec
	}
}

// Execute pushes, or only prints the plan with --dry-run.
func (it *PushController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.loadSettings)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	revision, _ := cmd.Flags().GetString("revision")

	plan, err := it.command.Execute(context.Background(), settings, commands.PushOptions{
		RepoDir:  repoDir(cmd),
		Remote:   args[0],
		Revision: revision,
		RefSpecs: args[1:],
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	for _, spec := range plan.RefSpecs {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", plan.Resolution.Identity, plan.RemoteURL, spec)
	}
	return nil
}

// AddFlags adds the push-specific flags to the given Cobra command.
func (it *PushController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("revision", "", "Revision to read .gitmodules from (default: HEAD)")
}
