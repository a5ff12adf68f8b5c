package controllers

import (
	"context"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
)

type messageInfoView struct {
	Hash    string `yaml:"hash,omitempty"`
	TopHash string `yaml:"top_hash,omitempty"`
	Topic   string `yaml:"topic,omitempty"`
}

// InspectController handles the "inspect" subcommand.
type InspectController struct {
	command commands.Inspect
}

// NewInspectController creates a new InspectController.
func NewInspectController(command commands.Inspect) *InspectController {
	return &InspectController{command: command}
}

// GetBind returns the Cobra command metadata for the inspect controller.
func (it *InspectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inspect [revision]",
		Short: "Show the provenance trailers of a commit",
		Args:  cobra.MaximumNArgs(1),
	}
}

// Execute prints the trailers found as YAML.
func (it *InspectController) Execute(cmd *cobra.Command, args []string) error {
	revision := "HEAD"
	if len(args) > 0 {
		revision = args[0]
	}
	subdir, _ := cmd.Flags().GetString("subdir")

	info, err := it.command.Execute(context.Background(), commands.InspectOptions{
		RepoDir:  repoDir(cmd),
		Revision: revision,
		Subdir:   subdir,
	})
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	if encodeErr := encoder.Encode(messageInfoView{
		Hash:    info.Hash,
		TopHash: info.TopHash,
		Topic:   info.Topic,
	}); encodeErr != nil {
		return encodeErr
	}
	return encoder.Close()
}

// AddFlags adds the inspect-specific flags to the given Cobra command.
func (it *InspectController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("subdir", "", "Also look up the commit of this submodule path")
}
