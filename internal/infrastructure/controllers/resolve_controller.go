package controllers

import (
	"context"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moroten/git-toprepo/internal/domain/commands"
	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// resolutionView is what the resolve subcommand prints.
type resolutionView struct {
	Repo     string `yaml:"repo"`
	Name     string `yaml:"name"`
	Path     string `yaml:"path,omitempty"`
	Enabled  bool   `yaml:"enabled"`
	FetchURL string `yaml:"fetch_url"`
	PushURL  string `yaml:"push_url"`
}

// ResolveController handles the "resolve" subcommand.
type ResolveController struct {
	command      commands.Resolve
	loadSettings entities.SettingsLoader
}

// NewResolveController creates a new ResolveController.
func NewResolveController(command commands.Resolve, loadSettings entities.SettingsLoader) *ResolveController {
	return &ResolveController{command: command, loadSettings: loadSettings}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolve <remote>",
		Short: "Show which repository a remote refers to",
		Long: `Resolve a remote name or URL to a repository of the toprepo.

The remote can be "origin", a full fetch or push URL, a trailing part of one
such as "org/repo", or a URL as written in .gitmodules.`,
		Args: cobra.ExactArgs(1),
	}
}

// Execute prints the resolution as YAML.
func (it *ResolveController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, it.loadSettings)
	if err != nil {
		return err
	}
	revision, _ := cmd.Flags().GetString("revision")

	resolution, err := it.command.Execute(context.Background(), settings, commands.ResolveOptions{
		RepoDir:  repoDir(cmd),
		Remote:   args[0],
		Revision: revision,
	})
	if err != nil {
		return err
	}

	view := resolutionView{
		Repo:     resolution.Identity.String(),
		Name:     resolution.Identity.String(),
		Enabled:  true,
		FetchURL: resolution.FetchURL,
		PushURL:  resolution.PushURL,
	}
	if resolution.Repo != nil {
		view.Name = resolution.Repo.Name
		view.Enabled = resolution.Repo.Enabled
	}
	if resolution.Module != nil {
		view.Path = resolution.Module.Path
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	if encodeErr := encoder.Encode(view); encodeErr != nil {
		return encodeErr
	}
	return encoder.Close()
}

// AddFlags adds the resolve-specific flags to the given Cobra command.
func (it *ResolveController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("revision", "", "Revision to read .gitmodules from (default: HEAD)")
}
