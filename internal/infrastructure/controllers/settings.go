package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// loadSettings reads the file named by --config, or the first config file
// found in the usual locations.
func loadSettings(cmd *cobra.Command, load entities.SettingsLoader) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			return nil, err
		}
	}

	logger.Debugf("Using config file: %s", cfgPath)
	return load(cfgPath)
}

// repoDir returns the directory given with --repo.
func repoDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("repo")
	if dir == "" {
		return "."
	}
	return dir
}
