package entities

import "github.com/spf13/cobra"

// ControllerBind holds the Cobra metadata of a subcommand.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
}

// Controller is a subcommand of the toprepo CLI.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
	AddFlags(cmd *cobra.Command)
}
