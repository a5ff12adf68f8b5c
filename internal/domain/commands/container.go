package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []interface{}{
		NewResolveCommand,
		NewPushCommand,
		NewAnnotateCommand,
		NewInspectCommand,
		NewSquashCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []interface{}{
		func(impl *ResolveCommand) Resolve { return impl },
		func(impl *PushCommand) Push { return impl },
		func(impl *AnnotateCommand) Annotate { return impl },
		func(impl *InspectCommand) Inspect { return impl },
		func(impl *SquashCommand) Squash { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
