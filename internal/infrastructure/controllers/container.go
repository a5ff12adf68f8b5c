package controllers

import (
	"go.uber.org/dig"

	"github.com/moroten/git-toprepo/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	for _, constructor := range []interface{}{
		NewResolveController,
		NewPushController,
		NewAnnotateController,
		NewInspectController,
		NewSquashController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	resolveController *ResolveController,
	pushController *PushController,
	annotateController *AnnotateController,
	inspectController *InspectController,
	squashController *SquashController,
) *[]entities.Controller {
	return &[]entities.Controller{
		resolveController,
		pushController,
		annotateController,
		inspectController,
		squashController,
	}
}
