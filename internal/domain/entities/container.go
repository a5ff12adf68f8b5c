package entities

import (
	"go.uber.org/dig"
)

// SettingsLoader reads the settings stored at a path.
type SettingsLoader func(path string) (*Settings, error)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// the path itself is only known once a controller has parsed its flags
	return container.Provide(func() SettingsLoader {
		return NewSettings
	})
}
