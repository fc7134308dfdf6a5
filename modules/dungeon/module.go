package dungeon

import (
	dungeonapp "github.com/vk/dungeon/internal/dungeon"
	"github.com/vk/dungeon/internal/entry"
	"github.com/vk/dungeon/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Descriptor returns the Dungeon module's static metadata.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name:        "Dungeon",
		Vendor:      "Copyright (C) 2002-2011 by The PixelLight Team",
		License:     "GNU Lesser General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version",
		Description: "PixelLight dungeon demo",
		Version:     "1.0.0",
	}
}

func newApplication() entry.Application {
	return dungeonapp.New()
}

// Register registers the module with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Registration{
		Descriptor: Descriptor(),
		Entry:      entry.Trampoline(newApplication),
	})
}
