package app

import (
	"github.com/vk/dungeon/internal/registry"
	"github.com/vk/dungeon/modules/dungeon"
)

// coreModules is the definitive list of all modules that are compiled into
// the host binary.
var coreModules = []registry.Module{
	&dungeon.Module{},
}
