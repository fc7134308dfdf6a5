package registry

import (
	"fmt"
	"log/slog"
)

// EntryFunc is the documented entry contract of a module. The host passes
// the invoking filename and the command-line arguments and uses the returned
// integer as the process exit code.
type EntryFunc func(filename string, args []string) int

// Registration pairs a module's descriptor with its entry point.
type Registration struct {
	Descriptor Descriptor
	Entry      EntryFunc
}

// Register records a module in the catalog. Registering an invalid
// descriptor, a nil entry, a duplicate name or registering into a sealed
// registry are programmer errors and panic.
func (r *Registry) Register(reg *Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg == nil {
		panic("registry: nil registration")
	}
	if r.sealed {
		panic(fmt.Sprintf("registry: cannot register module '%s': registry is sealed", reg.Descriptor.Name))
	}
	if err := reg.Descriptor.Validate(); err != nil {
		panic(err)
	}
	if reg.Entry == nil {
		panic(fmt.Sprintf("module '%s' registered without an entry function", reg.Descriptor.Name))
	}
	if _, exists := r.modules[reg.Descriptor.Name]; exists {
		panic(fmt.Sprintf("module with name '%s' already registered", reg.Descriptor.Name))
	}

	slog.Debug("Registering module.", "name", reg.Descriptor.Name, "vendor", reg.Descriptor.Vendor)
	r.modules[reg.Descriptor.Name] = &Registration{
		Descriptor: reg.Descriptor,
		Entry:      reg.Entry,
	}
}
