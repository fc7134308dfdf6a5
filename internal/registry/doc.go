// Package registry provides the central "glue" for the module system.
//
// The Registry is the host's module catalog. Every compiled-in module
// registers a Descriptor (the static metadata the host reads before any
// module code executes) together with the EntryFunc the host calls to hand
// off control. It also holds the parsed HCL manifests that describe the same
// modules from outside of Go.
//
// A Registry moves through a fixed lifecycle: it is populated while loading,
// sealed before use (read-only from then on) and cleared on unload. During
// application startup the registry is validated against the manifests to
// ensure that the Go code and the public-facing descriptions are in sync.
package registry
