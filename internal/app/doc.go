// Package app contains the host runtime. It builds the module catalog,
// checks it against the module manifests and hands control to the selected
// module's entry point, decoupled from any specific entrypoint like a CLI.
package app
