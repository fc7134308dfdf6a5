package entry

import "io"

// Application is the object a module hands control to.
type Application interface {
	Run(filename string, args []string) int
}

// Run constructs exactly one Application with newApp, invokes its Run once
// with filename and args unchanged and returns the result unmodified.
//
// If the application implements io.Closer it is closed when Run returns,
// including when Run panics. A close error does not change the exit code.
func Run(newApp func() Application, filename string, args []string) int {
	app := newApp()
	if c, ok := app.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	return app.Run(filename, args)
}

// Trampoline binds newApp into an entry function suitable for
// registry.Registration.Entry.
func Trampoline(newApp func() Application) func(filename string, args []string) int {
	return func(filename string, args []string) int {
		return Run(newApp, filename, args)
	}
}
