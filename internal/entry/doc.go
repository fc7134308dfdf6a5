// Package entry implements the entry trampoline: the single forwarding
// function a host calls to hand control to a module's application object.
//
// The trampoline owns nothing beyond the one application it constructs. It
// neither inspects nor rewrites the arguments going in or the exit code coming
// out, and it keeps no state between calls.
package entry
