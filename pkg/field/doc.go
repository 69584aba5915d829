// Package field implements a labeled text-input field: a value controller that
// owns the display value and a stable identifier, and a transform pipeline that
// rewrites every edit before it is committed and reported to the owner.
//
// A Field is driven by two kinds of events. Update re-applies caller
// configuration (a re-render) and HandleChange processes an edit coming from
// whatever primitive is displaying the field. Renderers in pkg/renderers turn
// the View snapshot into HTML or terminal output.
//
// A Field is not safe for concurrent use. Callers dispatch events from a single
// goroutine, the same way UI toolkits deliver input.
package field
