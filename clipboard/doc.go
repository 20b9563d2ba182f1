// Package clipboard writes text to the system clipboard.
//
// A Writer is the only capability the converter needs. Backends are the
// OSC 52 terminal escape (works over SSH and inside tmux), an external copy
// tool such as pbcopy or wl-copy fed on stdin, a chain that falls through
// unsupported backends, and a disabled backend. Every failure is a
// *ClipboardError whose cause matches ErrUnsupported or ErrDenied.
package clipboard
