// Package hal provides byte-transport adapters that connect an embedded-cli
// engine to a host terminal or to microcontroller peripherals. The engine
// itself never touches hardware; these adapters move bytes between it and
// the outside world.
package hal

import "io"

// Serial is the transport surface both adapters share: Write and Close.
// The demo hosts use the concrete adapters and send engine output through
// their WriteByte method; input arrives transport-specifically (file reads on
// a host, Pump on a microcontroller).
type Serial interface {
	io.Writer
	Close() error
}
