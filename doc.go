// Package embeddedcli implements an interactive command-line shell for
// resource-constrained targets that talk to an operator over a byte-oriented
// transport (UART, USB-CDC, telnet).
//
// The engine ingests raw bytes one at a time, edits an in-memory input line,
// dispatches recognized commands to registered handlers and renders echoes,
// prompts and asynchronous prints back over the same transport without
// garbling the live input line. All byte storage is carved from a single
// buffer and the binding table is allocated once, both at construction; after
// that the engine allocates nothing.
//
// The engine is single-threaded and cooperative. ReceiveChar only pushes into
// a lock-free SPSC FIFO and may be called from an interrupt handler or a
// separate reader goroutine. Process drains the FIFO, mutates all other state
// and invokes handlers, and must be driven from one task context.
package embeddedcli
