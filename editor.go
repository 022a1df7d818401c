package embeddedcli

import "bytes"

// processByte advances the editor state machine by one RX byte.
func (c *Cli) processByte(b byte) {
	wasCR := c.prevCR
	c.prevCR = b == '\r'

	switch c.state {
	case stateEscapeSeen:
		if b == '[' {
			c.state = stateCsiSeen
		} else {
			c.state = stateNormal
		}
		return
	case stateCsiSeen:
		// The sequence ends on its final byte; parameter and
		// intermediate bytes are swallowed.
		if b >= 0x40 && b <= 0x7e {
			c.state = stateNormal
		}
		return
	case stateOverflowDropping:
		if b == '\r' || b == '\n' {
			if b == '\n' && wasCR {
				return
			}
			// The over-long line is discarded, not dispatched.
			c.cmdLen = 0
			c.state = stateNormal
			c.flags &^= flagOverflow
			c.writeString("\r\n")
			c.writeString(c.invitation)
		}
		return
	}

	switch {
	case b == '\r' || b == '\n':
		if b == '\n' && wasCR {
			// Second byte of a CRLF pair, already submitted.
			return
		}
		c.submit()
	case b == '\b' || b == 0x7f:
		c.backspace()
	case b == '\t':
		c.autocomplete()
	case b == 0x1b:
		c.state = stateEscapeSeen
	case b >= 0x20 && b <= 0x7e:
		if c.cmdLen < len(c.cmd)-1 {
			c.cmd[c.cmdLen] = b
			c.cmdLen++
			c.flags &^= flagLastAutocompleted
			c.writeByte(b)
		} else {
			c.flags |= flagOverflow
			c.state = stateOverflowDropping
		}
	default:
		// Other control bytes are ignored.
	}
}

func (c *Cli) backspace() {
	if c.cmdLen == 0 {
		return
	}
	c.cmdLen--
	c.writeString("\b \b")
}

// submit terminates the current line, dispatches it and starts a fresh one.
func (c *Cli) submit() {
	c.writeString("\r\n")

	line := c.cmd[:c.cmdLen]
	for len(line) > 0 && line[0] == ' ' {
		line = line[1:]
	}
	if len(line) == 0 {
		c.cmdLen = 0
		c.flags &^= flagAutocompleteNewlines
		c.writeString(c.invitation)
		return
	}

	// Keep the submitted line for (future) recall.
	c.histLen = copy(c.history, line)

	var name, args []byte
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		name, args = line[:i], line[i+1:]
	} else {
		name = line
	}

	c.flags |= flagPrintingInProgress
	c.dispatch(name, args)
	c.flags &^= flagPrintingInProgress

	c.cmdLen = 0
	c.flags &^= flagAutocompleteNewlines
	c.writeString(c.invitation)
}

func (c *Cli) dispatch(name, args []byte) {
	if b := c.lookupBinding(name); b != nil {
		if b.Handler != nil {
			a := args
			if b.TokenizeArgs {
				a = TokenizeArgs(args)
			}
			b.Handler.Run(c, a)
			return
		}
		// A binding without a handler falls through to the host
		// callback.
		if c.OnCommand != nil {
			c.OnCommand(c, Command{Name: name, Args: args})
		}
		return
	}
	if bytesEqualString(name, helpBinding.Name) {
		c.runHelp(args)
		return
	}
	if c.OnCommand != nil {
		c.OnCommand(c, Command{Name: name, Args: args})
		return
	}
	c.writeString("Unknown command \"")
	c.writeBytes(name)
	c.writeString("\"\r\n")
}
