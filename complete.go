package embeddedcli

// autocomplete handles a TAB press. The current edit buffer is the prefix;
// candidates are the bindings (built-in help included) whose name starts
// with it, in registry order.
func (c *Cli) autocomplete() {
	prefix := c.cmd[:c.cmdLen]

	count := 0
	common := ""
	c.eachBinding(func(b *Binding) bool {
		if !bytesHavePrefix(b.Name, prefix) {
			return true
		}
		if count == 0 {
			common = b.Name
		} else {
			common = commonPrefix(common, b.Name)
		}
		count++
		return true
	})
	if count == 0 {
		return
	}

	if count == 1 {
		// Sole candidate: take the whole name plus a separating
		// space, echoing only the added bytes.
		if len(common)+1 > len(c.cmd)-1 {
			return
		}
		c.writeString(common[c.cmdLen:])
		c.writeByte(' ')
		copy(c.cmd, common)
		c.cmd[len(common)] = ' '
		c.cmdLen = len(common) + 1
		c.flags |= flagLastAutocompleted
		return
	}

	if len(common) > c.cmdLen {
		// Extend to the longest common prefix, no list.
		if len(common) > len(c.cmd)-1 {
			return
		}
		c.writeString(common[c.cmdLen:])
		copy(c.cmd, common)
		c.cmdLen = len(common)
		c.flags |= flagLastAutocompleted
		return
	}

	// Nothing to extend: erase the echoed input, list every candidate on
	// its own line, then redraw the invitation and the untouched line.
	for i := 0; i < c.cmdLen; i++ {
		c.writeString("\b \b")
	}
	c.eachBinding(func(b *Binding) bool {
		if bytesHavePrefix(b.Name, prefix) {
			c.writeString(b.Name)
			c.writeString("\r\n")
		}
		return true
	})
	c.writeString(c.invitation)
	c.writeBytes(c.cmd[:c.cmdLen])
	c.flags |= flagAutocompleteNewlines
}
