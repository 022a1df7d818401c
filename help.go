package embeddedcli

// runHelp implements the built-in help command. With no arguments it lists
// every binding in registry order, itself included; with one argument it
// prints that command's help.
func (c *Cli) runHelp(args []byte) {
	blob := TokenizeArgs(args)
	switch GetTokenCount(blob) {
	case 0:
		c.eachBinding(func(b *Binding) bool {
			c.writeBindingHelp(b)
			return true
		})
	case 1:
		name := GetToken(blob, 0)
		var found *Binding
		c.eachBinding(func(b *Binding) bool {
			if bytesEqualString(name, b.Name) {
				found = b
				return false
			}
			return true
		})
		if found == nil {
			c.writeString("Unknown command\r\n")
			return
		}
		if found.Help == "" {
			c.writeString("No help is available for command \"")
			c.writeString(found.Name)
			c.writeString("\"\r\n")
			return
		}
		c.writeBindingHelp(found)
	default:
		c.writeString("Command \"help\" receives one or zero arguments\r\n")
	}
}

func (c *Cli) writeBindingHelp(b *Binding) {
	c.writeString(b.Name)
	c.writeString("\r\n")
	if b.Help != "" {
		c.writeString("\t")
		c.writeString(b.Help)
		c.writeString("\r\n")
	}
}
