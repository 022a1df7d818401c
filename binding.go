package embeddedcli

import "fmt"

// Handler executes a bound command. args is the remainder of the submitted
// line after the command name: raw bytes, or a token blob when the binding
// sets TokenizeArgs. The slice aliases the engine's edit buffer and is only
// valid for the duration of the call.
type Handler interface {
	Run(cli *Cli, args []byte)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(cli *Cli, args []byte)

// Run calls f.
func (f HandlerFunc) Run(cli *Cli, args []byte) { f(cli, args) }

// Binding associates a command name with a handler.
type Binding struct {
	// Name is the command name. Names are unique within an engine.
	Name string
	// Help is printed by the built-in help command. May be empty.
	Help string
	// TokenizeArgs selects whether the argument bytes are tokenized in
	// place before the handler runs.
	TokenizeArgs bool
	// Handler runs the command. When nil, a matched command falls through
	// to the engine's OnCommand callback.
	Handler Handler
}

// helpBinding is the built-in help command. It is always logically present
// at the head of the registry enumeration order and cannot be shadowed.
var helpBinding = Binding{
	Name: "help",
	Help: "Print list of commands",
}

// AddBinding appends a binding to the registry. Bindings cannot be removed
// or reordered; insertion order is the enumeration order for help and
// completion.
func (c *Cli) AddBinding(b Binding) error {
	if b.Name == "" {
		return fmt.Errorf("cli: empty command name")
	}
	if b.Name == helpBinding.Name {
		return fmt.Errorf("cli: %q is reserved", b.Name)
	}
	for i := range c.bindings {
		if c.bindings[i].Name == b.Name {
			return fmt.Errorf("cli: duplicate command %q", b.Name)
		}
	}
	if len(c.bindings) == cap(c.bindings) {
		return fmt.Errorf("cli: binding table full (%d)", cap(c.bindings))
	}
	c.bindings = append(c.bindings, b)
	return nil
}

// lookupBinding finds a binding by name, by linear scan in insertion order.
func (c *Cli) lookupBinding(name []byte) *Binding {
	for i := range c.bindings {
		if bytesEqualString(name, c.bindings[i].Name) {
			return &c.bindings[i]
		}
	}
	return nil
}

// eachBinding visits the built-in help binding and then every registered
// binding, in enumeration order, until fn returns false.
func (c *Cli) eachBinding(fn func(b *Binding) bool) {
	if !fn(&helpBinding) {
		return
	}
	for i := range c.bindings {
		if !fn(&c.bindings[i]) {
			return
		}
	}
}

func bytesEqualString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}

func bytesHavePrefix(s string, prefix []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
