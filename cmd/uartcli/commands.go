package main

import (
	"fmt"

	embeddedcli "github.com/1saeed/embedded-cli"
)

// demoState is the mutable world the demo commands act on.
type demoState struct {
	leds   [4]bool
	params map[string]string
}

func newDemoState() *demoState {
	return &demoState{params: make(map[string]string)}
}

// registerCommands installs the demo command set. Handlers close over the
// state; the engine itself stays stateless about the application.
func registerCommands(cli *embeddedcli.Cli, st *demoState) error {
	bindings := []embeddedcli.Binding{
		{
			Name:         "led",
			Help:         "led <n> <0|1>: switch an LED",
			TokenizeArgs: true,
			Handler: embeddedcli.HandlerFunc(func(c *embeddedcli.Cli, args []byte) {
				if embeddedcli.GetTokenCount(args) != 2 {
					c.Print("usage: led <n> <0|1>")
					return
				}
				n := embeddedcli.GetToken(args, 0)
				v := embeddedcli.GetToken(args, 1)
				if len(n) != 1 || n[0] < '0' || n[0] > '3' {
					c.Print("led: index out of range")
					return
				}
				st.leds[n[0]-'0'] = len(v) == 1 && v[0] == '1'
				c.Print("ok")
			}),
		},
		{
			Name:         "get",
			Help:         "get <name>: read a parameter",
			TokenizeArgs: true,
			Handler: embeddedcli.HandlerFunc(func(c *embeddedcli.Cli, args []byte) {
				if embeddedcli.GetTokenCount(args) != 1 {
					c.Print("usage: get <name>")
					return
				}
				v, ok := st.params[string(embeddedcli.GetToken(args, 0))]
				if !ok {
					c.Print("get: no such parameter")
					return
				}
				c.Print(v)
			}),
		},
		{
			Name:         "set",
			Help:         "set <name> <value>: store a parameter",
			TokenizeArgs: true,
			Handler: embeddedcli.HandlerFunc(func(c *embeddedcli.Cli, args []byte) {
				if embeddedcli.GetTokenCount(args) != 2 {
					c.Print("usage: set <name> <value>")
					return
				}
				name := string(embeddedcli.GetToken(args, 0))
				st.params[name] = string(embeddedcli.GetToken(args, 1))
				c.Print("ok")
			}),
		},
		{
			Name: "echo",
			Help: "echo ...: print the arguments back",
			Handler: embeddedcli.HandlerFunc(func(c *embeddedcli.Cli, args []byte) {
				c.Print(string(args))
			}),
		},
	}

	for _, b := range bindings {
		if err := cli.AddBinding(b); err != nil {
			return fmt.Errorf("register %q: %w", b.Name, err)
		}
	}
	return nil
}
