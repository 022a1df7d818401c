//go:build tinygo

// Command uartcli runs the embedded-cli engine over the default serial
// port (USB-CDC on most boards).
package main

import (
	"machine"
	"time"

	embeddedcli "github.com/1saeed/embedded-cli"
	"github.com/1saeed/embedded-cli/hal"
)

func main() {
	serial := hal.NewMachineSerial(machine.Serial)

	cli := embeddedcli.NewDefault()
	cli.WriteChar = func(b byte) {
		_ = serial.WriteByte(b)
	}
	if err := registerCommands(cli, newDemoState()); err != nil {
		for {
			time.Sleep(time.Second)
		}
	}

	cli.Print("embedded-cli demo, type `help`")
	for {
		serial.Pump(cli)
		cli.Process()
		time.Sleep(2 * time.Millisecond)
	}
}
