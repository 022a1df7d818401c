//go:build tinygo && rp2040

// Command tinyterm-cli renders an embedded-cli session on an ILI9341 SPI
// display while taking keystrokes from the default serial port, the way a
// handheld with a local screen and a debug UART would.
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	embeddedcli "github.com/1saeed/embedded-cli"
	"github.com/1saeed/embedded-cli/hal"
)

var font = &proggy.TinySZ8pt7b

func main() {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})
	display := ili9341.NewSPI(machine.SPI1, machine.GP14, machine.GP13, machine.GP15)
	display.Configure(ili9341.Config{})

	terminal := tinyterm.NewTerminal(display)
	terminal.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: 10,
		FontOffset: 6,
	})

	serial := hal.NewMachineSerial(machine.Serial)

	cli := embeddedcli.NewDefault()
	var out [1]byte
	cli.WriteChar = func(b byte) {
		out[0] = b
		terminal.Write(out[:])
	}
	err := cli.AddBinding(embeddedcli.Binding{
		Name: "uptime",
		Help: "Print time since boot",
		Handler: embeddedcli.HandlerFunc(func(c *embeddedcli.Cli, _ []byte) {
			c.Print(time.Since(start).String())
		}),
	})
	if err != nil {
		for {
			time.Sleep(time.Second)
		}
	}

	cli.Print("embedded-cli on tinyterm, type `help`")
	for {
		serial.Pump(cli)
		cli.Process()
		terminal.Display()
		time.Sleep(50 * time.Millisecond)
	}
}

var start = time.Now()
