//go:build !tinygo && !windows

// Command uartcli runs the embedded-cli engine over the controlling
// terminal, standing in for a device's UART during development.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	embeddedcli "github.com/1saeed/embedded-cli"
	"github.com/1saeed/embedded-cli/hal"
)

func main() {
	var invitation string
	flag.StringVar(&invitation, "invitation", "> ", "Prompt string.")
	flag.Parse()

	if err := run(invitation); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(invitation string) error {
	serial, err := hal.OpenHostSerial()
	if err != nil {
		return err
	}
	defer serial.Close()

	cli, err := embeddedcli.New(&embeddedcli.Config{Invitation: invitation})
	if err != nil {
		return err
	}
	cli.WriteChar = func(b byte) {
		_ = serial.WriteByte(b)
	}
	if err := registerCommands(cli, newDemoState()); err != nil {
		return err
	}

	done := make(chan struct{})
	err = cli.AddBinding(embeddedcli.Binding{
		Name: "exit",
		Help: "Leave the shell",
		Handler: embeddedcli.HandlerFunc(func(c *embeddedcli.Cli, _ []byte) {
			close(done)
		}),
	})
	if err != nil {
		return err
	}

	// Reader goroutine plays the ISR role: it only pushes into the RX
	// FIFO. The main loop below is the task context that runs Process.
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := serial.Read(buf)
			for i := 0; i < n; i++ {
				cli.ReceiveChar(buf[i])
			}
			if err != nil {
				return
			}
		}
	}()

	cli.Print("embedded-cli demo, type `help`")
	tick := time.NewTicker(2 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-done:
			cli.Process()
			return nil
		case <-tick.C:
			cli.Process()
		}
	}
}
