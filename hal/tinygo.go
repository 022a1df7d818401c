//go:build tinygo

package hal

import (
	"machine"

	embeddedcli "github.com/1saeed/embedded-cli"
)

// MachineSerial adapts a machine.Serialer (USB-CDC or a hardware UART) to
// the engine.
type MachineSerial struct {
	port machine.Serialer
}

// NewMachineSerial wraps a configured serial port, e.g. machine.Serial.
func NewMachineSerial(port machine.Serialer) *MachineSerial {
	return &MachineSerial{port: port}
}

// Pump drains every pending input byte into the engine's RX FIFO. Call it
// from the main loop or a UART interrupt bottom half, then call Process
// from task context.
func (s *MachineSerial) Pump(cli *embeddedcli.Cli) {
	for s.port.Buffered() > 0 {
		b, err := s.port.ReadByte()
		if err != nil {
			return
		}
		cli.ReceiveChar(b)
	}
}

func (s *MachineSerial) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

// WriteByte sends one engine output byte.
func (s *MachineSerial) WriteByte(b byte) error {
	return s.port.WriteByte(b)
}

func (s *MachineSerial) Close() error {
	return nil
}
