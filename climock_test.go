package embeddedcli

import (
	"strings"
	"testing"
)

// mockCommand is one dispatched command as seen by the host.
type mockCommand struct {
	Name string
	Args string
}

// termMock plays the host side of a session: it records every byte the
// engine writes and replays operator keystrokes byte by byte.
type termMock struct {
	cli *Cli
	raw strings.Builder

	// commands received through the OnCommand fallback.
	commands []mockCommand
	// known commands received through binding handlers.
	known []mockCommand
}

func newTermMock(cli *Cli) *termMock {
	m := &termMock{cli: cli}
	cli.WriteChar = func(b byte) { m.raw.WriteByte(b) }
	cli.OnCommand = func(_ *Cli, cmd Command) {
		m.commands = append(m.commands, mockCommand{Name: string(cmd.Name), Args: string(cmd.Args)})
	}
	return m
}

func (m *termMock) addCommandBinding(t *testing.T, name, help string) {
	t.Helper()
	err := m.cli.AddBinding(Binding{
		Name: name,
		Help: help,
		Handler: HandlerFunc(func(_ *Cli, args []byte) {
			m.known = append(m.known, mockCommand{Name: name, Args: string(args)})
		}),
	})
	if err != nil {
		t.Fatalf("AddBinding(%q): %v", name, err)
	}
}

func (m *termMock) sendStr(s string) {
	for i := 0; i < len(s); i++ {
		m.cli.ReceiveChar(s[i])
	}
}

func (m *termMock) sendLine(s string) {
	m.sendStr(s + "\n")
}

func (m *termMock) clear() {
	m.raw.Reset()
}

func (m *termMock) rawOutput() string {
	return m.raw.String()
}

// output renders the raw byte stream on an emulated dumb terminal: \b moves
// the cursor left, \r returns it to column zero, and writes overwrite.
// Invitations and trailing blanks are stripped, so the result is what an
// operator would actually see.
func (m *termMock) output() string {
	var lines []string
	line := []byte{}
	col := 0
	endLine := func() {
		s := strings.TrimPrefix(string(line), defaultInvitation)
		lines = append(lines, strings.TrimRight(s, " "))
		line = line[:0]
		col = 0
	}
	raw := m.raw.String()
	for i := 0; i < len(raw); i++ {
		switch b := raw[i]; b {
		case '\n':
			endLine()
		case '\r':
			col = 0
		case '\b':
			if col > 0 {
				col--
			}
		default:
			for col >= len(line) {
				line = append(line, ' ')
			}
			line[col] = b
			col++
		}
	}
	endLine()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\r\n")
}
