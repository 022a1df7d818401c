//go:build !tinygo && !windows

package hal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// HostSerial adapts a pair of files (typically a tty) to the engine. When
// the input side is a terminal it is switched into raw mode, so bytes arrive
// one keystroke at a time with no local echo; the engine does its own
// echoing. Close restores the saved terminal attributes.
type HostSerial struct {
	in    *os.File
	out   *os.File
	saved *unix.Termios
}

// OpenHostSerial wraps the process's stdin and stdout.
func OpenHostSerial() (*HostSerial, error) {
	return NewHostSerial(os.Stdin, os.Stdout)
}

// NewHostSerial wraps an explicit file pair.
func NewHostSerial(in, out *os.File) (*HostSerial, error) {
	s := &HostSerial{in: in, out: out}
	if !isatty.IsTerminal(in.Fd()) {
		return s, nil
	}

	fd := int(in.Fd())
	old, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	saved := *old
	s.saved = &saved

	raw := *old
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Oflag &^= unix.OPOST
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, setAttrNowIOCTL, &raw); err != nil {
		return nil, err
	}
	return s, nil
}

// Read blocks for at least one input byte.
func (s *HostSerial) Read(p []byte) (int, error) {
	return s.in.Read(p)
}

func (s *HostSerial) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// WriteByte sends one engine output byte.
func (s *HostSerial) WriteByte(b byte) error {
	var buf [1]byte
	buf[0] = b
	_, err := s.out.Write(buf[:])
	return err
}

// Close restores the terminal attributes saved by NewHostSerial.
func (s *HostSerial) Close() error {
	if s.saved == nil {
		return nil
	}
	return unix.IoctlSetTermios(int(s.in.Fd()), setAttrNowIOCTL, s.saved)
}
