//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package hal

import "golang.org/x/sys/unix"

const (
	getAttrIOCTL    = unix.TIOCGETA
	setAttrNowIOCTL = unix.TIOCSETA
)
