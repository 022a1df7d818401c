package embeddedcli

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRequiredSize(t *testing.T) {
	if got, want := RequiredSize(nil), 64+128+64+64; got != want {
		t.Fatalf("RequiredSize(nil) = %d, want %d", got, want)
	}

	cfg := &Config{RxBufferSize: 16, TxBufferSize: 16, CmdBufferSize: 32, HistoryBufferSize: 32}
	if got, want := RequiredSize(cfg), 96; got != want {
		t.Fatalf("RequiredSize() = %d, want %d", got, want)
	}
}

func TestNewRejectsSmallBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buffer = make([]byte, 16)

	cli, err := New(cfg)
	if cli != nil || !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("New() = %v, %v, want nil, ErrBufferTooSmall", cli, err)
	}
}

func TestNewFromCallerBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buffer = make([]byte, 1024)

	cli, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := newTermMock(cli)

	m.sendLine("set led 1 1")
	cli.Process()

	want := []mockCommand{{Name: "set", Args: "led 1 1"}}
	if diff := cmp.Diff(want, m.commands); diff != "" {
		t.Fatalf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestArenaSlicesDoNotOverlap(t *testing.T) {
	a := arena{buf: make([]byte, 32)}
	x := a.take(8)
	y := a.take(8)

	for i := range x {
		x[i] = 0xaa
	}
	for _, b := range y {
		if b != 0 {
			t.Fatalf("writing the first slice dirtied the second")
		}
	}
	if got := a.remaining(); got != 16 {
		t.Fatalf("remaining() = %d, want 16", got)
	}

	// A full slice cannot grow into its neighbour.
	x = append(x[:0], make([]byte, 9)...)
	if &x[0] == &a.buf[0] {
		t.Fatalf("append grew a carved slice in place past its section")
	}
}

func TestCustomInvitation(t *testing.T) {
	cli, err := New(&Config{Invitation: "$ "})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := newTermMock(cli)

	m.sendLine("")
	cli.Process()

	if got, want := m.rawOutput(), "\r\n$ "; got != want {
		t.Fatalf("raw output %q, want %q", got, want)
	}
}
