package embeddedcli

import "sync/atomic"

// inputState is the line editor's parser state.
type inputState uint8

const (
	// stateNormal appends printable bytes and reacts to control bytes.
	stateNormal inputState = iota
	// stateEscapeSeen follows an ESC byte.
	stateEscapeSeen
	// stateCsiSeen is inside an ESC [ sequence, waiting for its final byte.
	stateCsiSeen
	// stateOverflowDropping swallows everything until the next line
	// terminator after the edit buffer filled up.
	stateOverflowDropping
)

// Control flags.
const (
	// flagInitComplete is set by the first Process call.
	flagInitComplete uint8 = 1 << iota
	// flagPrintingInProgress is set while a submitted line is being
	// dispatched; Print then skips the erase/redraw of the input line.
	flagPrintingInProgress
	// flagOverflow records a dropped byte or an over-long line.
	flagOverflow
	// flagAutocompleteNewlines is set after a completion candidate list
	// has been printed under the pending line. Cleared on submission.
	flagAutocompleteNewlines
	// flagLastAutocompleted marks that the current line content was
	// produced by completion rather than typed out. Cleared when a
	// printable byte is typed into the line; backspace and submission
	// leave it as is. Reserved for history recall.
	flagLastAutocompleted
)

// Command is a submitted line split into its name and raw argument bytes.
// Both slices alias the engine's edit buffer and are only valid for the
// duration of the callback they are passed to.
type Command struct {
	Name []byte
	Args []byte
}

// Cli is one interactive session engine. It is constructed once, never
// copied, and driven by ReceiveChar (producer side) and Process (consumer
// side).
type Cli struct {
	// WriteChar delivers one output byte to the transport. It must either
	// succeed or drop the byte. Output is discarded while it is nil.
	WriteChar func(b byte)
	// OnCommand receives submitted commands that matched no binding, and
	// commands whose binding has a nil handler. Optional.
	OnCommand func(cli *Cli, cmd Command)

	invitation string

	rx byteFifo
	tx byteFifo
	// rxDropped is the only state shared between the ReceiveChar context
	// and the Process context besides the RX FIFO itself.
	rxDropped atomic.Bool

	cmd    []byte // edit buffer storage
	cmdLen int

	history []byte // last submitted line, reserved for recall
	histLen int

	bindings []Binding

	state  inputState
	flags  uint8
	prevCR bool
}

// New constructs an engine from cfg. A nil cfg selects DefaultConfig. When
// cfg.Buffer is nil a buffer of RequiredSize(cfg) bytes is allocated once;
// otherwise all byte storage is carved from cfg.Buffer and New fails with
// ErrBufferTooSmall if it cannot fit. The binding table is allocated
// separately, once. After construction the engine performs no further
// allocation.
func New(cfg *Config) (*Cli, error) {
	conf := cfg.withDefaults()
	need := conf.RxBufferSize + conf.TxBufferSize + conf.CmdBufferSize + conf.HistoryBufferSize
	buf := conf.Buffer
	if buf == nil {
		buf = make([]byte, need)
	}
	if len(buf) < need {
		return nil, ErrBufferTooSmall
	}

	a := arena{buf: buf}
	c := &Cli{
		invitation: conf.Invitation,
		bindings:   make([]Binding, 0, conf.MaxBindings),
	}
	c.rx.data = a.take(conf.RxBufferSize)
	c.tx.data = a.take(conf.TxBufferSize)
	c.cmd = a.take(conf.CmdBufferSize)
	c.history = a.take(conf.HistoryBufferSize)
	return c, nil
}

// NewDefault constructs an engine with DefaultConfig and a self-allocated
// buffer.
func NewDefault() *Cli {
	c, err := New(nil)
	if err != nil {
		// Defaults always fit a self-allocated buffer.
		panic(err)
	}
	return c
}

// ReceiveChar pushes one received byte into the RX FIFO. It touches nothing
// else besides the atomic rxDropped flag and may be called from an interrupt
// handler or a reader goroutine. The byte is dropped, and the drop recorded,
// when the FIFO is full.
func (c *Cli) ReceiveChar(b byte) {
	if !c.rx.Push(b) {
		c.rxDropped.Store(true)
	}
}

// Process drains the RX FIFO, running the line editor over every pending
// byte, and flushes the TX FIFO through WriteChar. Handlers run
// synchronously on this call's stack. Call it at any cadence.
func (c *Cli) Process() {
	c.flags |= flagInitComplete
	for {
		b, ok := c.rx.Pop()
		if !ok {
			break
		}
		c.processByte(b)
	}
	if c.rxDropped.Swap(false) {
		// Bytes were lost in transit, so whatever is left in the edit
		// buffer is the head of a truncated line. Discard it.
		c.cmdLen = 0
		c.state = stateNormal
		c.flags |= flagOverflow
	}
	c.flushTx()
}

// Print writes an asynchronous host message without garbling the live input
// line: pending input is erased, s and a line terminator are written, then,
// if input was pending, the invitation and the input line are redrawn. With
// no pending input only s and the terminator are written. Handlers may call it from
// their own dispatch; otherwise call it from the same context that runs
// Process, never concurrently with it.
func (c *Cli) Print(s string) {
	if c.flags&flagPrintingInProgress != 0 {
		// Mid-dispatch the submitted line has already been terminated
		// on screen; there is nothing to erase or redraw.
		c.writeString(s)
		c.writeString("\r\n")
		c.flushTx()
		return
	}
	for i := 0; i < c.cmdLen; i++ {
		c.writeString("\b \b")
	}
	c.writeString(s)
	c.writeString("\r\n")
	if c.cmdLen > 0 {
		c.writeString(c.invitation)
		c.writeBytes(c.cmd[:c.cmdLen])
	}
	c.flushTx()
}

// writeByte enqueues one output byte, draining to the host first when the
// TX FIFO is full. The byte is dropped only when WriteChar cannot drain.
func (c *Cli) writeByte(b byte) {
	if c.tx.Push(b) {
		return
	}
	c.flushTx()
	if !c.tx.Push(b) {
		c.flags |= flagOverflow
	}
}

func (c *Cli) writeBytes(b []byte) {
	for _, x := range b {
		c.writeByte(x)
	}
}

func (c *Cli) writeString(s string) {
	for i := 0; i < len(s); i++ {
		c.writeByte(s[i])
	}
}

func (c *Cli) flushTx() {
	for {
		b, ok := c.tx.Pop()
		if !ok {
			return
		}
		if c.WriteChar != nil {
			c.WriteChar(b)
		}
	}
}
