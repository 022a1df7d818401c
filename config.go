package embeddedcli

const (
	defaultRxBufferSize      = 64
	defaultTxBufferSize      = 128
	defaultCmdBufferSize     = 64
	defaultHistoryBufferSize = 64
	defaultMaxBindings       = 8
	defaultInvitation        = "> "
)

// Config describes the memory layout and prompt of an engine. The zero value
// of every field selects its default.
type Config struct {
	// RxBufferSize is the capacity of the incoming byte FIFO.
	RxBufferSize int
	// TxBufferSize is the capacity of the outgoing byte FIFO.
	TxBufferSize int
	// CmdBufferSize is the capacity of the edit buffer. The longest
	// accepted line is one byte shorter.
	CmdBufferSize int
	// HistoryBufferSize is the capacity of the last-submitted-line buffer.
	HistoryBufferSize int
	// MaxBindings is the capacity of the binding registry. The built-in
	// help command does not occupy a slot.
	MaxBindings int
	// Invitation is the prompt printed at the start of each fresh line.
	Invitation string
	// Buffer optionally supplies the arena all byte storage is carved
	// from. It must hold at least RequiredSize bytes. When nil, New
	// allocates a buffer of exactly that size once.
	Buffer []byte
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	return &Config{
		RxBufferSize:      defaultRxBufferSize,
		TxBufferSize:      defaultTxBufferSize,
		CmdBufferSize:     defaultCmdBufferSize,
		HistoryBufferSize: defaultHistoryBufferSize,
		MaxBindings:       defaultMaxBindings,
		Invitation:        defaultInvitation,
	}
}

func (c *Config) withDefaults() Config {
	out := Config{}
	if c != nil {
		out = *c
	}
	if out.RxBufferSize <= 0 {
		out.RxBufferSize = defaultRxBufferSize
	}
	if out.TxBufferSize <= 0 {
		out.TxBufferSize = defaultTxBufferSize
	}
	if out.CmdBufferSize <= 0 {
		out.CmdBufferSize = defaultCmdBufferSize
	}
	if out.HistoryBufferSize <= 0 {
		out.HistoryBufferSize = defaultHistoryBufferSize
	}
	if out.MaxBindings <= 0 {
		out.MaxBindings = defaultMaxBindings
	}
	if out.Invitation == "" {
		out.Invitation = defaultInvitation
	}
	return out
}

// RequiredSize reports the arena size New needs for cfg. A nil cfg is
// interpreted as DefaultConfig.
func RequiredSize(cfg *Config) int {
	c := cfg.withDefaults()
	return c.RxBufferSize + c.TxBufferSize + c.CmdBufferSize + c.HistoryBufferSize
}
