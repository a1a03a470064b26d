package dsi

// MsgFlag modifies how a command message is sent.
type MsgFlag uint32

// Message flags.
const (
	// MsgLastCommand marks the final command of a batch.
	MsgLastCommand MsgFlag = 1 << iota

	// MsgUnicast sends the message to a single controller even when the
	// display has several.
	MsgUnicast
)

// Msg is a DSI command message.
type Msg struct {
	Ctrl    int
	Channel uint8
	Type    uint8
	Flags   MsgFlag
	TxBuf   []byte
}

// IsLastCommand reports whether the message closes a command batch.
func (m Msg) IsLastCommand() bool {
	return m.Flags&MsgLastCommand != 0
}

// IsUnicast reports whether the message must not be broadcast.
func (m Msg) IsUnicast() bool {
	return m.Flags&MsgUnicast != 0
}
