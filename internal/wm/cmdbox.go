package wm

// MaxCommandLen is the default bound on the command box buffer, in bytes.
const MaxCommandLen = 512

// CommandBox is a modal single-line buffer. While inactive its buffer is
// empty.
type CommandBox struct {
	active bool
	buf    []byte
	limit  int
}

func newCommandBox(limit int) *CommandBox {
	if limit <= 0 {
		limit = MaxCommandLen
	}
	return &CommandBox{limit: limit}
}

// Active reports whether the command box is taking key presses.
func (c *CommandBox) Active() bool { return c.active }

// Text returns the buffer contents.
func (c *CommandBox) Text() string { return string(c.buf) }

func (c *CommandBox) open() {
	c.active = true
	c.buf = c.buf[:0]
}

func (c *CommandBox) close() {
	c.active = false
	c.buf = c.buf[:0]
}

// append adds b unless the buffer is already at its maximum length.
func (c *CommandBox) append(b byte) bool {
	if len(c.buf) >= c.limit {
		return false
	}
	c.buf = append(c.buf, b)
	return true
}

func (c *CommandBox) backspace() {
	if n := len(c.buf); n > 0 {
		c.buf = c.buf[:n-1]
	}
}
