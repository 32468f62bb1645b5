package wires

// Message is a Text that removes itself after a number of frames and then
// runs an optional callback. The removal happens before the callback, so the
// callback may safely end the session (for example by calling Screen.Quit).
type Message struct {
	*Text

	lifetime   int
	afterDeath func()
}

// NewMessage creates a message that lives for lifetime frames once it is on a
// screen. A lifetime of zero or less keeps the message up indefinitely.
// opts.Interval is ignored; the lifetime drives the countdown.
func NewMessage(value string, size float64, c Color, lifetime int, afterDeath func(), opts SpriteOptions) *Message {
	if lifetime > 0 {
		opts.Interval = lifetime
	} else {
		opts.Interval = 1
	}
	m := &Message{
		Text:       NewText(value, size, c, opts),
		lifetime:   lifetime,
		afterDeath: afterDeath,
	}
	if lifetime > 0 {
		m.onInterval = m.expire
	}
	return m
}

// Lifetime returns the configured lifetime in frames.
func (m *Message) Lifetime() int { return m.lifetime }

func (m *Message) expire() {
	m.Destroy()
	if m.afterDeath != nil {
		m.afterDeath()
	}
}
