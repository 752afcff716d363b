package draft

// ErrorChannel is the single-slot most-recent-failure surface shared by all
// operations. A new message replaces any prior one; there is no history,
// severity, or auto-expiry.
type ErrorChannel struct {
	message string
}

// Set replaces any prior message.
func (c *ErrorChannel) Set(message string) {
	c.message = message
}

// SetError stores the user-facing text for err. A nil err clears the slot.
func (c *ErrorChannel) SetError(err error) {
	c.message = UserMessage(err)
}

// Clear empties the slot. Every user-initiated operation calls this before
// its own work begins so a new attempt never shows a stale error.
func (c *ErrorChannel) Clear() {
	c.message = ""
}

// Message returns the current message, or "" when the slot is empty.
func (c *ErrorChannel) Message() string {
	return c.message
}

// HasError reports whether a message is currently set.
func (c *ErrorChannel) HasError() bool {
	return c.message != ""
}
