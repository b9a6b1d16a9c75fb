package session

// Mailbox is a single-slot edge flag. Post fills the slot, Take reports
// whether it was full and empties it, so every Post is observed by at most
// one Take.
//
// A Mailbox does no locking of its own; the owning Session serialises access.
type Mailbox struct {
	full bool
}

// Post fills the slot. Posting to a full slot is a no-op.
func (m *Mailbox) Post() {
	m.full = true
}

// Take empties the slot and reports whether it was full.
func (m *Mailbox) Take() bool {
	full := m.full
	m.full = false
	return full
}

// Drop discards a pending post without reporting it.
func (m *Mailbox) Drop() {
	m.full = false
}

// Peek reports whether the slot is full without consuming it.
func (m *Mailbox) Peek() bool {
	return m.full
}
