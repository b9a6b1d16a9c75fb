package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMailboxTakeConsumesOnce(t *testing.T) {
	var m Mailbox
	require.False(t, m.Take(), "empty mailbox must not report a post")

	m.Post()
	m.Post()
	require.True(t, m.Peek())
	require.True(t, m.Take())
	require.False(t, m.Take(), "second take after a double post must be empty")
}

func TestMailboxDrop(t *testing.T) {
	var m Mailbox
	m.Post()
	m.Drop()
	require.False(t, m.Peek())
	require.False(t, m.Take())
}
