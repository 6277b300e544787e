//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDBusNotifier_SendAndClose(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	n, err := New()
	require.NoError(t, err)

	id, err := n.Notify(Notification{Title: "beezer test", Timeout: 1000, Urgency: UrgencyLow})
	require.NoError(t, err)
	require.NotZero(t, id)
	require.NoError(t, n.Close(id))
}
