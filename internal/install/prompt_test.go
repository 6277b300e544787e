package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInstaller struct {
	err   error
	calls int
}

func (f *fakeInstaller) Install() error {
	f.calls++
	return f.err
}

type fakeDetector struct {
	available bool
	err       error
}

func (f fakeDetector) Available(context.Context) (bool, error) { return f.available, f.err }

func TestPrompt_AcceptFlow(t *testing.T) {
	inst := &fakeInstaller{}
	p := NewPrompt(inst)

	var events []Event
	cancel := p.Subscribe(func(e Event) { events = append(events, e) })
	defer cancel()

	assert.Equal(t, Hidden, p.State())
	require.True(t, p.Offer())
	assert.False(t, p.Offer(), "already offered")
	require.NoError(t, p.Accept())

	assert.Equal(t, Accepted, p.State())
	assert.Equal(t, 1, inst.calls)
	assert.Equal(t, []Event{
		{From: Hidden, To: Offered},
		{From: Offered, To: Accepted},
	}, events)
}

func TestPrompt_Decline(t *testing.T) {
	inst := &fakeInstaller{}
	p := NewPrompt(inst)

	require.True(t, p.Offer())
	require.NoError(t, p.Decline())

	assert.Equal(t, Declined, p.State())
	assert.Zero(t, inst.calls)
	assert.ErrorIs(t, p.Accept(), ErrNotOffered)
}

func TestPrompt_NotOffered(t *testing.T) {
	p := NewPrompt(&fakeInstaller{})
	assert.ErrorIs(t, p.Accept(), ErrNotOffered)
	assert.ErrorIs(t, p.Decline(), ErrNotOffered)
}

func TestPrompt_InstallFailureReturnsToHidden(t *testing.T) {
	boom := errors.New("read-only fs")
	p := NewPrompt(&fakeInstaller{err: boom})

	var last Event
	p.Subscribe(func(e Event) { last = e })

	require.True(t, p.Offer())
	require.ErrorIs(t, p.Accept(), boom)

	assert.Equal(t, Hidden, p.State())
	assert.Equal(t, Event{From: Accepted, To: Hidden, Err: boom}, last)
	assert.True(t, p.Offer(), "can be offered again")
}

func TestPrompt_CancelSubscription(t *testing.T) {
	p := NewPrompt(&fakeInstaller{})

	count := 0
	cancel := p.Subscribe(func(Event) { count++ })
	p.Offer()
	cancel()
	_ = p.Decline()

	assert.Equal(t, 1, count)
}

func TestPrompt_Watch(t *testing.T) {
	p := NewPrompt(&fakeInstaller{})
	offered, err := p.Watch(context.Background(), fakeDetector{available: false})
	require.NoError(t, err)
	assert.False(t, offered)
	assert.Equal(t, Hidden, p.State())

	offered, err = p.Watch(context.Background(), fakeDetector{available: true})
	require.NoError(t, err)
	assert.True(t, offered)
	assert.Equal(t, Offered, p.State())

	_, err = NewPrompt(&fakeInstaller{}).Watch(context.Background(), fakeDetector{err: errors.New("stat")})
	require.Error(t, err)
}

func TestDesktop_InstallOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applications", desktopFileName)
	d := &Desktop{Path: path, Exec: "/usr/bin/beezer"}

	ok, err := d.Available(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, d.Install())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=\"/usr/bin/beezer\"\n")
	assert.Contains(t, string(data), "Name=Beezer\n")

	ok, err = d.Available(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuoteExec(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/ana/My Apps/beezer", `"/home/ana/My Apps/beezer"`},
		{`/opt/"odd"/beezer`, `"/opt/\\"odd\\"/beezer"`},
		{"/opt/$HOME/beezer", `"/opt/\\$HOME/beezer"`},
		{`C:\beezer`, `"C:\\\\beezer"`},
		{"/opt/100%/beezer", `"/opt/100%%/beezer"`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteExec(tt.path))
		})
	}
}

func TestDesktop_ExecWithSpaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), desktopFileName)
	d := &Desktop{Path: path, Exec: "/home/ana/My Apps/beezer"}
	require.NoError(t, d.Install())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=\"/home/ana/My Apps/beezer\"\n")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Offered", Offered.String())
	assert.Equal(t, "Unknown", State(12).String())
}
