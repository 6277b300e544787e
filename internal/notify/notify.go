// Package notify sends desktop notifications via D-Bus.
package notify

import (
	"github.com/beezer-app/beezer/internal/playback"
)

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// previewTimeout is how long a "now previewing" bubble stays, in ms.
const previewTimeout = 5000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // image path/URL or icon name
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify returns the notification ID, or 0 with a nil error when
	// notifications are unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// Follow shows a notification for each preview that starts until events
// is closed. Each one replaces the previous. body is called per
// notification and usually returns the artist name.
func Follow(events <-chan playback.Event, n Notifier, body func() string) {
	var last uint32
	for e := range events {
		if e.Kind != playback.Started {
			continue
		}
		text := ""
		if body != nil {
			text = body()
		}
		id, err := n.Notify(Notification{
			Title:      "▶ " + e.Track.Title,
			Body:       text,
			Icon:       "audio-x-generic",
			Timeout:    previewTimeout,
			ReplacesID: last,
			Urgency:    UrgencyLow,
		})
		if err == nil && id != 0 {
			last = id
		}
	}
}
