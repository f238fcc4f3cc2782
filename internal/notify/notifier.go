package notify

import (
	"github.com/sandpoint/beachhub/internal/tournament"
)

// Notifier defines the interface for announcing new tournaments
type Notifier interface {
	// Notify posts announcements for the given tournaments
	Notify(tournaments []tournament.Tournament) error
}
