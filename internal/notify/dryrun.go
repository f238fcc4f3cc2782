package notify

import (
	"fmt"

	"github.com/sandpoint/beachhub/internal/tournament"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the posts that would be published
func (n *DryRunNotifier) Notify(tournaments []tournament.Tournament) error {
	for i, t := range tournaments {
		post := formatPost(t)
		fmt.Printf("--- Post %d/%d ---\n", i+1, len(tournaments))
		fmt.Println(post)
		fmt.Printf("\n(Length: %d characters)\n\n", len(post))
	}
	return nil
}
