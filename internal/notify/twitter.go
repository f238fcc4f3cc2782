package notify

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/sandpoint/beachhub/internal/tournament"
)

// TwitterNotifier posts new tournaments to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts a tweet for each tournament
func (n *TwitterNotifier) Notify(tournaments []tournament.Tournament) error {
	for i, t := range tournaments {
		post := formatPost(t)

		_, _, err := n.client.Statuses.Update(post, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for tournament %s: %w", t.ID, err)
		}

		// Rate limiting: wait between tweets
		if i < len(tournaments)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatPost formats a tournament as a tweet
func formatPost(t tournament.Tournament) string {
	post := "🏐 New beach volleyball tournament!\n\n"
	post += fmt.Sprintf("📍 %s", t.Name)
	if t.Country != "" {
		post += fmt.Sprintf(" (%s)", t.Country)
	}
	post += "\n"

	if t.MenDate != nil {
		post += fmt.Sprintf("📅 Men: %s\n", *t.MenDate)
	}
	if t.WomenDate != nil {
		post += fmt.Sprintf("📅 Women: %s\n", *t.WomenDate)
	}

	post += "\n#BeachVolleyball"
	if t.Type != "" {
		post += fmt.Sprintf(" #%s", hashtag(t.Type))
	}

	// Twitter limit is 280 characters
	if len(post) > 280 {
		// Truncate and add ellipsis
		post = post[:277] + "..."
	}

	return post
}

// hashtag strips characters that would break a hashtag
func hashtag(s string) string {
	var out []rune
	for _, r := range s {
		if r == ' ' || r == '-' || r == '#' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
