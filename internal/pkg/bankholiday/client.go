package bankholiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crewdesk/crew-backend-go/internal/domain/holiday"
)

// Client fetches the public bank-holiday feed. The feed is a JSON object
// keyed by division, each with a list of dated events, matching the gov.uk
// bank-holidays.json shape.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

func NewClient(feedURL string) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type feedEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type feedDivision struct {
	Division string      `json:"division"`
	Events   []feedEvent `json:"events"`
}

// FetchRegion downloads the feed and returns the events for one division.
func (c *Client) FetchRegion(ctx context.Context, region string) ([]holiday.BankHoliday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank holiday feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bank holiday feed returned status %d", resp.StatusCode)
	}

	var feed map[string]feedDivision
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode bank holiday feed: %w", err)
	}

	division, ok := feed[region]
	if !ok {
		return nil, fmt.Errorf("bank holiday feed has no division %q", region)
	}

	holidays := make([]holiday.BankHoliday, 0, len(division.Events))
	for _, event := range division.Events {
		holidays = append(holidays, holiday.BankHoliday{
			Region: region,
			Date:   event.Date,
			Title:  event.Title,
		})
	}
	return holidays, nil
}
