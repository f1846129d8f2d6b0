package daily

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL serves one JSON document per date at {base}/{YYYY-MM-DD}.json.
const DefaultBaseURL = "https://www.nytimes.com/svc/wordle/v2"

// ErrNotPublished means the endpoint has no word for the date (yet).
var ErrNotPublished = errors.New("daily: word not published")

// Puzzle is the success body of the daily endpoint.
type Puzzle struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
	Editor          string `json:"editor"`
}

// Failure is the error body of the daily endpoint.
type Failure struct {
	Status  string   `json:"status"`
	Errors  []string `json:"errors"`
	Results []string `json:"results"`
}

// response decodes either body shape.
type response struct {
	Puzzle
	Failure
}

// Client fetches daily puzzles.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Puzzle fetches the puzzle for date. A failure body, whatever the HTTP
// status, yields ErrNotPublished.
func (c *Client) Puzzle(ctx context.Context, date time.Time) (*Puzzle, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, DateKey(date))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch puzzle: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle: %w", err)
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("puzzle endpoint returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("failed to decode puzzle: %w", err)
	}
	if r.Status != "" || len(r.Errors) > 0 {
		return nil, ErrNotPublished
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("puzzle endpoint returned status %d: %s", resp.StatusCode, string(body))
	}
	sol := strings.ToLower(strings.TrimSpace(r.Solution))
	if !isWord(sol) {
		return nil, fmt.Errorf("puzzle for %s has malformed solution %q", DateKey(date), r.Solution)
	}
	p := r.Puzzle
	p.Solution = sol
	return &p, nil
}

func isWord(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
