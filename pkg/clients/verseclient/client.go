// Package verseclient fetches the original-language text of a verse from the
// IQ Bible API on RapidAPI.
package verseclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

const defaultBaseURL = "https://iq-bible.p.rapidapi.com"

// Client calls the IQ Bible GetOriginalText endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
}

// NewClient creates a client with the given RapidAPI credentials.
func NewClient(apiKey, apiHost string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
	}
}

// word mirrors one element of the API response; orig_order arrives as either
// a number or a numeric string depending on the verse.
type word struct {
	Word      string      `json:"word"`
	OrigOrder json.Number `json:"orig_order"`
}

// OriginalText returns the verse's words in their original order.
func (c *Client) OriginalText(ctx context.Context, verseID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/GetOriginalText?verseId=%s", c.baseURL, url.QueryEscape(verseID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verse request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verse request failed with status %d", resp.StatusCode)
	}

	var words []word
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to decode verse response: %w", err)
	}

	sort.SliceStable(words, func(i, j int) bool {
		return origOrder(words[i]) < origOrder(words[j])
	})

	texts := make([]string, 0, len(words))
	for _, w := range words {
		texts = append(texts, w.Word)
	}
	return texts, nil
}

func origOrder(w word) int {
	n, err := strconv.Atoi(w.OrigOrder.String())
	if err != nil {
		return 0
	}
	return n
}
