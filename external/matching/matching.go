package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 5 * time.Second
)

var (
	ErrUnexpectedStatusCode = fmt.Errorf("matching service returned an unexpected status code")
)

// Match is a candidate match proposed by the matching service.
type Match struct {
	MatchID     string  `json:"matchId"`
	RequestID   string  `json:"requestId"`
	VolunteerID string  `json:"volunteerId"`
	Score       float64 `json:"score"`
	Status      string  `json:"status"`
}

// Matching - interface to fetch candidate matches for a request. The
// matching service owns the matching algorithm; this client only reads
// its results to enrich request lookups.
type Matching interface {
	Matches(requestID string) ([]Match, error)
}

type matchingClient struct {
	endpoint string
	client   *http.Client
}

type matchesResponse struct {
	Matches []Match `json:"matches"`
}

func (m *matchingClient) Matches(requestID string) ([]Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := fmt.Sprintf("%s/api/matching/matches?requestId=%s", m.endpoint, url.QueryEscape(requestID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnexpectedStatusCode
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var r matchesResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, err
	}

	if r.Matches == nil {
		return []Match{}, nil
	}

	return r.Matches, nil
}

// New - new Matching client
func New(endpoint string, httpClient *http.Client) Matching {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	return &matchingClient{
		endpoint: endpoint,
		client:   httpClient,
	}
}
