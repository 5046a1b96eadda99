package disaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "disaster"
	defaultTimeout = 5 * time.Second

	statusActive = "active"
)

var (
	ErrUnexpectedStatusCode = fmt.Errorf("disaster service returned an unexpected status code")
)

// Disaster - interface to query the disaster verification service
//
// Verify distinguishes an explicit answer from no answer at all: it
// returns (false, nil) only when the service positively reports the
// disaster as not active. Every other failure mode (timeout, unreachable
// host, non-2xx, malformed body) is an error, which callers treat as
// "could not verify" rather than a rejection.
type Disaster interface {
	Verify(disasterID string) (bool, error)
}

type disasterClient struct {
	endpoint string
	client   *http.Client
}

type disasterResponse struct {
	DisasterID string `json:"disasterId"`
	Status     string `json:"status"`
}

func (d *disasterClient) Verify(disasterID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/disasters/%s", d.endpoint, disasterID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"prefix":      logPrefix,
			"disaster_id": disasterID,
			"status_code": resp.StatusCode,
		}).Warn("verify disaster")
		return false, ErrUnexpectedStatusCode
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	var r disasterResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return false, err
	}

	return r.Status == statusActive, nil
}

// New - new Disaster client. A nil httpClient falls back to a client with
// the default verification timeout.
func New(endpoint string, httpClient *http.Client) Disaster {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	return &disasterClient{
		endpoint: endpoint,
		client:   httpClient,
	}
}
