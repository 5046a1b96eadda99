package disaster_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KdbAzizul/rescuemesh-sos-service/external/disaster"
)

func TestVerifyActive(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/disasters/disaster-1", r.URL.Path)

		b, _ := json.Marshal(map[string]string{
			"disasterId": "disaster-1",
			"status":     "active",
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	d := disaster.New(ts.URL, nil)
	active, err := d.Verify("disaster-1")
	assert.Nil(t, err, "wrong Verify")
	assert.True(t, active)
}

func TestVerifyExplicitlyInactive(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		b, _ := json.Marshal(map[string]string{
			"disasterId": "disaster-1",
			"status":     "closed",
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	d := disaster.New(ts.URL, nil)
	active, err := d.Verify("disaster-1")
	assert.Nil(t, err)
	assert.False(t, active, "a closed disaster reported as active")
}

func TestVerifyNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	d := disaster.New(ts.URL, nil)
	_, err := d.Verify("disaster-1")
	assert.Equal(t, disaster.ErrUnexpectedStatusCode, err)
}

func TestVerifyMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	d := disaster.New(ts.URL, nil)
	_, err := d.Verify("disaster-1")
	assert.Error(t, err)
}

func TestVerifyUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close()

	d := disaster.New(ts.URL, nil)
	_, err := d.Verify("disaster-1")
	assert.Error(t, err)
}
