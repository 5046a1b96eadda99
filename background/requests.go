package background

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
)

const defaultStaleAfter = 15 * time.Minute

// RetriggerStaleRequests is a background job that re-emits the matching
// trigger for requests that are still pending after the configured age.
// The trigger channel is at-least-once, so re-emission is safe; a publish
// failure for one request does not stop the sweep.
func (m *BackgroundManager) RetriggerStaleRequests() error {
	staleAfter := viper.GetDuration("matching.stale_after")
	if staleAfter == 0 {
		staleAfter = defaultStaleAfter
	}

	requests, err := m.store.ListStaleRequests(time.Now().UTC().Add(-staleAfter))
	if err != nil {
		return err
	}

	for _, request := range requests {
		if err := m.publisher.PublishMatchingTrigger(schema.NewTriggerEvent(request)); err != nil {
			log.WithFields(log.Fields{
				"prefix":     "background",
				"request_id": request.RequestID,
				"error":      err,
			}).Error("failed to re-trigger matching")
		}
	}

	log.WithFields(log.Fields{
		"prefix": "background",
		"count":  len(requests),
	}).Info("stale request sweep finished")

	return nil
}
