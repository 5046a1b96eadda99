package background

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/KdbAzizul/rescuemesh-sos-service/api/mocks"
	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
)

func staleRequest(requestID, urgency string) schema.SOSRequest {
	return schema.SOSRequest{
		RequestID:         requestID,
		DisasterID:        "disaster-1",
		RequestedBy:       "citizen-1",
		RequiredSkills:    []string{"medical"},
		RequiredResources: []string{"water"},
		Urgency:           urgency,
		Location:          schema.Location{Latitude: 27.7, Longitude: 85.3},
		Status:            schema.SOSStatusPending,
		CreatedAt:         time.Now().UTC().Add(-time.Hour),
	}
}

func TestRetriggerStaleRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sosStore := mocks.NewMockSOSStore(ctl)
	publisher := mocks.NewMockPublisher(ctl)

	m := &BackgroundManager{
		store:     sosStore,
		publisher: publisher,
	}

	first := staleRequest("sos-1", schema.UrgencyCritical)
	second := staleRequest("sos-2", schema.UrgencyLow)

	sosStore.EXPECT().ListStaleRequests(gomock.Any()).DoAndReturn(
		func(olderThan time.Time) ([]schema.SOSRequest, error) {
			assert.True(t, olderThan.Before(time.Now().UTC()), "cutoff is not in the past")
			return []schema.SOSRequest{first, second}, nil
		}).Times(1)

	// every re-emitted event carries the record's current stored values
	publisher.EXPECT().PublishMatchingTrigger(schema.NewTriggerEvent(first)).Return(nil).Times(1)
	publisher.EXPECT().PublishMatchingTrigger(schema.NewTriggerEvent(second)).Return(nil).Times(1)

	assert.NoError(t, m.RetriggerStaleRequests())
}

func TestRetriggerStaleRequestsPublishFailureContinues(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sosStore := mocks.NewMockSOSStore(ctl)
	publisher := mocks.NewMockPublisher(ctl)

	m := &BackgroundManager{
		store:     sosStore,
		publisher: publisher,
	}

	first := staleRequest("sos-1", schema.UrgencyCritical)
	second := staleRequest("sos-2", schema.UrgencyHigh)

	sosStore.EXPECT().ListStaleRequests(gomock.Any()).
		Return([]schema.SOSRequest{first, second}, nil).Times(1)

	// a publish failure for one request must not stop the sweep
	publisher.EXPECT().PublishMatchingTrigger(schema.NewTriggerEvent(first)).
		Return(fmt.Errorf("broker unavailable")).Times(1)
	publisher.EXPECT().PublishMatchingTrigger(schema.NewTriggerEvent(second)).Return(nil).Times(1)

	assert.NoError(t, m.RetriggerStaleRequests())
}

func TestRetriggerStaleRequestsStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sosStore := mocks.NewMockSOSStore(ctl)
	publisher := mocks.NewMockPublisher(ctl)

	m := &BackgroundManager{
		store:     sosStore,
		publisher: publisher,
	}

	sosStore.EXPECT().ListStaleRequests(gomock.Any()).
		Return(nil, fmt.Errorf("connection refused")).Times(1)

	assert.Error(t, m.RetriggerStaleRequests())
}
