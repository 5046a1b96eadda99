package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
)

type SOSRequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        SOSStore
}

func NewSOSRequestTestSuite(connURI, dbName string) *SOSRequestTestSuite {
	return &SOSRequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *SOSRequestTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.Connect(context.Background(), opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewSOSStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *SOSRequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Collection(schema.SOSRequestCollection).Drop(context.Background())
}

func (s *SOSRequestTestSuite) newRequest(urgency string) schema.SOSRequest {
	return schema.SOSRequest{
		RequestID:         "sos-" + uuid.New().String(),
		DisasterID:        "disaster-flood-2026",
		RequestedBy:       "citizen-1",
		RequiredSkills:    []string{"medical"},
		RequiredResources: []string{"water", "blankets"},
		Urgency:           urgency,
		Location:          schema.Location{Latitude: 27.7172, Longitude: 85.324},
	}
}

func (s *SOSRequestTestSuite) TestCreateRequest() {
	created, err := s.store.CreateRequest(s.newRequest(schema.UrgencyCritical))
	s.NoError(err)
	s.Equal(schema.SOSStatusPending, created.Status)
	s.NotEmpty(created.RequestID)
	s.Nil(created.MatchedAt)
	s.Nil(created.ResolvedAt)
	s.False(created.CreatedAt.IsZero())

	fetched, err := s.store.GetRequest(created.RequestID)
	s.NoError(err)
	s.Equal(created.RequestID, fetched.RequestID)
	s.Equal([]string{"medical"}, fetched.RequiredSkills)
	s.Equal([]string{"water", "blankets"}, fetched.RequiredResources)
	s.Equal(created.Location, fetched.Location)
}

func (s *SOSRequestTestSuite) TestCreateRequestDefaultsEmptySlices() {
	request := s.newRequest(schema.UrgencyLow)
	request.RequiredSkills = nil
	request.RequiredResources = nil

	created, err := s.store.CreateRequest(request)
	s.NoError(err)
	s.Equal([]string{}, created.RequiredSkills)
	s.Equal([]string{}, created.RequiredResources)
}

func (s *SOSRequestTestSuite) TestGetRequestNotFound() {
	_, err := s.store.GetRequest("sos-nonexistent")
	s.Equal(ErrRequestNotFound, err)
}

func (s *SOSRequestTestSuite) TestUpdateRequestStatusMatchedAtSetOnce() {
	created, err := s.store.CreateRequest(s.newRequest(schema.UrgencyHigh))
	s.NoError(err)

	updated, err := s.store.UpdateRequestStatus(created.RequestID, schema.SOSStatusMatched)
	s.NoError(err)
	s.Equal(schema.SOSStatusMatched, updated.Status)
	s.NotNil(updated.MatchedAt)

	firstMatchedAt := *updated.MatchedAt

	// cycle away and back through matched; matched_at must not move
	_, err = s.store.UpdateRequestStatus(created.RequestID, schema.SOSStatusInProgress)
	s.NoError(err)

	again, err := s.store.UpdateRequestStatus(created.RequestID, schema.SOSStatusMatched)
	s.NoError(err)
	s.NotNil(again.MatchedAt)
	s.WithinDuration(firstMatchedAt, *again.MatchedAt, time.Millisecond)
}

func (s *SOSRequestTestSuite) TestUpdateRequestStatusResolved() {
	created, err := s.store.CreateRequest(s.newRequest(schema.UrgencyMedium))
	s.NoError(err)

	updated, err := s.store.UpdateRequestStatus(created.RequestID, schema.SOSStatusResolved)
	s.NoError(err)
	s.Equal(schema.SOSStatusResolved, updated.Status)
	s.NotNil(updated.ResolvedAt)
	s.True(updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	firstResolvedAt := *updated.ResolvedAt

	// unlike matched_at, resolved_at is re-set every time the request
	// cycles back through resolved
	_, err = s.store.UpdateRequestStatus(created.RequestID, schema.SOSStatusInProgress)
	s.NoError(err)

	time.Sleep(10 * time.Millisecond)

	again, err := s.store.UpdateRequestStatus(created.RequestID, schema.SOSStatusResolved)
	s.NoError(err)
	s.NotNil(again.ResolvedAt)
	s.True(again.ResolvedAt.After(firstResolvedAt), "resolved_at did not move on a repeated resolve")
}

func (s *SOSRequestTestSuite) TestUpdateRequestStatusInvalid() {
	created, err := s.store.CreateRequest(s.newRequest(schema.UrgencyMedium))
	s.NoError(err)

	_, err = s.store.UpdateRequestStatus(created.RequestID, "completed")
	s.Equal(ErrInvalidSOSStatus, err)

	// the record is untouched
	fetched, err := s.store.GetRequest(created.RequestID)
	s.NoError(err)
	s.Equal(schema.SOSStatusPending, fetched.Status)
}

func (s *SOSRequestTestSuite) TestUpdateRequestStatusNotFound() {
	_, err := s.store.UpdateRequestStatus("sos-nonexistent", schema.SOSStatusCancelled)
	s.Equal(ErrRequestNotFound, err)
}

func (s *SOSRequestTestSuite) TestListRequestsFilterAndOrder() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	first := s.newRequest(schema.UrgencyCritical)
	first.DisasterID = "disaster-list"
	second := s.newRequest(schema.UrgencyLow)
	second.DisasterID = "disaster-list"

	createdFirst, err := s.store.CreateRequest(first)
	s.NoError(err)
	_, err = s.store.CreateRequest(second)
	s.NoError(err)

	// force distinct created_at ordering
	_, err = s.testDatabase.Collection(schema.SOSRequestCollection).UpdateOne(
		context.Background(),
		bson.M{"request_id": createdFirst.RequestID},
		bson.M{"$set": bson.M{"created_at": time.Now().UTC().Add(-time.Hour)}},
	)
	s.NoError(err)

	requests, err := s.store.ListRequests(SOSRequestFilter{DisasterID: "disaster-list"}, 50, 0)
	s.NoError(err)
	s.Len(requests, 2)
	s.Equal(second.RequestID, requests[0].RequestID, "listing is not newest first")

	critical, err := s.store.ListRequests(SOSRequestFilter{
		DisasterID: "disaster-list",
		Urgency:    schema.UrgencyCritical,
	}, 50, 0)
	s.NoError(err)
	s.Len(critical, 1)
	s.Equal(createdFirst.RequestID, critical[0].RequestID)

	limited, err := s.store.ListRequests(SOSRequestFilter{DisasterID: "disaster-list"}, 1, 1)
	s.NoError(err)
	s.Len(limited, 1)
	s.Equal(createdFirst.RequestID, limited[0].RequestID)
}

func (s *SOSRequestTestSuite) TestListStaleRequests() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	stale := s.newRequest(schema.UrgencyHigh)
	fresh := s.newRequest(schema.UrgencyHigh)

	createdStale, err := s.store.CreateRequest(stale)
	s.NoError(err)
	_, err = s.store.CreateRequest(fresh)
	s.NoError(err)

	_, err = s.testDatabase.Collection(schema.SOSRequestCollection).UpdateOne(
		context.Background(),
		bson.M{"request_id": createdStale.RequestID},
		bson.M{"$set": bson.M{"created_at": time.Now().UTC().Add(-time.Hour)}},
	)
	s.NoError(err)

	requests, err := s.store.ListStaleRequests(time.Now().UTC().Add(-30 * time.Minute))
	s.NoError(err)
	s.Len(requests, 1)
	s.Equal(createdStale.RequestID, requests[0].RequestID)
}

func TestSOSRequestTestSuite(t *testing.T) {
	suite.Run(t, NewSOSRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
