package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
)

var (
	ErrRequestNotFound  = fmt.Errorf("sos request not found")
	ErrInvalidSOSStatus = fmt.Errorf("unknown sos request status")
)

// SOSRequestFilter narrows a request listing. Zero-valued fields are ignored.
type SOSRequestFilter struct {
	DisasterID string
	Status     string
	Urgency    string
}

type SOSRequestStore interface {
	CreateRequest(request schema.SOSRequest) (*schema.SOSRequest, error)
	GetRequest(requestID string) (*schema.SOSRequest, error)
	ListRequests(filter SOSRequestFilter, limit, offset int64) ([]schema.SOSRequest, error)
	ListStaleRequests(olderThan time.Time) ([]schema.SOSRequest, error)
	UpdateRequestStatus(requestID, status string) (*schema.SOSRequest, error)
}

// CreateRequest inserts a new request with status `pending`. The write is
// the durability point of request creation: a failure here fails the whole
// operation, unlike the soft collaborators around it.
func (m *mongoDB) CreateRequest(request schema.SOSRequest) (*schema.SOSRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SOSRequestCollection)

	now := time.Now().UTC()
	request.Status = schema.SOSStatusPending
	request.CreatedAt = now
	request.UpdatedAt = now
	request.MatchedAt = nil
	request.ResolvedAt = nil

	if request.RequiredSkills == nil {
		request.RequiredSkills = []string{}
	}
	if request.RequiredResources == nil {
		request.RequiredResources = []string{}
	}

	if _, err := c.InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

func (m *mongoDB) GetRequest(requestID string) (*schema.SOSRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SOSRequestCollection)

	var request schema.SOSRequest
	if err := c.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListRequests returns requests matching the filter, newest first.
func (m *mongoDB) ListRequests(filter SOSRequestFilter, limit, offset int64) ([]schema.SOSRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SOSRequestCollection)

	query := bson.M{}
	if filter.DisasterID != "" {
		query["disaster_id"] = filter.DisasterID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Urgency != "" {
		query["urgency"] = filter.Urgency
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	requests := []schema.SOSRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListStaleRequests returns requests that are still pending and were
// created before olderThan. Used by the background re-trigger sweep.
func (m *mongoDB) ListStaleRequests(olderThan time.Time) ([]schema.SOSRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SOSRequestCollection)

	cursor, err := c.Find(ctx, bson.M{
		"status":     schema.SOSStatusPending,
		"created_at": bson.M{"$lt": olderThan},
	})
	if err != nil {
		return nil, err
	}

	requests := []schema.SOSRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateRequestStatus moves a request to the given status and applies the
// lifecycle side effects in a single update: `updated_at` is always
// refreshed, `matched_at` is set only the first time the request enters
// `matched`, and `resolved_at` is set on every `resolved` transition.
//
// Any known status is accepted from any current status; the lifecycle
// does not enforce a transition graph.
func (m *mongoDB) UpdateRequestStatus(requestID, status string) (*schema.SOSRequest, error) {
	if !schema.ValidSOSStatus(status) {
		return nil, ErrInvalidSOSStatus
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SOSRequestCollection)

	now := time.Now().UTC()
	set := bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: now},
	}

	switch status {
	case schema.SOSStatusMatched:
		set = append(set, bson.E{Key: "matched_at", Value: bson.M{
			"$ifNull": bson.A{"$matched_at", now},
		}})
	case schema.SOSStatusResolved:
		set = append(set, bson.E{Key: "resolved_at", Value: now})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var request schema.SOSRequest
	err := c.FindOneAndUpdate(
		ctx,
		bson.M{"request_id": requestID},
		mongo.Pipeline{bson.D{{Key: "$set", Value: set}}},
		opts,
	).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}
