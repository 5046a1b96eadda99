package schema

import (
	"time"
)

const (
	SOSRequestCollection = "sosRequests"
)

const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

const (
	SOSStatusPending    = "pending"
	SOSStatusMatched    = "matched"
	SOSStatusInProgress = "in_progress"
	SOSStatusResolved   = "resolved"
	SOSStatusCancelled  = "cancelled"
)

// SOSStatuses enumerates every status a request may carry. A transition
// target outside this list is rejected before any store access.
var SOSStatuses = []string{
	SOSStatusPending,
	SOSStatusMatched,
	SOSStatusInProgress,
	SOSStatusResolved,
	SOSStatusCancelled,
}

// ValidSOSStatus reports whether status is one of the known lifecycle states.
func ValidSOSStatus(status string) bool {
	for _, s := range SOSStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// SOSRequest is the authoritative record of an assistance request. Its
// existence in the store is the only durable fact of the system; the
// matching and disaster services hold no state about it.
type SOSRequest struct {
	RequestID         string     `json:"requestId" bson:"request_id"`
	DisasterID        string     `json:"disasterId" bson:"disaster_id"`
	RequestedBy       string     `json:"requestedBy" bson:"requested_by"`
	RequiredSkills    []string   `json:"requiredSkills" bson:"required_skills"`
	RequiredResources []string   `json:"requiredResources" bson:"required_resources"`
	Urgency           string     `json:"urgency" bson:"urgency"`
	NumberOfPeople    *int       `json:"numberOfPeople,omitempty" bson:"number_of_people,omitempty"`
	Location          Location   `json:"location" bson:"location"`
	Description       string     `json:"description,omitempty" bson:"description,omitempty"`
	ContactPhone      string     `json:"contactPhone,omitempty" bson:"contact_phone,omitempty"`
	Status            string     `json:"status" bson:"status"`
	CreatedAt         time.Time  `json:"createdAt" bson:"created_at"`
	MatchedAt         *time.Time `json:"matchedAt" bson:"matched_at"`
	ResolvedAt        *time.Time `json:"resolvedAt" bson:"resolved_at"`
	UpdatedAt         time.Time  `json:"updatedAt" bson:"updated_at"`
}

const TriggerEventCreated = "sos.request.created"

// TriggerEvent is the message enqueued for the matching service. The same
// shape is used for the creation trigger and for manual re-triggers.
type TriggerEvent struct {
	Event string           `json:"event"`
	Data  TriggerEventData `json:"data"`
}

type TriggerEventData struct {
	RequestID         string   `json:"requestId"`
	DisasterID        string   `json:"disasterId"`
	Urgency           string   `json:"urgency"`
	RequiredSkills    []string `json:"requiredSkills"`
	RequiredResources []string `json:"requiredResources"`
	Location          Location `json:"location"`
}

// NewTriggerEvent builds the matching trigger from the current stored
// values of a request, not from the original creation payload.
func NewTriggerEvent(r SOSRequest) TriggerEvent {
	return TriggerEvent{
		Event: TriggerEventCreated,
		Data: TriggerEventData{
			RequestID:         r.RequestID,
			DisasterID:        r.DisasterID,
			Urgency:           r.Urgency,
			RequiredSkills:    r.RequiredSkills,
			RequiredResources: r.RequiredResources,
			Location:          r.Location,
		},
	}
}
