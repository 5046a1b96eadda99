package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KdbAzizul/rescuemesh-sos-service/external/matching"
	"github.com/KdbAzizul/rescuemesh-sos-service/schema"
	"github.com/KdbAzizul/rescuemesh-sos-service/store"
)

type sosRequestParams struct {
	DisasterID        string           `json:"disasterId" binding:"required"`
	RequestedBy       string           `json:"requestedBy" binding:"required"`
	RequiredSkills    []string         `json:"requiredSkills"`
	RequiredResources []string         `json:"requiredResources"`
	Urgency           string           `json:"urgency" binding:"required,oneof=critical high medium low"`
	NumberOfPeople    *int             `json:"numberOfPeople" binding:"omitempty,gte=1"`
	Location          *schema.Location `json:"location" binding:"required"`
	Description       string           `json:"description"`
	ContactPhone      string           `json:"contactPhone"`
}

// createRequest accepts a new sos request. The disaster check is best
// effort: only an explicit "not active" answer rejects the creation; an
// unreachable verification service does not. The store insert is the
// durability point, and the matching trigger is emitted only after it,
// with its failure logged and swallowed.
func (s *Server) createRequest(c *gin.Context) {
	var params sosRequestParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	active, err := s.disasterClient.Verify(params.DisasterID)
	if err != nil {
		log.WithField("disaster_id", params.DisasterID).WithError(err).Warn("could not verify disaster")
	} else if !active {
		abortWithEncoding(c, http.StatusBadRequest, errorDisasterNotActive)
		return
	}

	request, err := s.store.CreateRequest(schema.SOSRequest{
		RequestID:         fmt.Sprintf("sos-%s", uuid.New().String()),
		DisasterID:        params.DisasterID,
		RequestedBy:       params.RequestedBy,
		RequiredSkills:    params.RequiredSkills,
		RequiredResources: params.RequiredResources,
		Urgency:           params.Urgency,
		NumberOfPeople:    params.NumberOfPeople,
		Location:          *params.Location,
		Description:       params.Description,
		ContactPhone:      params.ContactPhone,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.publisher.PublishMatchingTrigger(schema.NewTriggerEvent(*request)); err != nil {
		log.WithField("request_id", request.RequestID).WithError(err).Error("failed to trigger matching")
	}

	c.JSON(http.StatusCreated, request)
}

func (s *Server) listRequests(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	requests, err := s.store.ListRequests(store.SOSRequestFilter{
		DisasterID: c.Query("disasterId"),
		Status:     c.Query("status"),
		Urgency:    c.Query("urgency"),
	}, limit, offset)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

type enrichedSOSRequest struct {
	schema.SOSRequest
	Matches []matching.Match `json:"matches"`
}

// getRequest returns the stored record enriched with candidate matches.
// The match lookup never fails the read: the authoritative record stays
// available when the matching service is not.
func (s *Server) getRequest(c *gin.Context) {
	requestID := c.Param("requestID")

	request, err := s.store.GetRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, enrichedSOSRequest{
		SOSRequest: *request,
		Matches:    s.lookupMatches(requestID),
	})
}

func (s *Server) lookupMatches(requestID string) []matching.Match {
	if s.cache != nil {
		if matches, ok := s.cache.GetMatches(requestID); ok {
			return matches
		}
	}

	matches, err := s.matchingClient.Matches(requestID)
	if err != nil {
		log.WithField("request_id", requestID).WithError(err).Warn("could not fetch matches")
		return []matching.Match{}
	}

	if s.cache != nil {
		s.cache.SetMatches(requestID, matches)
	}

	return matches
}

func (s *Server) updateRequestStatus(c *gin.Context) {
	requestID := c.Param("requestID")

	var params struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.ValidSOSStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	request, err := s.store.UpdateRequestStatus(requestID, params.Status)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requestId":  request.RequestID,
		"status":     request.Status,
		"matchedAt":  request.MatchedAt,
		"resolvedAt": request.ResolvedAt,
		"updatedAt":  request.UpdatedAt,
	})
}

// triggerMatching re-emits the matching trigger for an existing request
// from its current stored values. It mutates nothing; re-emission is
// idempotent from the matching service's point of view.
func (s *Server) triggerMatching(c *gin.Context) {
	requestID := c.Param("requestID")

	request, err := s.store.GetRequest(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if err := s.publisher.PublishMatchingTrigger(schema.NewTriggerEvent(*request)); err != nil {
		log.WithField("request_id", requestID).WithError(err).Error("failed to trigger matching")
	}

	c.JSON(http.StatusOK, gin.H{
		"requestId":         requestID,
		"matchingTriggered": true,
		"message":           "Matching service notified",
	})
}
