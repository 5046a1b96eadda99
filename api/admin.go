package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// adminRetriggerStale is an internal only api to enqueue the background
// sweep that re-triggers matching for stale pending requests
func (s *Server) adminRetriggerStale(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "retrigger_stale_requests",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
