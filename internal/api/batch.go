package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/resource"
)

type createBatchRequest struct {
	Operations []resource.BatchOperationInput `json:"operations"`
}

func (s *Server) createBatch(c *gin.Context) {
	var req createBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, resource.InvalidRequest("operations array is required and must not be empty", "operations"))
		return
	}

	batch, apiErr := s.registry.CreateBatch(req.Operations)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (s *Server) getBatch(c *gin.Context) {
	batch, ok := s.registry.Batches.Get(c.Param("batch_id"))
	if !ok {
		writeError(c, resource.NotFound("Batch not found"))
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (s *Server) cancelBatch(c *gin.Context) {
	batch, apiErr := s.registry.CancelBatch(c.Param("batch_id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (s *Server) listBatchEvents(c *gin.Context) {
	after, limit := pageParams(c)
	events, hasMore, apiErr := s.registry.ListBatchEvents(c.Param("batch_id"), after, limit)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	if events == nil {
		events = []*resource.Event{}
	}
	c.JSON(http.StatusOK, listEnvelope(events, hasMore))
}
