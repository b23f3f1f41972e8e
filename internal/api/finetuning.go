package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/resource"
)

func (s *Server) createJob(c *gin.Context) {
	var params resource.JobParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, resource.InvalidRequest("model and training_file are required", "model"))
		return
	}

	job, apiErr := s.registry.CreateJob(params)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) listJobs(c *gin.Context) {
	after, limit := pageParams(c)

	var filter func(*resource.FineTuningJob) bool
	if status := c.Query("status"); status != "" {
		filter = func(j *resource.FineTuningJob) bool { return j.Status == status }
	}

	jobs, hasMore := s.registry.Jobs.List(filter, after, limit)
	if jobs == nil {
		jobs = []*resource.FineTuningJob{}
	}
	c.JSON(http.StatusOK, listEnvelope(jobs, hasMore))
}

func (s *Server) getJob(c *gin.Context) {
	job, ok := s.registry.Jobs.Get(c.Param("job_id"))
	if !ok {
		writeError(c, resource.NotFound("No fine-tuning job found"))
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) cancelJob(c *gin.Context) {
	job, apiErr := s.registry.CancelJob(c.Param("job_id"))
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) listJobEvents(c *gin.Context) {
	after, limit := pageParams(c)
	events, hasMore, apiErr := s.registry.ListJobEvents(c.Param("job_id"), after, limit)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	if events == nil {
		events = []*resource.Event{}
	}
	c.JSON(http.StatusOK, listEnvelope(events, hasMore))
}
